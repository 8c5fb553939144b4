package action

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/archctl/archctl/phase"

	log "github.com/sirupsen/logrus"
)

// InstallOptions are the settings for the Install action
type InstallOptions struct {
	// Manager is the phase manager
	Manager *phase.Manager
	// Force skips the confirmation before the partitions are formatted
	Force bool
	// Stdout is where the interactive prompts are written
	Stdout io.Writer
}

// Install is the action that installs Arch Linux on the configured partitions
type Install struct {
	InstallOptions
	Phases phase.Phases
}

// NewInstall creates a new Install action. The list of phases can be modified via the Phases field, for example:
//
//	install := NewInstall(opts)
//	pacman := &phase.ConfigurePacman{}
//	install.Phases.InsertAfter(pacman.Title(), &myCustomPhase{})
func NewInstall(opts InstallOptions) *Install {
	return &Install{
		InstallOptions: opts,
		Phases: phase.Phases{
			&phase.Connect{},
			&phase.DetectOS{},
			&phase.ValidateConfig{},
			&phase.Confirm{Force: opts.Force, Stdout: opts.Stdout},

			// live system
			&phase.EnableNTP{},
			&phase.ConfigureMirrors{},
			&phase.FormatPartitions{},
			&phase.MountPartitions{},
			&phase.RefreshKeyring{},
			&phase.InstallPackages{},
			&phase.GenerateFstab{},

			// target system
			&phase.InstallBootloader{},
			&phase.ConfigureTimezone{},
			&phase.ConfigureLocale{},
			&phase.ConfigureHostname{},
			&phase.ConfigurePacman{},
			&phase.ConfigureMirrors{Target: true},
			&phase.SetRootPassword{Stdout: opts.Stdout},
			&phase.CreateUser{Stdout: opts.Stdout},
			&phase.EnableServices{},

			&phase.Unmount{},
			&phase.Disconnect{},
		},
	}
}

// Run the Install action
func (a Install) Run(ctx context.Context) error {
	if len(a.Phases) == 0 {
		a.Phases = NewInstall(a.InstallOptions).Phases
	}
	start := time.Now()

	a.Manager.SetPhases(a.Phases)

	if err := a.Manager.Run(ctx); err != nil {
		log.Info(phase.Colorize.Red("==> Install failed").String())
		return err
	}

	duration := time.Since(start).Truncate(time.Second)
	text := fmt.Sprintf("==> Finished in %s", duration)
	log.Info(phase.Colorize.Green(text).String())

	if n := a.Manager.Ignored(); n > 0 {
		log.Warnf("%d command(s) failed and were ignored, review the log before rebooting", n)
	}

	if !a.Manager.DryRun {
		log.Infof("Arch Linux is now installed on %s, you can reboot into %s", a.Manager.Config.Partition.Root, a.Manager.Config.OS.Hostname)
	}

	return nil
}
