package cmd

import (
	"fmt"
	"os"

	"github.com/archctl/archctl/action"
	"github.com/archctl/archctl/phase"
	"github.com/archctl/archctl/pkg/apis/archctl.io/v1beta1"

	"github.com/urfave/cli/v2"
)

var installCommand = &cli.Command{
	Name:  "install",
	Usage: "Install Arch Linux as described in the configuration",
	Flags: []cli.Flag{
		configFlag,
		expandEnvFlag,
		dryRunFlag,
		strictFlag,
		forceFlag,
		mountpointFlag,
		debugFlag,
		traceFlag,
	},
	Before: actions(initLogging, initConfig, initManager, displayLogo),
	Action: func(ctx *cli.Context) error {
		installAction := action.NewInstall(action.InstallOptions{
			Manager: ctx.Context.Value(ctxManagerKey{}).(*phase.Manager),
			Force:   ctx.Bool("force"),
			Stdout:  os.Stdout,
		})

		if err := installAction.Run(ctx.Context); err != nil {
			if v1beta1.IsConfigError(err) {
				fmt.Fprintln(ctx.App.ErrWriter, err.Error())
				return cli.Exit("", 1)
			}
			return fmt.Errorf("install failed - log file saved to %s: %w", logFileName(ctx), err)
		}

		return nil
	},
}

func displayLogo(ctx *cli.Context) error {
	if ctx.Bool("dry-run") {
		fmt.Println(phase.Colorize.Yellow("archctl: dry run, nothing will be changed").String())
	}
	fmt.Print(logo + "\n")
	return nil
}

const logo = `
                  _          _   _
   __ _ _ __ ___| |__   ___| |_| |
  / _' | '__/ __| '_ \ / __| __| |
 | (_| | | | (__| | | | (__| |_| |
  \__,_|_|  \___|_| |_|\___|\__|_|
`
