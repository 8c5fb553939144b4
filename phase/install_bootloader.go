package phase

import (
	"context"

	"github.com/archctl/archctl/configurer"
	log "github.com/sirupsen/logrus"
)

// InstallBootloader installs and configures grub on the target system
type InstallBootloader struct {
	GenericPhase
}

// Title for the phase
func (p *InstallBootloader) Title() string {
	return "Install bootloader"
}

// Run the phase
func (p *InstallBootloader) Run(_ context.Context) error {
	h := p.host()
	c := p.configurer()
	grub := p.Config.Grub

	log.Infof("%s: installing grub as %s", h, grub.BootloaderID)
	steps := []func() error{
		func() error { return c.GrubInstall(h, p.root(), grub.BootloaderID) },
	}

	if !grub.DisableOSProber {
		steps = append(steps, func() error {
			log.Infof("%s: enabling os-prober", h)
			return h.AppendFile(p.target(configurer.GrubDefaultsPath), configurer.GrubEnableOSProber())
		})
	}

	steps = append(steps, func() error { return c.GrubMkconfig(h, p.root()) })

	return p.each(steps...)
}
