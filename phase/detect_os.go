package phase

import (
	"context"
	"fmt"

	"github.com/archctl/archctl/configurer"
	"github.com/k0sproject/rig/os/registry"
	log "github.com/sirupsen/logrus"
)

// DetectOS resolves the os support module for the live system. Only an Arch
// Linux live environment provides pacstrap, arch-chroot and genfstab.
type DetectOS struct {
	GenericPhase
}

// Title for the phase
func (p *DetectOS) Title() string {
	return "Detect host operating system"
}

// ShouldRun is false in dry-run mode where the host is never connected
func (p *DetectOS) ShouldRun() bool {
	return !p.manager.DryRun
}

// Run the phase
func (p *DetectOS) Run(_ context.Context) error {
	osv := p.host().OSRelease()

	bf, err := registry.GetOSModuleBuilder(osv)
	if err == nil {
		if c, ok := bf().(*configurer.Archlinux); ok {
			p.manager.Configurer = *c
			log.Infof("%s: is running %s", p.host(), osv.String())
			return nil
		}
	}

	return p.unchecked(fmt.Errorf("%s: unsupported operating system %q, archctl needs an arch linux live environment", p.host(), osv.ID))
}
