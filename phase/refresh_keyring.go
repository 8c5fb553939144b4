package phase

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// EntropyService is installed and started so key generation does not stall
const EntropyService = "haveged"

// RefreshKeyring recreates and populates the pacman keyring on the live system
type RefreshKeyring struct {
	GenericPhase
}

// Title for the phase
func (p *RefreshKeyring) Title() string {
	return "Refresh pacman keyring"
}

// Run the phase
func (p *RefreshKeyring) Run(_ context.Context) error {
	h := p.host()
	c := p.configurer()

	log.Infof("%s: installing %s", h, EntropyService)
	steps := []func() error{
		func() error { return c.UpgradeInstall(h, EntropyService) },
		func() error { return c.StartService(h, "", EntropyService) },
		func() error { return c.EnableService(h, "", EntropyService) },
		func() error { return c.DeleteKeyring(h) },
		func() error { return c.InitKeyring(h) },
		func() error { return c.PopulateKeyring(h, "archlinux") },
	}

	if p.Config.Pacman.ArchlinuxCN {
		steps = append(steps, func() error { return c.PopulateKeyring(h, "archlinuxcn") })
	}

	return p.each(steps...)
}
