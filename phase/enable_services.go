package phase

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// EnableServices enables the configured systemd units on the target system
type EnableServices struct {
	GenericPhase
}

// Title for the phase
func (p *EnableServices) Title() string {
	return "Enable services"
}

// ShouldRun is true when there are services to enable
func (p *EnableServices) ShouldRun() bool {
	return len(p.Config.OS.EnabledServices) > 0
}

// Run the phase
func (p *EnableServices) Run(_ context.Context) error {
	for _, service := range p.Config.OS.EnabledServices {
		log.Infof("%s: enabling %s", p.host(), service)
		if err := p.unchecked(p.configurer().EnableService(p.host(), p.root(), service)); err != nil {
			return err
		}
	}
	return nil
}
