package phase

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// ValidateConfig checks that the configuration is consistent before anything
// is written to the target devices
type ValidateConfig struct {
	GenericPhase
}

// Title for the phase
func (p *ValidateConfig) Title() string {
	return "Validate configuration"
}

// Run the phase
func (p *ValidateConfig) Run(_ context.Context) error {
	if err := p.Config.Check(); err != nil {
		return err
	}

	log.Debugf("configuration from %s is consistent", p.Config.Origin)

	return nil
}
