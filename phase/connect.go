package phase

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Connect opens the connection used to run the installer commands
type Connect struct {
	GenericPhase
}

// Title for the phase
func (p *Connect) Title() string {
	return "Connect to host"
}

// Run the phase
func (p *Connect) Run(_ context.Context) error {
	if err := p.host().Connect(); err != nil {
		return fmt.Errorf("%s: failed to connect: %w", p.host(), err)
	}

	log.Infof("%s: connected", p.host())

	return nil
}
