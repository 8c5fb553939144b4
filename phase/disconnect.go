package phase

import (
	"context"
)

// Disconnect closes the connection to the host
type Disconnect struct {
	GenericPhase
}

// Title for the phase
func (p *Disconnect) Title() string {
	return "Disconnect from host"
}

// Run the phase
func (p *Disconnect) Run(_ context.Context) error {
	p.host().Disconnect()
	return nil
}
