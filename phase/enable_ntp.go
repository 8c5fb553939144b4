package phase

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// EnableNTP turns on network time synchronization on the live system
type EnableNTP struct {
	GenericPhase
}

// Title for the phase
func (p *EnableNTP) Title() string {
	return "Enable network time synchronization"
}

// Run the phase
func (p *EnableNTP) Run(_ context.Context) error {
	log.Infof("%s: enabling ntp", p.host())
	return p.unchecked(p.configurer().SetNTP(p.host(), true))
}
