package phase

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// ConfigureTimezone sets the target's local time zone and hardware clock
type ConfigureTimezone struct {
	GenericPhase
}

// Title for the phase
func (p *ConfigureTimezone) Title() string {
	return "Configure timezone"
}

// Run the phase
func (p *ConfigureTimezone) Run(_ context.Context) error {
	h := p.host()
	c := p.configurer()

	log.Infof("%s: setting timezone to %s", h, p.Config.OS.Timezone)
	return p.each(
		func() error { return c.LinkTimezone(h, p.root(), p.Config.OS.Timezone) },
		func() error { return c.SyncHardwareClock(h, p.root()) },
	)
}
