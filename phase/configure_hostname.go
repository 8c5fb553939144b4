package phase

import (
	"context"

	"github.com/archctl/archctl/configurer"
	log "github.com/sirupsen/logrus"
)

// ConfigureHostname writes the target's hostname and hosts files
type ConfigureHostname struct {
	GenericPhase
}

// Title for the phase
func (p *ConfigureHostname) Title() string {
	return "Configure hostname"
}

// Run the phase
func (p *ConfigureHostname) Run(_ context.Context) error {
	h := p.host()
	hostname := p.Config.OS.Hostname

	log.Infof("%s: setting hostname to %s", h, hostname)
	return p.each(
		func() error { return h.WriteFile(p.target(configurer.HostnamePath), configurer.Hostname(hostname)) },
		func() error { return h.WriteFile(p.target(configurer.HostsPath), configurer.Hosts(hostname)) },
	)
}
