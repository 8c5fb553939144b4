package phase

import (
	"context"

	"github.com/archctl/archctl/configurer"
	log "github.com/sirupsen/logrus"
)

// ConfigurePacman enables the optional repositories on the target system
type ConfigurePacman struct {
	GenericPhase
}

// Title for the phase
func (p *ConfigurePacman) Title() string {
	return "Configure pacman repositories"
}

// ShouldRun is true when at least one repository is enabled
func (p *ConfigurePacman) ShouldRun() bool {
	return p.Config.Pacman.Multilib || p.Config.Pacman.ArchlinuxCN
}

// Run the phase
func (p *ConfigurePacman) Run(_ context.Context) error {
	h := p.host()
	conf := p.target(configurer.PacmanConfPath)

	var steps []func() error
	if p.Config.Pacman.Multilib {
		steps = append(steps, func() error {
			log.Infof("%s: enabling multilib", h)
			return h.AppendFile(conf, configurer.MultilibRepo())
		})
	}
	if p.Config.Pacman.ArchlinuxCN {
		steps = append(steps, func() error {
			log.Infof("%s: enabling archlinuxcn", h)
			return h.AppendFile(conf, configurer.ArchlinuxCNRepo())
		})
	}

	return p.each(steps...)
}
