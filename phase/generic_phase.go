package phase

import (
	"github.com/archctl/archctl/configurer"
	"github.com/archctl/archctl/pkg/apis/archctl.io/v1beta1"
	log "github.com/sirupsen/logrus"
)

// GenericPhase is a basic phase which gets a config via prepare, sets it into p.Config
type GenericPhase struct {
	Config *v1beta1.Config

	manager *Manager
}

// GetConfig is an accessor to phase Config
func (p *GenericPhase) GetConfig() *v1beta1.Config {
	return p.Config
}

// Prepare the phase
func (p *GenericPhase) Prepare(c *v1beta1.Config) error {
	p.Config = c
	return nil
}

// SetManager adds a reference to the phase manager
func (p *GenericPhase) SetManager(m *Manager) {
	p.manager = m
}

func (p *GenericPhase) host() Host {
	return p.manager.Host
}

func (p *GenericPhase) configurer() configurer.Archlinux {
	return p.manager.Configurer
}

// root returns the mount point of the target system
func (p *GenericPhase) root() string {
	return p.manager.Mountpoint
}

// target returns the path of p on the target system
func (p *GenericPhase) target(path string) string {
	return p.configurer().TargetPath(p.root(), path)
}

// unchecked is the single place where failures of external commands and file
// writes are let through. In strict mode the error is returned instead.
func (p *GenericPhase) unchecked(err error) error {
	if err == nil {
		return nil
	}

	if p.manager.Strict {
		return err
	}

	p.manager.ignored++
	log.Warnf("%s: ignoring failure: %s", p.host(), err.Error())

	return nil
}

// each runs the steps in order through unchecked, stopping only on a
// returned error
func (p *GenericPhase) each(steps ...func() error) error {
	for _, step := range steps {
		if err := p.unchecked(step()); err != nil {
			return err
		}
	}
	return nil
}
