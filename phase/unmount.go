package phase

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Unmount unmounts the target tree
type Unmount struct {
	GenericPhase
}

// Title for the phase
func (p *Unmount) Title() string {
	return "Unmount target"
}

// Run the phase
func (p *Unmount) Run(_ context.Context) error {
	log.Infof("%s: unmounting %s", p.host(), p.root())
	return p.unchecked(p.configurer().UmountRecursive(p.host(), p.root()))
}
