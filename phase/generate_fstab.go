package phase

import (
	"context"
	"strings"

	"github.com/archctl/archctl/configurer"
	log "github.com/sirupsen/logrus"
)

// GenerateFstab writes the target's fstab from the active mounts
type GenerateFstab struct {
	GenericPhase
}

// Title for the phase
func (p *GenerateFstab) Title() string {
	return "Generate fstab"
}

// Run the phase
func (p *GenerateFstab) Run(_ context.Context) error {
	fstab, err := p.configurer().Genfstab(p.host(), p.root())
	if err := p.unchecked(err); err != nil {
		return err
	}

	fn := p.target(configurer.FstabPath)
	log.Infof("%s: writing %s", p.host(), fn)

	return p.unchecked(p.host().WriteFile(fn, strings.TrimRight(fstab, "\n")+"\n"))
}
