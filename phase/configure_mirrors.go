package phase

import (
	"context"

	"github.com/archctl/archctl/configurer"
	log "github.com/sirupsen/logrus"
)

// ConfigureMirrors sets up the pacman mirror list. It runs once on the live
// system and, with Target set, once more inside the installed system.
type ConfigureMirrors struct {
	GenericPhase

	// Target runs the phase against the mounted target system
	Target bool
}

// Title for the phase
func (p *ConfigureMirrors) Title() string {
	if p.Target {
		return "Configure target mirror list"
	}
	return "Configure mirror list"
}

func (p *ConfigureMirrors) chrootDir() string {
	if p.Target {
		return p.root()
	}
	return ""
}

// Run the phase
func (p *ConfigureMirrors) Run(_ context.Context) error {
	root := p.chrootDir()
	network := p.Config.Network

	if network.Reflector {
		log.Infof("%s: ranking mirrors with reflector", p.host())
		if err := p.unchecked(p.configurer().RankMirrors(p.host(), root)); err != nil {
			return err
		}
	} else {
		log.Infof("%s: stopping reflector", p.host())
		if err := p.unchecked(p.configurer().StopService(p.host(), root, "reflector.service")); err != nil {
			return err
		}
	}

	if len(network.Mirrors) == 0 {
		return nil
	}

	mirrorlist := p.configurer().TargetPath(root, configurer.MirrorListPath)
	log.Infof("%s: writing %d mirrors to %s", p.host(), len(network.Mirrors), mirrorlist)

	return p.unchecked(p.host().WriteFile(mirrorlist, configurer.MirrorList(network.Mirrors)))
}
