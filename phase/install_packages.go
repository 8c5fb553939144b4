package phase

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"
)

// InstallPackages bootstraps the target system with the configured packages
type InstallPackages struct {
	GenericPhase
}

// Title for the phase
func (p *InstallPackages) Title() string {
	return "Install packages"
}

// Run the phase
func (p *InstallPackages) Run(_ context.Context) error {
	pkgs := p.Config.OS.Packages
	log.Infof("%s: installing %d packages into %s (%s)", p.host(), len(pkgs), p.root(), strings.Join(pkgs, ", "))
	return p.unchecked(p.configurer().Pacstrap(p.host(), p.root(), pkgs...))
}
