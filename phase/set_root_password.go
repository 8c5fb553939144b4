package phase

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// SetRootPassword sets the target's root password from the configuration or
// asks the operator for one
type SetRootPassword struct {
	GenericPhase

	// Stdout receives the prompt for the interactive password entry
	Stdout io.Writer
}

// Title for the phase
func (p *SetRootPassword) Title() string {
	return "Set root password"
}

func (p *SetRootPassword) stdout() io.Writer {
	if p.Stdout == nil {
		return os.Stdout
	}
	return p.Stdout
}

// Run the phase
func (p *SetRootPassword) Run(_ context.Context) error {
	h := p.host()
	c := p.configurer()

	if password := p.Config.User.RootPassword; password != "" {
		log.Infof("%s: setting root password from configuration", h)
		return p.unchecked(c.SetPassword(h, p.root(), "root", password))
	}

	fmt.Fprintln(p.stdout(), "Password for root: ")
	return p.unchecked(c.Passwd(h, p.root(), "root"))
}
