package phase

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/archctl/archctl/configurer"
	log "github.com/sirupsen/logrus"
)

// CreateUser adds the configured user to the target system and grants the
// wheel group sudo rights
type CreateUser struct {
	GenericPhase

	// Stdout receives the prompt for the interactive password entry
	Stdout io.Writer
}

// Title for the phase
func (p *CreateUser) Title() string {
	return "Create user"
}

func (p *CreateUser) stdout() io.Writer {
	if p.Stdout == nil {
		return os.Stdout
	}
	return p.Stdout
}

// Run the phase
func (p *CreateUser) Run(_ context.Context) error {
	h := p.host()
	c := p.configurer()
	user := p.Config.User

	log.Infof("%s: creating user %s with shell %s", h, user.Name, user.Shell)
	return p.each(
		func() error { return c.UserAdd(h, p.root(), user.Name, configurer.WheelGroup, user.Shell) },
		func() error {
			fmt.Fprintf(p.stdout(), "password for %s: \n", user.Name)
			return c.Passwd(h, p.root(), user.Name)
		},
		func() error { return h.AppendFile(p.target(configurer.SudoersPath), configurer.SudoersWheel()) },
	)
}
