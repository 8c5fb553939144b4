package action

import (
	"context"
	"fmt"
	"time"

	"github.com/archctl/archctl/phase"
	log "github.com/sirupsen/logrus"
)

// Unmount releases a target tree left mounted by an interrupted install
type Unmount struct {
	// Manager is the phase manager
	Manager *phase.Manager
}

func (u Unmount) Run(ctx context.Context) error {
	start := time.Now()

	u.Manager.AddPhase(
		&phase.Connect{},
		&phase.Unmount{},
		&phase.Disconnect{},
	)

	if err := u.Manager.Run(ctx); err != nil {
		return err
	}

	duration := time.Since(start).Truncate(time.Second)
	text := fmt.Sprintf("==> Finished in %s", duration)
	log.Info(phase.Colorize.Green(text).String())

	return nil
}
