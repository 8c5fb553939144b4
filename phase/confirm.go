package phase

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// Confirm asks the operator before the target devices are wiped
type Confirm struct {
	GenericPhase

	// Force skips the question
	Force bool
	// Stdout must be a terminal for the question to be asked
	Stdout io.Writer

	ask func(message string) (bool, error)
}

// Title for the phase
func (p *Confirm) Title() string {
	return "Confirm destructive operations"
}

// ShouldRun is false when forced or when nothing is going to be executed
func (p *Confirm) ShouldRun() bool {
	return !p.Force && !p.manager.DryRun
}

// Run the phase
func (p *Confirm) Run(_ context.Context) error {
	if p.ask == nil {
		if !isTerminal(p.Stdout) {
			return fmt.Errorf("install requires --force when not running in a terminal")
		}
		p.ask = askConfirm
	}

	msg := fmt.Sprintf("All data on %s and %s will be destroyed. Continue?", p.Config.Partition.Boot, p.Config.Partition.Root)
	ok, err := p.ask(msg)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("confirmation or --force required to proceed: %w", ErrAborted)
	}

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func askConfirm(message string) (bool, error) {
	confirmed := false
	prompt := &survey.Confirm{Message: message}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}
