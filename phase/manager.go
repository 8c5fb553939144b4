package phase

import (
	"context"
	"errors"
	"fmt"

	"github.com/archctl/archctl/configurer"
	"github.com/archctl/archctl/pkg/apis/archctl.io/v1beta1"
	"github.com/k0sproject/rig"
	"github.com/logrusorgru/aurora"
	log "github.com/sirupsen/logrus"
)

// DefaultMountpoint is where the target system is assembled
const DefaultMountpoint = "/mnt"

// Colorize is an instance of "aurora", used to colorize the output
var Colorize = aurora.NewAurora(false)

// ErrAborted is returned when the operator declines to continue
var ErrAborted = errors.New("aborted")

// Phase represents a phase
type Phase interface {
	Run(context.Context) error
	Title() string
}

// Phases is a slice of phases
type Phases []Phase

// Index returns the index of the first occurrence matching the given phase title or -1 if not found
func (p Phases) Index(title string) int {
	for i, phase := range p {
		if phase.Title() == title {
			return i
		}
	}
	return -1
}

// InsertAfter inserts a phase after the first occurrence of a phase with the given title
func (p *Phases) InsertAfter(title string, phase Phase) {
	i := p.Index(title)
	if i == -1 {
		return
	}
	*p = append((*p)[:i+1], append(Phases{phase}, (*p)[i+1:]...)...)
}

// InsertBefore inserts a phase before the first occurrence of a phase with the given title
func (p *Phases) InsertBefore(title string, phase Phase) {
	i := p.Index(title)
	if i == -1 {
		return
	}
	*p = append((*p)[:i], append(Phases{phase}, (*p)[i:]...)...)
}

type withconfig interface {
	Title() string
	Prepare(*v1beta1.Config) error
}

type conditional interface {
	ShouldRun() bool
}

type withmanager interface {
	SetManager(*Manager)
}

type beforehook interface {
	Before() error
}

type afterhook interface {
	After(error) error
}

// Host is the machine the installer runs on
type Host interface {
	configurer.Host
	Connect() error
	Disconnect()
	String() string
	OSRelease() rig.OSVersion
}

// Manager executes phases to install the system
type Manager struct {
	phases     Phases
	Config     *v1beta1.Config
	Host       Host
	Configurer configurer.Archlinux

	// Mountpoint is where the target root is mounted
	Mountpoint string
	// DryRun is set when the host only logs what it would do
	DryRun bool
	// Strict turns failures of external commands into errors
	Strict bool

	ignored int
}

// NewManager creates a new Manager
func NewManager(config *v1beta1.Config, h Host) (*Manager, error) {
	if config == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if h == nil {
		return nil, fmt.Errorf("host is nil")
	}

	return &Manager{Config: config, Host: h, Mountpoint: DefaultMountpoint}, nil
}

// AddPhase adds a Phase to Manager
func (m *Manager) AddPhase(p ...Phase) {
	m.phases = append(m.phases, p...)
}

// SetPhases sets the list of phases
func (m *Manager) SetPhases(p Phases) {
	m.phases = p
}

// Ignored returns the number of failures that were logged and ignored
func (m *Manager) Ignored() int {
	return m.ignored
}

// Run executes all the added Phases in order. Phases are never run
// concurrently and the context is only checked between phases.
func (m *Manager) Run(ctx context.Context) error {
	for _, p := range m.phases {
		title := p.Title()

		if err := ctx.Err(); err != nil {
			return fmt.Errorf("stopped before phase '%s': %w", title, err)
		}

		if p, ok := p.(withmanager); ok {
			p.SetManager(m)
		}

		if p, ok := p.(withconfig); ok {
			log.Debugf("preparing phase '%s'", title)
			if err := p.Prepare(m.Config); err != nil {
				return err
			}
		}

		if p, ok := p.(conditional); ok {
			if !p.ShouldRun() {
				log.Debugf("skipping phase '%s'", title)
				continue
			}
		}

		if p, ok := p.(beforehook); ok {
			if err := p.Before(); err != nil {
				log.Debugf("before hook failed '%s'", err.Error())
				return err
			}
		}

		text := Colorize.Green("==> Running phase: %s").String()
		log.Infof(text, title)
		result := p.Run(ctx)

		if p, ok := p.(afterhook); ok {
			if err := p.After(result); err != nil {
				log.Debugf("after hook failed: '%s' (phase result: %v)", err.Error(), result)
				return err
			}
		}

		if result != nil {
			return result
		}
	}

	return nil
}
