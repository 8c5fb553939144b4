// Package host runs the installer commands and file writes on the live system
package host

import (
	"fmt"
	"os"
	osexec "os/exec"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/k0sproject/rig"
	"github.com/k0sproject/rig/exec"
	rigos "github.com/k0sproject/rig/os"
	log "github.com/sirupsen/logrus"
)

// Host is the machine archctl is running on. Commands are given as argument
// lists and quoted before they are handed to the shell.
type Host struct {
	rig.Connection

	// DryRun logs the commands and file writes instead of performing them
	DryRun bool
}

// NewLocal returns a Host for the local machine
func NewLocal() *Host {
	return &Host{
		Connection: rig.Connection{
			Localhost: &rig.Localhost{Enabled: true},
		},
	}
}

func (h *Host) String() string {
	return "localhost"
}

// OSRelease returns the os-release of the running distribution, known after
// Connect
func (h *Host) OSRelease() rig.OSVersion {
	if h.OSVersion == nil {
		return rig.OSVersion{}
	}
	return *h.OSVersion
}

// Rig returns the rig connection for the os support modules, nil in dry-run
// mode where nothing may be executed
func (h *Host) Rig() rigos.Host {
	if h.DryRun {
		return nil
	}
	return &h.Connection
}

// Command joins the arguments into a shell command line, quoting where needed
func Command(args ...string) string {
	return shellescape.QuoteCommand(args)
}

// Connect to the host, a no-op in dry-run mode
func (h *Host) Connect() error {
	if h.DryRun {
		return nil
	}
	return h.Connection.Connect()
}

// Disconnect from the host
func (h *Host) Disconnect() {
	if h.DryRun {
		return
	}
	h.Connection.Disconnect()
}

// Run executes a command and streams its output into the log
func (h *Host) Run(args ...string) error {
	cmd := Command(args...)
	if h.DryRun {
		log.Infof("%s: [dry-run] %s", h, cmd)
		return nil
	}
	if err := h.Exec(cmd, exec.StreamOutput()); err != nil {
		return fmt.Errorf("command %q: %w", cmd, err)
	}
	return nil
}

// RunOutput executes a command and returns its output
func (h *Host) RunOutput(args ...string) (string, error) {
	cmd := Command(args...)
	if h.DryRun {
		log.Infof("%s: [dry-run] %s", h, cmd)
		return "", nil
	}
	out, err := h.ExecOutput(cmd)
	if err != nil {
		return "", fmt.Errorf("command %q: %w", cmd, err)
	}
	return out, nil
}

// RunWithInput executes a command feeding input to its stdin. The input is
// redacted from the logs.
func (h *Host) RunWithInput(input string, args ...string) error {
	cmd := Command(args...)
	if h.DryRun {
		log.Infof("%s: [dry-run] %s < [redacted]", h, cmd)
		return nil
	}
	if err := h.Exec(cmd, exec.Stdin(input), exec.RedactString(input)); err != nil {
		return fmt.Errorf("command %q: %w", cmd, err)
	}
	return nil
}

// RunInteractive executes a command attached to the terminal of the
// installer. The command is looked up from PATH and a non-zero exit status is
// returned as an error.
func (h *Host) RunInteractive(args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command given")
	}
	cmd := Command(args...)
	if h.DryRun {
		log.Infof("%s: [dry-run] %s (interactive)", h, cmd)
		return nil
	}

	log.Debugf("%s: executing interactive `%s`", h, cmd)
	c := osexec.Command(args[0], args[1:]...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("command %q: %w", cmd, err)
	}
	return nil
}

// WriteFile replaces the content of a file
func (h *Host) WriteFile(path, content string) error {
	if h.DryRun {
		log.Infof("%s: [dry-run] write %s (%d bytes)", h, path, len(content))
		log.Debugf("%s: [dry-run] %s:\n%s", h, path, strings.TrimRight(content, "\n"))
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// AppendFile appends content to a file, creating it if needed
func (h *Host) AppendFile(path, content string) error {
	if h.DryRun {
		log.Infof("%s: [dry-run] append to %s (%d bytes)", h, path, len(content))
		log.Debugf("%s: [dry-run] %s:\n%s", h, path, strings.TrimRight(content, "\n"))
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("append %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("append %s: %w", path, err)
	}

	return nil
}
