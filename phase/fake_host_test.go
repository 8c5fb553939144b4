package phase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/archctl/archctl/pkg/apis/archctl.io/v1beta1"
	"github.com/k0sproject/rig"
	"github.com/stretchr/testify/require"
)

// fakeHost records everything the phases ask it to do. Commands containing
// failOn return an error.
type fakeHost struct {
	events    []string
	commands  []string
	inputs    []string
	files     map[string]string
	output    string
	failOn    string
	connected bool
	osID      string
}

func (h *fakeHost) String() string { return "fake" }

func (h *fakeHost) Connect() error {
	h.connected = true
	return nil
}

func (h *fakeHost) OSRelease() rig.OSVersion {
	if h.osID == "" {
		return rig.OSVersion{ID: "arch", Name: "Arch Linux"}
	}
	return rig.OSVersion{ID: h.osID}
}

func (h *fakeHost) Disconnect() {
	h.connected = false
}

func (h *fakeHost) record(cmd string) error {
	h.commands = append(h.commands, cmd)
	h.events = append(h.events, cmd)
	if h.failOn != "" && strings.Contains(cmd, h.failOn) {
		return fmt.Errorf("command %q: exit status 1", cmd)
	}
	return nil
}

func (h *fakeHost) Run(args ...string) error {
	return h.record(strings.Join(args, " "))
}

func (h *fakeHost) RunOutput(args ...string) (string, error) {
	if err := h.record(strings.Join(args, " ")); err != nil {
		return "", err
	}
	return h.output, nil
}

func (h *fakeHost) RunWithInput(input string, args ...string) error {
	h.inputs = append(h.inputs, input)
	return h.record(strings.Join(args, " "))
}

func (h *fakeHost) RunInteractive(args ...string) error {
	return h.record("[tty] " + strings.Join(args, " "))
}

func (h *fakeHost) WriteFile(path, content string) error {
	if h.files == nil {
		h.files = map[string]string{}
	}
	h.events = append(h.events, "write "+path)
	h.files[path] = content
	return nil
}

func (h *fakeHost) AppendFile(path, content string) error {
	if h.files == nil {
		h.files = map[string]string{}
	}
	h.events = append(h.events, "append "+path)
	h.files[path] += content
	return nil
}

func testConfig() *v1beta1.Config {
	return &v1beta1.Config{
		User: v1beta1.User{Name: "alice", Shell: "zsh"},
		OS: v1beta1.OS{
			Packages:        []string{"base", "linux", "grub", "efibootmgr", "zsh", "os-prober"},
			Timezone:        "Asia/Shanghai",
			Lang:            "en_US.UTF-8",
			Locale:          []string{"en_US.UTF-8 UTF-8", "zh_CN.UTF-8 UTF-8"},
			Hostname:        "arch",
			EnabledServices: []string{"NetworkManager", "sshd"},
		},
		Network:   v1beta1.Network{Reflector: true},
		Partition: v1beta1.Partition{Boot: "/dev/sda1", Root: "/dev/sda2", Label: "ARCH"},
		Grub:      v1beta1.Grub{BootloaderID: "GRUB"},
	}
}

func newTestManager(t *testing.T, cfg *v1beta1.Config, h *fakeHost) *Manager {
	t.Helper()
	m, err := NewManager(cfg, h)
	require.NoError(t, err)
	return m
}

func runPhases(t *testing.T, cfg *v1beta1.Config, phases ...Phase) (*fakeHost, error) {
	t.Helper()
	h := &fakeHost{}
	m := newTestManager(t, cfg, h)
	m.SetPhases(phases)
	return h, m.Run(context.Background())
}
