package phase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigureMirrorsReflector(t *testing.T) {
	cfg := testConfig()
	cfg.Network.Reflector = true
	cfg.Network.Mirrors = []string{"http://m1", "http://m2"}

	h, err := runPhases(t, cfg, &ConfigureMirrors{})
	require.NoError(t, err)
	require.Equal(t, []string{
		"reflector -c China -l 10 --sort rate --save /etc/pacman.d/mirrorlist",
		"write /etc/pacman.d/mirrorlist",
	}, h.events)
	require.Equal(t, "Server = http://m1\nServer = http://m2\n", h.files["/etc/pacman.d/mirrorlist"])
}

func TestConfigureMirrorsNoReflector(t *testing.T) {
	cfg := testConfig()
	cfg.Network.Reflector = false

	h, err := runPhases(t, cfg, &ConfigureMirrors{})
	require.NoError(t, err)
	require.Equal(t, []string{"systemctl stop reflector.service"}, h.events)
	require.Empty(t, h.files, "mirror list must be left untouched without custom mirrors")
}

func TestConfigureMirrorsTarget(t *testing.T) {
	cfg := testConfig()
	cfg.Network.Reflector = true
	cfg.Network.Mirrors = []string{"https://mirror.example.com/archlinux/$repo/os/$arch"}

	p := &ConfigureMirrors{Target: true}
	require.Equal(t, "Configure target mirror list", p.Title())

	h, err := runPhases(t, cfg, p)
	require.NoError(t, err)
	require.Equal(t, []string{
		"arch-chroot /mnt reflector -c China -l 10 --sort rate --save /etc/pacman.d/mirrorlist",
		"write /mnt/etc/pacman.d/mirrorlist",
	}, h.events)
	require.Equal(t, "Server = https://mirror.example.com/archlinux/$repo/os/$arch\n", h.files["/mnt/etc/pacman.d/mirrorlist"])
}
