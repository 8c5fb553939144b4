package host

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	require.Equal(t, "timedatectl set-ntp true", Command("timedatectl", "set-ntp", "true"))
	require.Equal(t, "mount -t btrfs -o subvol=/@home,compress=zstd /dev/sda2 /mnt/home", Command("mount", "-t", "btrfs", "-o", "subvol=/@home,compress=zstd", "/dev/sda2", "/mnt/home"))
	require.Equal(t, "useradd -m 'bad; rm -rf /'", Command("useradd", "-m", "bad; rm -rf /"))
	require.Equal(t, "pacstrap /mnt base 'linux $(reboot)'", Command("pacstrap", "/mnt", "base", "linux $(reboot)"))
}

func TestWriteAndAppendFile(t *testing.T) {
	h := &Host{}
	fn := filepath.Join(t.TempDir(), "pacman.conf")

	require.NoError(t, h.WriteFile(fn, "[options]\n"))
	require.NoError(t, h.AppendFile(fn, "[multilib]\nInclude = /etc/pacman.d/mirrorlist\n"))

	content, err := os.ReadFile(fn)
	require.NoError(t, err)
	require.Equal(t, "[options]\n[multilib]\nInclude = /etc/pacman.d/mirrorlist\n", string(content))

	require.NoError(t, h.WriteFile(fn, "replaced\n"))
	content, err = os.ReadFile(fn)
	require.NoError(t, err)
	require.Equal(t, "replaced\n", string(content))
}

func TestAppendFileCreates(t *testing.T) {
	h := &Host{}
	fn := filepath.Join(t.TempDir(), "sudoers")

	require.NoError(t, h.AppendFile(fn, "%wheel ALL=(ALL:ALL) ALL\n"))
	content, err := os.ReadFile(fn)
	require.NoError(t, err)
	require.Equal(t, "%wheel ALL=(ALL:ALL) ALL\n", string(content))
}

func TestDryRun(t *testing.T) {
	h := &Host{DryRun: true}
	fn := filepath.Join(t.TempDir(), "hostname")

	require.NoError(t, h.Connect())
	require.NoError(t, h.Run("mkfs.fat", "-F32", "/dev/sda1"))
	require.NoError(t, h.RunWithInput("root:secret\n", "chpasswd"))
	require.NoError(t, h.RunInteractive("passwd", "root"))
	out, err := h.RunOutput("genfstab", "-U", "/mnt")
	require.NoError(t, err)
	require.Empty(t, out)

	require.NoError(t, h.WriteFile(fn, "arch\n"))
	require.NoError(t, h.AppendFile(fn, "more\n"))
	_, err = os.Stat(fn)
	require.True(t, os.IsNotExist(err))
	h.Disconnect()
}

func TestRunInteractive(t *testing.T) {
	h := NewLocal()

	require.NoError(t, h.RunInteractive("true"), "looked up from PATH")
	err := h.RunInteractive("false")
	require.Error(t, err, "non-zero exit status")
	require.Contains(t, err.Error(), `command "false"`)
	require.Error(t, h.RunInteractive("sh", "-c", "exit 3"))
	require.NoError(t, h.RunInteractive("sh", "-c", `test "$0" = sh`), "argv[0] is kept")
	require.Error(t, h.RunInteractive())
}

func TestRigDryRun(t *testing.T) {
	require.Nil(t, (&Host{DryRun: true}).Rig())
	require.NotNil(t, NewLocal().Rig())
	require.Equal(t, "", NewLocal().OSRelease().ID)
}
