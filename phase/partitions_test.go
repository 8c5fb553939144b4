package phase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatPartitions(t *testing.T) {
	h, err := runPhases(t, testConfig(), &FormatPartitions{})
	require.NoError(t, err)
	require.Equal(t, []string{
		"mkfs.fat -F32 /dev/sda1",
		"mkfs.btrfs -fL ARCH /dev/sda2",
		"mount -t btrfs -o compress=zstd /dev/sda2 /mnt",
		"btrfs subvolume create /mnt/@",
		"btrfs subvolume create /mnt/@home",
		"btrfs subvolume create /mnt/@var-tmp",
		"btrfs subvolume create /mnt/@var-cache",
		"umount /mnt",
	}, h.commands)
}

func TestMountPartitions(t *testing.T) {
	h, err := runPhases(t, testConfig(), &MountPartitions{})
	require.NoError(t, err)
	require.Equal(t, []string{
		"mount -t btrfs -o subvol=/@,compress=zstd /dev/sda2 /mnt",
		"mkdir -p /mnt/home",
		"mount -t btrfs -o subvol=/@home,compress=zstd /dev/sda2 /mnt/home",
		"mkdir -p /mnt/var/tmp",
		"mount -t btrfs -o subvol=/@var-tmp,compress=zstd /dev/sda2 /mnt/var/tmp",
		"mkdir -p /mnt/var/cache",
		"mount -t btrfs -o subvol=/@var-cache,compress=zstd,nodatacow /dev/sda2 /mnt/var/cache",
		"mkdir -p /mnt/boot",
		"mount /dev/sda1 /mnt/boot",
	}, h.commands)
}

func TestMountPartitionsCustomMountpoint(t *testing.T) {
	h := &fakeHost{}
	m := newTestManager(t, testConfig(), h)
	m.Mountpoint = "/target"
	m.SetPhases(Phases{&MountPartitions{}})
	require.NoError(t, m.Run(context.Background()))
	require.Equal(t, "mount -t btrfs -o subvol=/@,compress=zstd /dev/sda2 /target", h.commands[0])
	require.Equal(t, "mount /dev/sda1 /target/boot", h.commands[len(h.commands)-1])
}

func TestFailuresAreIgnored(t *testing.T) {
	h := &fakeHost{failOn: "mkfs.fat"}
	m := newTestManager(t, testConfig(), h)
	m.SetPhases(Phases{&FormatPartitions{}, &MountPartitions{}})

	require.NoError(t, m.Run(context.Background()))
	require.Equal(t, 1, m.Ignored())
	require.Contains(t, h.commands, "umount /mnt")
	require.Contains(t, h.commands, "mount /dev/sda1 /mnt/boot")
}

func TestStrictStopsOnFailure(t *testing.T) {
	h := &fakeHost{failOn: "btrfs subvolume create /mnt/@home"}
	m := newTestManager(t, testConfig(), h)
	m.Strict = true
	m.SetPhases(Phases{&FormatPartitions{}, &MountPartitions{}})

	err := m.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "btrfs subvolume create /mnt/@home")
	require.Equal(t, 0, m.Ignored())
	require.Equal(t, "btrfs subvolume create /mnt/@home", h.commands[len(h.commands)-1])
}
