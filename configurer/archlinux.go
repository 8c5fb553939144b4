package configurer

import (
	"path"
	"strconv"

	"github.com/k0sproject/rig"
	rigos "github.com/k0sproject/rig/os"
	"github.com/k0sproject/rig/os/linux"
	"github.com/k0sproject/rig/os/registry"
)

// Paths on the live system and, prefixed with the mount point, on the target
const (
	MirrorListPath   = "/etc/pacman.d/mirrorlist"
	KeyringPath      = "/etc/pacman.d/gnupg"
	PacmanConfPath   = "/etc/pacman.conf"
	FstabPath        = "/etc/fstab"
	GrubDefaultsPath = "/etc/default/grub"
	GrubConfigPath   = "/boot/grub/grub.cfg"
	LocaleGenPath    = "/etc/locale.gen"
	LocaleConfPath   = "/etc/locale.conf"
	HostnamePath     = "/etc/hostname"
	HostsPath        = "/etc/hosts"
	SudoersPath      = "/etc/sudoers"
	LocaltimePath    = "/etc/localtime"
	ZoneinfoDir      = "/usr/share/zoneinfo"
	EFIDirectory     = "/boot"
)

// Mirror ranking policy used with reflector
const (
	ReflectorCountry = "China"
	ReflectorLimit   = 10
	ReflectorSort    = "rate"
)

// Archlinux issues the commands needed to install and set up Arch Linux.
// Functions taking a root run their command inside arch-chroot when the root
// is not empty. Services on the live system are handled by rig's os support
// module when the host provides a rig connection.
type Archlinux struct {
	linux.Archlinux
}

func init() {
	registry.RegisterOSModule(
		func(os rig.OSVersion) bool {
			return os.ID == "arch" || os.IDLike == "arch"
		},
		func() any {
			return &Archlinux{}
		},
	)
}

// live returns the rig host for a command on the live system or nil when
// the command goes into a chroot or the host has no rig connection to give
func live(h Host, root string) rigos.Host {
	if root != "" {
		return nil
	}
	if r, ok := h.(RigHost); ok {
		return r.Rig()
	}
	return nil
}

// Chroot prefixes the command with arch-chroot when root is set
func (c Archlinux) Chroot(root string, args ...string) []string {
	if root == "" {
		return args
	}
	return append([]string{"arch-chroot", root}, args...)
}

// TargetPath returns the location of p under root
func (c Archlinux) TargetPath(root, p string) string {
	if root == "" {
		return p
	}
	return path.Join(root, p)
}

// SetNTP toggles network time synchronization
func (c Archlinux) SetNTP(h Host, enabled bool) error {
	return h.Run("timedatectl", "set-ntp", strconv.FormatBool(enabled))
}

// RankMirrors writes the fastest mirrors into the mirror list using reflector
func (c Archlinux) RankMirrors(h Host, root string) error {
	return h.Run(c.Chroot(root, "reflector", "-c", ReflectorCountry, "-l", strconv.Itoa(ReflectorLimit), "--sort", ReflectorSort, "--save", MirrorListPath)...)
}

// StartService starts a systemd unit
func (c Archlinux) StartService(h Host, root, name string) error {
	if rh := live(h, root); rh != nil {
		return c.Archlinux.StartService(rh, name)
	}
	return h.Run(c.Chroot(root, "systemctl", "start", name)...)
}

// StopService stops a systemd unit
func (c Archlinux) StopService(h Host, root, name string) error {
	if rh := live(h, root); rh != nil {
		return c.Archlinux.StopService(rh, name)
	}
	return h.Run(c.Chroot(root, "systemctl", "stop", name)...)
}

// EnableService enables a systemd unit
func (c Archlinux) EnableService(h Host, root, name string) error {
	if rh := live(h, root); rh != nil {
		return c.Archlinux.EnableService(rh, name)
	}
	return h.Run(c.Chroot(root, "systemctl", "enable", name)...)
}

// UpgradeInstall synchronizes the package databases, upgrades the system and
// installs the packages
func (c Archlinux) UpgradeInstall(h Host, pkgs ...string) error {
	args := append([]string{"pacman", "-Syu"}, pkgs...)
	return h.Run(append(args, "--noconfirm")...)
}

// DeleteKeyring removes the pacman keyring
func (c Archlinux) DeleteKeyring(h Host) error {
	return h.Run("rm", "-fr", KeyringPath)
}

// InitKeyring creates a fresh pacman keyring
func (c Archlinux) InitKeyring(h Host) error {
	return h.Run("pacman-key", "--init")
}

// PopulateKeyring adds the keys of a distribution keyring package
func (c Archlinux) PopulateKeyring(h Host, keyring string) error {
	return h.Run("pacman-key", "--populate", keyring)
}

// Pacstrap installs packages into the new root
func (c Archlinux) Pacstrap(h Host, root string, pkgs ...string) error {
	return h.Run(append([]string{"pacstrap", root}, pkgs...)...)
}

// Genfstab returns the fstab for the mounts under root, identified by UUID
func (c Archlinux) Genfstab(h Host, root string) (string, error) {
	return h.RunOutput("genfstab", "-U", root)
}

// FormatFAT32 creates a FAT32 filesystem
func (c Archlinux) FormatFAT32(h Host, device string) error {
	return h.Run("mkfs.fat", "-F32", device)
}

// FormatBtrfs creates a labeled btrfs filesystem, overwriting any existing one
func (c Archlinux) FormatBtrfs(h Host, label, device string) error {
	return h.Run("mkfs.btrfs", "-fL", label, device)
}

// CreateSubvolume creates a btrfs subvolume
func (c Archlinux) CreateSubvolume(h Host, p string) error {
	return h.Run("btrfs", "subvolume", "create", p)
}

// Mount mounts a device. An empty fstype or options are left out.
func (c Archlinux) Mount(h Host, fstype, options, device, dir string) error {
	args := []string{"mount"}
	if fstype != "" {
		args = append(args, "-t", fstype)
	}
	if options != "" {
		args = append(args, "-o", options)
	}
	return h.Run(append(args, device, dir)...)
}

// Umount unmounts a mount point
func (c Archlinux) Umount(h Host, dir string) error {
	return h.Run("umount", dir)
}

// UmountRecursive unmounts a mount point and everything mounted below it
func (c Archlinux) UmountRecursive(h Host, dir string) error {
	return h.Run("umount", "-R", dir)
}

// MkDir creates a directory and its parents if missing
func (c Archlinux) MkDir(h Host, dir string) error {
	return h.Run("mkdir", "-p", dir)
}

// GrubInstall installs grub for x86_64 UEFI systems
func (c Archlinux) GrubInstall(h Host, root, bootloaderID string) error {
	return h.Run(c.Chroot(root, "grub-install", "--target=x86_64-efi", "--efi-directory="+EFIDirectory, "--bootloader-id="+bootloaderID)...)
}

// GrubMkconfig regenerates the grub configuration
func (c Archlinux) GrubMkconfig(h Host, root string) error {
	return h.Run(c.Chroot(root, "grub-mkconfig", "-o", GrubConfigPath)...)
}

// LinkTimezone points /etc/localtime to the zone
func (c Archlinux) LinkTimezone(h Host, root, zone string) error {
	return h.Run(c.Chroot(root, "ln", "-sf", path.Join(ZoneinfoDir, zone), LocaltimePath)...)
}

// SyncHardwareClock sets the hardware clock from the system clock
func (c Archlinux) SyncHardwareClock(h Host, root string) error {
	return h.Run(c.Chroot(root, "hwclock", "--systohc")...)
}

// LocaleGen generates the locales listed in locale.gen
func (c Archlinux) LocaleGen(h Host, root string) error {
	return h.Run(c.Chroot(root, "locale-gen")...)
}

// SetPassword sets a password non-interactively through chpasswd
func (c Archlinux) SetPassword(h Host, root, user, password string) error {
	return h.RunWithInput(user+":"+password+"\n", c.Chroot(root, "chpasswd")...)
}

// Passwd asks the operator for a new password
func (c Archlinux) Passwd(h Host, root, user string) error {
	return h.RunInteractive(c.Chroot(root, "passwd", user)...)
}

// UserAdd creates a user with a home directory, supplementary group and login
// shell. The shell is looked up from /usr/bin.
func (c Archlinux) UserAdd(h Host, root, name, group, shell string) error {
	return h.Run(c.Chroot(root, "useradd", "-m", "-G", group, "-s", path.Join("/usr/bin", shell), name)...)
}
