package configurer

import (
	"fmt"
	"strings"
)

// WheelGroup is the group that gets sudo rights
const WheelGroup = "wheel"

// ArchlinuxCNServer is the archlinuxcn repository url, $arch is expanded by pacman
const ArchlinuxCNServer = "https://repo.archlinuxcn.org/$arch"

// MultilineString joins the lines with newlines and terminates the last one
func MultilineString(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// MirrorList returns a pacman mirror list with one Server line per url
func MirrorList(mirrors []string) string {
	lines := make([]string, len(mirrors))
	for i, m := range mirrors {
		lines[i] = "Server = " + m
	}
	return MultilineString(lines...)
}

// Hostname returns the content for /etc/hostname
func Hostname(hostname string) string {
	return MultilineString(hostname)
}

// Hosts returns the content for /etc/hosts
func Hosts(hostname string) string {
	return MultilineString(
		"127.0.0.1 localhost",
		"::1       localhost",
		fmt.Sprintf("127.0.1.1 %s.localdomain %s", hostname, hostname),
	)
}

// LocaleConf returns the content for /etc/locale.conf
func LocaleConf(lang string) string {
	return "LANG=" + lang
}

// MultilibRepo returns the pacman.conf section that enables multilib
func MultilibRepo() string {
	return MultilineString("[multilib]", "Include = "+MirrorListPath)
}

// ArchlinuxCNRepo returns the pacman.conf section for the archlinuxcn repository
func ArchlinuxCNRepo() string {
	return MultilineString("[archlinuxcn]", "Server = "+ArchlinuxCNServer)
}

// GrubEnableOSProber returns the grub defaults line that turns os-prober on
func GrubEnableOSProber() string {
	return MultilineString("GRUB_DISABLE_OS_PROBER=false")
}

// SudoersWheel returns the sudoers rule that gives the wheel group full rights
func SudoersWheel() string {
	return MultilineString("%" + WheelGroup + " ALL=(ALL:ALL) ALL")
}
