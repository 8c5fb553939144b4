package phase

import (
	"context"
	"path"

	log "github.com/sirupsen/logrus"
)

type subvolumeMount struct {
	subvol  string
	dir     string
	options string
}

// subvolumeMounts lists the btrfs mounts in the order they need to be made,
// the root subvolume first
var subvolumeMounts = []subvolumeMount{
	{subvol: "@", dir: "", options: "compress=zstd"},
	{subvol: "@home", dir: "home", options: "compress=zstd"},
	{subvol: "@var-tmp", dir: "var/tmp", options: "compress=zstd"},
	{subvol: "@var-cache", dir: "var/cache", options: "compress=zstd,nodatacow"},
}

// MountPartitions mounts the subvolumes and the boot partition under the
// mount point
type MountPartitions struct {
	GenericPhase
}

// Title for the phase
func (p *MountPartitions) Title() string {
	return "Mount partitions"
}

// Run the phase
func (p *MountPartitions) Run(_ context.Context) error {
	h := p.host()
	c := p.configurer()
	part := p.Config.Partition
	root := p.root()

	var steps []func() error
	for _, m := range subvolumeMounts {
		dir := path.Join(root, m.dir)
		options := "subvol=/" + m.subvol + "," + m.options
		if m.dir != "" {
			steps = append(steps, func() error { return c.MkDir(h, dir) })
		}
		steps = append(steps, func() error {
			log.Infof("%s: mounting %s on %s", h, m.subvol, dir)
			return c.Mount(h, "btrfs", options, part.Root, dir)
		})
	}

	boot := path.Join(root, "boot")
	steps = append(steps,
		func() error { return c.MkDir(h, boot) },
		func() error { return c.Mount(h, "", "", part.Boot, boot) },
	)

	return p.each(steps...)
}
