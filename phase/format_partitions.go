package phase

import (
	"context"
	"path"

	log "github.com/sirupsen/logrus"
)

// Subvolumes are the btrfs subvolumes created on the root device
var Subvolumes = []string{"@", "@home", "@var-tmp", "@var-cache"}

// FormatPartitions creates the filesystems and the btrfs subvolumes. All data
// on the configured devices is lost.
type FormatPartitions struct {
	GenericPhase
}

// Title for the phase
func (p *FormatPartitions) Title() string {
	return "Format partitions"
}

// Run the phase
func (p *FormatPartitions) Run(_ context.Context) error {
	h := p.host()
	c := p.configurer()
	part := p.Config.Partition
	root := p.root()

	log.Infof("%s: formatting %s as fat32 and %s as btrfs (%s)", h, part.Boot, part.Root, part.Label)

	steps := []func() error{
		func() error { return c.FormatFAT32(h, part.Boot) },
		func() error { return c.FormatBtrfs(h, part.Label, part.Root) },
		func() error { return c.Mount(h, "btrfs", "compress=zstd", part.Root, root) },
	}
	for _, subvol := range Subvolumes {
		dir := path.Join(root, subvol)
		steps = append(steps, func() error {
			log.Infof("%s: creating subvolume %s", h, subvol)
			return c.CreateSubvolume(h, dir)
		})
	}
	steps = append(steps, func() error { return c.Umount(h, root) })

	return p.each(steps...)
}
