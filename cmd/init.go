package cmd

import (
	"io"

	"github.com/archctl/archctl/pkg/apis/archctl.io/v1beta1"
	"github.com/creasty/defaults"
	"github.com/pelletier/go-toml/v2"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v2"
)

var initCommand = &cli.Command{
	Name:  "init",
	Usage: "Create a configuration template",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "yaml",
			Usage: "Output yaml instead of toml",
		},
	},
	Action: func(ctx *cli.Context) error {
		return writeTemplate(ctx.App.Writer, ctx.Bool("yaml"))
	},
}

func templateConfig() (*v1beta1.Config, error) {
	cfg := v1beta1.Config{
		User: v1beta1.User{
			Name:  "arch",
			Shell: "zsh",
		},
		OS: v1beta1.OS{
			Packages:        []string{"base", "base-devel", "linux", "linux-firmware", "btrfs-progs", "grub", "efibootmgr", "os-prober", "networkmanager", "sudo", "zsh"},
			Locale:          []string{"en_US.UTF-8 UTF-8"},
			Hostname:        "archlinux",
			EnabledServices: []string{"NetworkManager"},
		},
		Network: v1beta1.Network{
			Reflector: true,
		},
		Partition: v1beta1.Partition{
			Boot: "/dev/sda1",
			Root: "/dev/sda2",
		},
	}

	if err := defaults.Set(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeTemplate(w io.Writer, asYAML bool) error {
	cfg, err := templateConfig()
	if err != nil {
		return err
	}

	if asYAML {
		encoder := yaml.NewEncoder(w)
		if err := encoder.Encode(cfg); err != nil {
			return err
		}
		return encoder.Close()
	}

	return toml.NewEncoder(w).Encode(cfg)
}
