package cmd

import (
	"fmt"
	"strings"

	"github.com/archctl/archctl/pkg/apis/archctl.io/v1beta1"
	"github.com/k0sproject/dig"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v2"
)

var configCommand = &cli.Command{
	Name:  "config",
	Usage: "Configuration related sub-commands",
	Subcommands: []*cli.Command{
		configGetCommand,
	},
}

var configGetCommand = &cli.Command{
	Name:      "get",
	Usage:     "Output a value from the configuration using a dotted path, for example os.hostname",
	ArgsUsage: "<key>",
	Flags: []cli.Flag{
		configFlag,
		expandEnvFlag,
		debugFlag,
		traceFlag,
	},
	Before: actions(initSilentLogging, initConfig),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return fmt.Errorf("expected exactly one key")
		}

		cfg := ctx.Context.Value(ctxConfigKey{}).(*v1beta1.Config)
		out, err := configValue(cfg, ctx.Args().First())
		if err != nil {
			return err
		}

		fmt.Fprint(ctx.App.Writer, out)
		return nil
	},
}

// configValue resolves a dotted key from the configuration and formats it
// for output. Scalars are printed as is, lists and sections as yaml.
func configValue(cfg *v1beta1.Config, key string) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}

	m := dig.Mapping{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return "", err
	}

	v := m.Dig(strings.Split(key, ".")...)
	switch v := v.(type) {
	case nil:
		return "", fmt.Errorf("key %s not found in the configuration", key)
	case string, bool, int:
		return fmt.Sprintf("%v\n", v), nil
	default:
		out, err := yaml.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}
