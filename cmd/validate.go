package cmd

import (
	"fmt"

	"github.com/archctl/archctl/pkg/apis/archctl.io/v1beta1"
	"github.com/archctl/archctl/pkg/manifest"
	"github.com/urfave/cli/v2"
)

var validateCommand = &cli.Command{
	Name:  "validate",
	Usage: "Check the configuration without touching the system",
	Flags: []cli.Flag{
		configFlag,
		expandEnvFlag,
		debugFlag,
		traceFlag,
	},
	Before: actions(initSilentLogging),
	Action: func(ctx *cli.Context) error {
		cfg, err := manifest.ReadFile(ctx.String("config"), ctx.Bool("expand-env"))
		if err == nil {
			err = cfg.Check()
		}
		if err != nil {
			if !v1beta1.IsConfigError(err) {
				err = &v1beta1.ConfigError{Message: err.Error()}
			}
			fmt.Fprintln(ctx.App.ErrWriter, err.Error())
			return cli.Exit("", 1)
		}

		fmt.Fprintln(ctx.App.Writer, "configuration is valid")
		return nil
	},
}
