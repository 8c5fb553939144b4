package cmd

import (
	"github.com/archctl/archctl/action"
	"github.com/archctl/archctl/phase"

	"github.com/urfave/cli/v2"
)

var unmountCommand = &cli.Command{
	Name:  "unmount",
	Usage: "Unmount the target system left behind by an interrupted install",
	Flags: []cli.Flag{
		configFlag,
		expandEnvFlag,
		dryRunFlag,
		mountpointFlag,
		debugFlag,
		traceFlag,
	},
	Before: actions(initLogging, initConfig, initManager),
	Action: func(ctx *cli.Context) error {
		manager := ctx.Context.Value(ctxManagerKey{}).(*phase.Manager)
		manager.Strict = true

		return action.Unmount{Manager: manager}.Run(ctx.Context)
	},
}
