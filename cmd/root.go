package cmd

import (
	"github.com/urfave/cli/v2"
)

// App is the main urfave/cli.App for archctl
var App = &cli.App{
	Name:  "archctl",
	Usage: "Arch Linux installer",
	Flags: []cli.Flag{
		debugFlag,
		traceFlag,
	},
	Commands: []*cli.Command{
		versionCommand,
		installCommand,
		validateCommand,
		initCommand,
		configCommand,
		unmountCommand,
		completionCommand,
	},
	EnableBashCompletion: true,
}
