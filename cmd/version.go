package cmd

import (
	"fmt"

	"github.com/archctl/archctl/version"
	"github.com/urfave/cli/v2"
)

var versionCommand = &cli.Command{
	Name:  "version",
	Usage: "Output archctl version",
	Action: func(ctx *cli.Context) error {
		fmt.Fprintf(ctx.App.Writer, "version: %s\n", version.Version)
		fmt.Fprintf(ctx.App.Writer, "commit: %s\n", version.GitCommit)
		return nil
	},
}
