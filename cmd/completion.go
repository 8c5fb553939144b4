package cmd

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/urfave/cli/v2"
)

var completionCommand = &cli.Command{
	Name:  "completion",
	Usage: "Output a shell completion script",
	Description: `Prints a completion script for archctl. Install it on the live system with, for example:
    - Bash: archctl completion -s bash > /etc/bash_completion.d/archctl
    - Zsh:  archctl completion -s zsh > /usr/share/zsh/site-functions/_archctl
    - Fish: archctl completion -s fish > ~/.config/fish/completions/archctl.fish`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "shell",
			Usage:   "Shell to generate the script for (bash, zsh or fish)",
			Value:   "bash",
			Aliases: []string{"s"},
			EnvVars: []string{"SHELL"},
		},
	},
	Action: func(ctx *cli.Context) error {
		script, err := completionScript(ctx.App, path.Base(ctx.String("shell")))
		if err != nil {
			return err
		}
		fmt.Fprint(ctx.App.Writer, script)
		return nil
	},
}

// progName is the name the completion is registered for
func progName() string {
	p, err := os.Executable()
	if err != nil || strings.HasSuffix(p, ".test") || strings.HasSuffix(p, "main") {
		return "archctl"
	}
	return path.Base(p)
}

func completionScript(app *cli.App, shell string) (string, error) {
	switch shell {
	case "bash":
		return fmt.Sprintf(bashCompletion, progName()), nil
	case "zsh":
		return strings.ReplaceAll(zshCompletion, "{{prog}}", progName()), nil
	case "fish":
		return app.ToFishCompletion()
	default:
		return "", fmt.Errorf("no completion script available for %s", shell)
	}
}

const bashCompletion = `#! /bin/bash

_archctl_complete() {
  local cur opts
  COMPREPLY=()
  cur="${COMP_WORDS[COMP_CWORD]}"
  if [[ "$cur" == "-"* ]]; then
    opts=$( ${COMP_WORDS[@]:0:$COMP_CWORD} ${cur} --generate-bash-completion )
  else
    opts=$( ${COMP_WORDS[@]:0:$COMP_CWORD} --generate-bash-completion )
  fi
  COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
  return 0
}

complete -o bashdefault -o default -o nospace -F _archctl_complete %s
`

const zshCompletion = `#compdef {{prog}}

_archctl_complete() {
  local -a opts
  local cur=${words[-1]}
  if [[ "$cur" == "-"* ]]; then
    opts=("${(@f)$(_CLI_ZSH_AUTOCOMPLETE_HACK=1 ${words[@]:0:#words[@]-1} ${cur} --generate-bash-completion)}")
  else
    opts=("${(@f)$(_CLI_ZSH_AUTOCOMPLETE_HACK=1 ${words[@]:0:#words[@]-1} --generate-bash-completion)}")
  fi

  if [[ "${opts[1]}" != "" ]]; then
    _describe 'values' opts
  else
    _files
  fi
}

compdef _archctl_complete {{prog}}
`
