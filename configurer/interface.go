package configurer

import (
	rigos "github.com/k0sproject/rig/os"
)

// Host is where the configurer issues its commands and file writes
type Host interface {
	Run(args ...string) error
	RunOutput(args ...string) (string, error)
	RunWithInput(input string, args ...string) error
	RunInteractive(args ...string) error
	WriteFile(path, content string) error
	AppendFile(path, content string) error
}

// RigHost is implemented by hosts that can hand their connection to rig's os
// support modules. Rig returns nil when nothing may be executed.
type RigHost interface {
	Rig() rigos.Host
}
