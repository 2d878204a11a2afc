// Package builtin contains the commands every commander starts with.
package builtin

import "github.com/mwantia/commander/command"

// Commands returns a fresh instance of every builtin command.
func Commands() []command.Command {
	return []command.Command{
		&EchoCommand{},
		&RepeatCommand{},
		&SumCommand{},
	}
}
