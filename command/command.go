// Package command registers commands, splits their invocations into
// options and positional token groups and dispatches them.
package command

import (
	"context"
	"io"
	"strings"
)

// Command represents an executable command.
type Command interface {
	// Name returns the command identifier
	Name() string

	// Description returns human-readable help text
	Description() string

	// Usage returns the declarative usage line (e.g. "parse <dir> [dirs...]")
	Usage() string

	// Options returns the options this command accepts (this is optional)
	Options() []*Option

	// Execute runs the command with its distributed arguments
	// The writer parameter is where command output should be written
	// Returns exit code (0 = success) and error message
	Execute(ctx context.Context, inv *Invocation, w io.Writer) (int, error)
}

// HandlerFunc is the body of a command built with Define.
type HandlerFunc func(ctx context.Context, inv *Invocation, w io.Writer) (int, error)

type definition struct {
	usage       string
	description string
	options     []*Option
	handler     HandlerFunc
}

// Define builds a Command from a usage line and a handler. The name is the
// first word of usage; the usage itself is validated on registration.
func Define(usage, description string, handler HandlerFunc, options ...*Option) Command {
	return &definition{
		usage:       usage,
		description: description,
		options:     options,
		handler:     handler,
	}
}

func (d *definition) Name() string {
	fields := strings.Fields(d.usage)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func (d *definition) Description() string {
	return d.description
}

func (d *definition) Usage() string {
	return d.usage
}

func (d *definition) Options() []*Option {
	return d.options
}

func (d *definition) Execute(ctx context.Context, inv *Invocation, w io.Writer) (int, error) {
	return d.handler(ctx, inv, w)
}
