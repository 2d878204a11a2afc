package builtin

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mwantia/commander/command"
)

type EchoCommand struct {
}

// Name returns the command identifier
func (e *EchoCommand) Name() string {
	return "echo"
}

// Description returns human-readable help text
func (e *EchoCommand) Description() string {
	return "Write the given words to the output"
}

// Usage returns the declarative usage line
func (e *EchoCommand) Usage() string {
	return "echo [words...]"
}

// Options returns the options of echo
func (e *EchoCommand) Options() []*command.Option {
	separator := command.MustOption("-s, --separator <sep>", "Separator placed between words")
	separator.Default = []string{" "}

	return []*command.Option{
		command.MustOption("-n", "Do not print the trailing newline"),
		separator,
	}
}

// Execute writes the words joined by the separator
func (e *EchoCommand) Execute(ctx context.Context, inv *command.Invocation, w io.Writer) (int, error) {
	var args struct {
		Words     []string `arg:"words"`
		NoNewline bool     `opt:"n"`
		Separator string   `opt:"separator"`
	}
	if err := inv.Bind(&args); err != nil {
		return 1, err
	}

	out := strings.Join(args.Words, args.Separator)
	if !args.NoNewline {
		out += "\n"
	}

	if _, err := io.WriteString(w, out); err != nil {
		return 1, fmt.Errorf("echo: %w", err)
	}
	return 0, nil
}
