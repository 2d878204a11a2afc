package builtin

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mwantia/commander/command"
	"github.com/mwantia/commander/raw"
)

const maxRepeat = 1024

type RepeatCommand struct {
}

// Name returns the command identifier
func (r *RepeatCommand) Name() string {
	return "repeat"
}

// Description returns human-readable help text
func (r *RepeatCommand) Description() string {
	return "Print a text count times (default once)"
}

// Usage returns the declarative usage line
func (r *RepeatCommand) Usage() string {
	return "repeat <text> [count]"
}

// Options returns the options of repeat
func (r *RepeatCommand) Options() []*command.Option {
	return []*command.Option{
		command.MustOption("-u, --upper", "Print the text in upper case"),
	}
}

// Execute prints the text count times
func (r *RepeatCommand) Execute(ctx context.Context, inv *command.Invocation, w io.Writer) (int, error) {
	text := raw.String(inv.Named("text"))
	if inv.Has("upper") {
		text = strings.ToUpper(text)
	}

	count := min(raw.Optional(inv.Named("count"), raw.ParseUint[uint]).OrElse(1), maxRepeat)
	for range count {
		if err := ctx.Err(); err != nil {
			return 1, err
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return 1, fmt.Errorf("repeat: %w", err)
		}
	}

	return 0, nil
}
