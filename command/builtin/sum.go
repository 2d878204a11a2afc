package builtin

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/mwantia/commander/command"
	"github.com/mwantia/commander/raw"
)

const defaultPrecision = 2

type SumCommand struct {
}

// Name returns the command identifier
func (s *SumCommand) Name() string {
	return "sum"
}

// Description returns human-readable help text
func (s *SumCommand) Description() string {
	return "Add up numbers; tokens that are not numbers count as zero"
}

// Usage returns the declarative usage line
func (s *SumCommand) Usage() string {
	return "sum <numbers...>"
}

// Options returns the options of sum
func (s *SumCommand) Options() []*command.Option {
	return []*command.Option{
		command.MustOption("-p, --precision [digits]", "Fixed number of decimals (default 2 when given without value)"),
	}
}

// Execute prints the sum of all numbers
func (s *SumCommand) Execute(ctx context.Context, inv *command.Invocation, w io.Writer) (int, error) {
	var total float64
	for _, n := range raw.Slice(inv.Named("numbers"), raw.ParseFloat[float64]) {
		total += n
	}

	out := strconv.FormatFloat(total, 'g', -1, 64)
	if inv.Has("precision") {
		digits := raw.Optional(inv.Option("precision"), raw.ParseUint[uint8]).OrElse(defaultPrecision)
		out = strconv.FormatFloat(total, 'f', int(digits), 64)
	}

	if _, err := fmt.Fprintln(w, out); err != nil {
		return 1, fmt.Errorf("sum: %w", err)
	}
	return 0, nil
}
