package command

import (
	"fmt"
	"strings"

	"github.com/mwantia/commander/raw"
)

// ParseUsage reads a declarative usage line such as
//
//	parse <dir> [dirs...]
//
// and returns the command name and its argument descriptors.
// "<x>" is required, "[x]" optional and a trailing "..." makes the
// argument take every remaining token, which is only allowed on the last one.
func ParseUsage(usage string) (string, []raw.Argument, error) {
	fields := strings.Fields(usage)
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("%w: empty usage", ErrInvalidUsage)
	}

	name := fields[0]
	if strings.ContainsAny(name, "<>[]") || strings.HasPrefix(name, "-") {
		return "", nil, fmt.Errorf("%w: %q does not start with a command name", ErrInvalidUsage, usage)
	}

	args := make([]raw.Argument, 0, len(fields)-1)
	for _, field := range fields[1:] {
		arg, err := ParseArgument(field)
		if err != nil {
			return "", nil, err
		}
		args = append(args, arg)
	}

	for i, arg := range args {
		if arg.Type.Multiple() && i != len(args)-1 {
			return "", nil, fmt.Errorf("%w: %s in %q", ErrVariadicNotLast, arg, usage)
		}
	}

	return name, args, nil
}

// ParseArgument reads a single "<name>", "[name]", "<name...>" or
// "[name...]" token.
func ParseArgument(field string) (raw.Argument, error) {
	if len(field) < 3 {
		return raw.Argument{}, fmt.Errorf("%w: argument %q", ErrInvalidUsage, field)
	}

	var required bool
	switch {
	case strings.HasPrefix(field, "<") && strings.HasSuffix(field, ">"):
		required = true
	case strings.HasPrefix(field, "[") && strings.HasSuffix(field, "]"):
		required = false
	default:
		return raw.Argument{}, fmt.Errorf("%w: argument %q is not enclosed in <> or []", ErrInvalidUsage, field)
	}

	name := field[1 : len(field)-1]
	name, multiple := strings.CutSuffix(name, "...")
	if name == "" || strings.ContainsAny(name, "<>[]") {
		return raw.Argument{}, fmt.Errorf("%w: argument %q has no valid name", ErrInvalidUsage, field)
	}

	arg := raw.Argument{Name: name}
	switch {
	case required && multiple:
		arg.Type = raw.RequiredMultiple
	case required:
		arg.Type = raw.RequiredSingle
	case multiple:
		arg.Type = raw.OptionalMultiple
	default:
		arg.Type = raw.OptionalSingle
	}

	return arg, nil
}
