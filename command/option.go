package command

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mwantia/commander/raw"
)

// Option is a flag a command accepts, e.g. "-o, --output <dir>".
type Option struct {
	Name        string        // Long name without dashes, or the short name if there is none
	Short       string        // Single-char shorthand (e.g., "o")
	Argument    *raw.Argument // Value the option takes, nil for a plain switch
	Description string        // Help text
	Required    bool          // Must be provided
	Default     []string      // Tokens used when the option is absent
}

// ParseOption builds an Option from its declarative form. Accepted forms
// are "-v", "--verbose", "-o, --output <dir>" and "--include [paths...]".
func ParseOption(decl, description string) (*Option, error) {
	opt := &Option{Description: description}

	var long string
	for _, field := range strings.Fields(strings.ReplaceAll(decl, ",", " ")) {
		switch {
		case strings.HasPrefix(field, "--"):
			if long != "" || len(field) < 3 {
				return nil, fmt.Errorf("%w: %q", ErrInvalidOption, decl)
			}
			long = field[2:]

		case strings.HasPrefix(field, "-"):
			short := field[1:]
			if opt.Short != "" || utf8.RuneCountInString(short) != 1 {
				return nil, fmt.Errorf("%w: %q", ErrInvalidOption, decl)
			}
			opt.Short = short

		default:
			if opt.Argument != nil {
				return nil, fmt.Errorf("%w: %q declares more than one argument", ErrInvalidOption, decl)
			}
			arg, err := ParseArgument(field)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
			}
			opt.Argument = &arg
		}
	}

	switch {
	case long != "":
		opt.Name = long
	case opt.Short != "":
		opt.Name = opt.Short
	default:
		return nil, fmt.Errorf("%w: %q has no flag name", ErrInvalidOption, decl)
	}

	return opt, nil
}

// MustOption is ParseOption for static declarations; it panics on error.
func MustOption(decl, description string) *Option {
	opt, err := ParseOption(decl, description)
	if err != nil {
		panic(err)
	}
	return opt
}

// Usage renders the option in declarative form.
func (o *Option) Usage() string {
	var parts []string
	if o.Short != "" {
		parts = append(parts, "-"+o.Short)
	}
	if o.Name != o.Short {
		parts = append(parts, "--"+o.Name)
	}

	usage := strings.Join(parts, ", ")
	if o.Argument != nil {
		usage += " " + o.Argument.String()
	}
	return usage
}
