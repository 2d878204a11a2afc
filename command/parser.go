package command

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/mwantia/commander/raw"
)

// Instance is a tokenized invocation with options separated from
// positional tokens.
type Instance struct {
	// Positional tokens in order, ready for raw.Distribute
	Args []string

	// Option groups keyed by Option.Name, including defaults of absent options
	Options map[string]raw.Raw

	// Names of options that were actually given
	Present map[string]bool

	// Raw unparsed tokens
	Tokens []string
}

// Parser separates option tokens from positional tokens
type Parser struct {
	options []*Option
	long    map[string]*Option
	short   map[string]*Option
}

func NewParser(options []*Option) (*Parser, error) {
	p := &Parser{
		options: options,
		long:    make(map[string]*Option),
		short:   make(map[string]*Option),
	}

	for _, opt := range options {
		if opt == nil || opt.Name == "" {
			return nil, fmt.Errorf("%w: option without name", ErrInvalidOption)
		}

		if opt.Name != opt.Short {
			if _, exists := p.long[opt.Name]; exists {
				return nil, fmt.Errorf("%w: duplicate option --%s", ErrInvalidOption, opt.Name)
			}
			p.long[opt.Name] = opt
		}

		if opt.Short != "" {
			if _, exists := p.short[opt.Short]; exists {
				return nil, fmt.Errorf("%w: duplicate option -%s", ErrInvalidOption, opt.Short)
			}
			p.short[opt.Short] = opt
		}
	}

	return p, nil
}

// Parse walks tokens once. Every option looks at the non-option tokens
// following it as its own view; raw.DistributeOption decides how many of
// them the option keeps and the remainder stays positional.
func (p *Parser) Parse(tokens []string) (*Instance, error) {
	inst := &Instance{
		Options: make(map[string]raw.Raw),
		Present: make(map[string]bool),
		Tokens:  slices.Clone(tokens),
	}

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		if token == "--" {
			inst.Args = append(inst.Args, tokens[i+1:]...)
			break
		}

		if !isOption(token) {
			inst.Args = append(inst.Args, token)
			continue
		}

		if strings.HasPrefix(token, "--") {
			key, value, hasValue := strings.Cut(token[2:], "=")
			opt, exists := p.long[key]
			if !exists {
				return nil, fmt.Errorf("%w: --%s", ErrUnknownOption, key)
			}

			if hasValue {
				if opt.Argument == nil {
					return nil, fmt.Errorf("%w: --%s", ErrOptionValue, key)
				}
				p.record(inst, opt, raw.DistributeOption([]string{value}, opt.Argument))
				continue
			}

			i = p.isolate(inst, opt, tokens, i+1)
			continue
		}

		cluster := token[1:]
		for j, char := range cluster {
			opt, exists := p.short[string(char)]
			if !exists {
				return nil, fmt.Errorf("%w: -%c", ErrUnknownOption, char)
			}

			rest := cluster[j+utf8.RuneLen(char):]
			if rest == "" {
				i = p.isolate(inst, opt, tokens, i+1)
				break
			}

			if opt.Argument != nil {
				// "-ofile": the remainder of the cluster is the value
				p.record(inst, opt, raw.DistributeOption([]string{rest}, opt.Argument))
				break
			}

			p.record(inst, opt, raw.Raw{})
		}
	}

	for _, opt := range p.options {
		if inst.Present[opt.Name] {
			continue
		}

		if opt.Required {
			return nil, fmt.Errorf("%w: %s", ErrRequiredOption, opt.Usage())
		}

		if len(opt.Default) > 0 {
			inst.Options[opt.Name] = raw.DistributeOption(opt.Default, opt.Argument)
		}
	}

	return inst, nil
}

// isolate hands the tokens between start and the next option to opt and
// returns the index of the last token it looked at.
func (p *Parser) isolate(inst *Instance, opt *Option, tokens []string, start int) int {
	end := start
	for end < len(tokens) && tokens[end] != "--" && !isOption(tokens[end]) {
		end++
	}

	view := tokens[start:end]
	group := raw.DistributeOption(view, opt.Argument)
	p.record(inst, opt, group)
	inst.Args = append(inst.Args, view[group.Len():]...)

	return end - 1
}

// record stores group for opt; repeated options append their tokens.
func (p *Parser) record(inst *Instance, opt *Option, group raw.Raw) {
	inst.Present[opt.Name] = true

	existing, exists := inst.Options[opt.Name]
	if !exists {
		inst.Options[opt.Name] = group
		return
	}

	for _, token := range group.All() {
		existing.Push(token)
	}
	inst.Options[opt.Name] = existing
}

// negativeNumber matches decimal negatives such as -1, -2.5, -.5 or -1e3.
var negativeNumber = regexp.MustCompile(`^-(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// isOption reports whether token looks like a flag. A lone "-" and
// negative decimal numbers are positional.
func isOption(token string) bool {
	if len(token) < 2 || token[0] != '-' {
		return false
	}
	return !negativeNumber.MatchString(token)
}
