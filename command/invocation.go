package command

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/google/uuid"
	"github.com/mwantia/commander/raw"
)

// Invocation is what a command receives: one token group per declared
// argument and one per option.
type Invocation struct {
	ID        uuid.UUID
	Command   string
	Tokens    []string
	Arguments []raw.Argument
	Args      []raw.Raw

	options  map[string]raw.Raw
	present  map[string]bool
	declared map[string]*Option
}

// NewInvocation distributes the positional tokens of inst over args.
func NewInvocation(name string, args []raw.Argument, options []*Option, inst *Instance) *Invocation {
	declared := make(map[string]*Option, len(options))
	for _, opt := range options {
		declared[opt.Name] = opt
	}

	return &Invocation{
		ID:        uuid.New(),
		Command:   name,
		Tokens:    slices.Clone(inst.Tokens),
		Arguments: args,
		Args:      raw.Distribute(inst.Args, args),

		options:  inst.Options,
		present:  inst.Present,
		declared: declared,
	}
}

// Arg returns the group of the i-th declared argument, or an empty group.
func (inv *Invocation) Arg(i int) raw.Raw {
	if i < 0 || i >= len(inv.Args) {
		return raw.Raw{}
	}
	return inv.Args[i]
}

// Named returns the group of the argument called name, or an empty group.
func (inv *Invocation) Named(name string) raw.Raw {
	for i, arg := range inv.Arguments {
		if arg.Name == name {
			return inv.Arg(i)
		}
	}
	return raw.Raw{}
}

// Option returns the group of an option, which is empty for switches and
// for options that were neither given nor defaulted.
func (inv *Invocation) Option(name string) raw.Raw {
	return inv.options[name]
}

// Has reports whether the option was given on the command line.
func (inv *Invocation) Has(name string) bool {
	return inv.present[name]
}

// Missing returns the required arguments that received no token.
func (inv *Invocation) Missing() []raw.Argument {
	var missing []raw.Argument
	for i, arg := range inv.Arguments {
		if arg.Type.Required() && inv.Arg(i).IsEmpty() {
			missing = append(missing, arg)
		}
	}
	return missing
}

// Bind fills the tagged fields of the struct dst points to:
//
//	Dir     string   `arg:"dir"`
//	Dirs    []string `arg:"dirs"`
//	Output  *string  `opt:"output"`
//	Verbose bool     `opt:"verbose"`
//
// Fields take their shape from their type, see raw.Decode. A bool field
// bound to a switch is set when the switch was given.
func (inv *Invocation) Bind(dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T is not a pointer to a struct", ErrInvalidBinding, dst)
	}

	rv = rv.Elem()
	rt := rv.Type()
	for i := range rt.NumField() {
		field := rt.Field(i)
		value := rv.Field(i)

		if name, ok := field.Tag.Lookup("arg"); ok {
			if !slices.ContainsFunc(inv.Arguments, func(a raw.Argument) bool { return a.Name == name }) {
				return fmt.Errorf("%w: field %s refers to unknown argument %q", ErrInvalidBinding, field.Name, name)
			}
			if err := raw.DecodeValue(inv.Named(name), value); err != nil {
				return fmt.Errorf("%w: field %s: %w", ErrInvalidBinding, field.Name, err)
			}
			continue
		}

		if name, ok := field.Tag.Lookup("opt"); ok {
			opt, exists := inv.declared[name]
			if !exists {
				return fmt.Errorf("%w: field %s refers to unknown option %q", ErrInvalidBinding, field.Name, name)
			}
			if opt.Argument == nil && value.Kind() == reflect.Bool {
				if !value.CanSet() {
					return fmt.Errorf("%w: field %s is not settable", ErrInvalidBinding, field.Name)
				}
				value.SetBool(inv.Has(name))
				continue
			}
			if err := raw.DecodeValue(inv.Option(name), value); err != nil {
				return fmt.Errorf("%w: field %s: %w", ErrInvalidBinding, field.Name, err)
			}
		}
	}

	return nil
}
