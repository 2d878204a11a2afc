package command

import "errors"

var (
	// Registration errors
	ErrInvalidCommand  = errors.New("command: invalid command")
	ErrInvalidUsage    = errors.New("command: invalid usage")
	ErrVariadicNotLast = errors.New("command: variadic argument must be last")
	ErrInvalidOption   = errors.New("command: invalid option")
	ErrCommandExists   = errors.New("command: already registered")
	ErrUnknownCommand  = errors.New("command: not found")

	// Invocation errors
	ErrNoCommand       = errors.New("command: no command specified")
	ErrUnknownOption   = errors.New("command: unknown option")
	ErrOptionValue     = errors.New("command: option does not take a value")
	ErrRequiredOption  = errors.New("command: required option")
	ErrMissingArgument = errors.New("command: missing required argument")
	ErrInvalidBinding  = errors.New("command: invalid binding")
)
