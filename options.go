package commander

import "github.com/mwantia/commander/log"

type CommanderOptions struct {
	LogLevel        log.LogLevel
	LogFile         string
	NoTerminalLog   bool
	JSONLog         bool
	NoColor         bool
	StrictArguments bool
	NoBuiltins      bool
	Logger          *log.Logger
}

type CommanderOption func(*CommanderOptions) error

func newDefaultCommanderOptions() *CommanderOptions {
	return &CommanderOptions{
		LogLevel: log.Info,
	}
}

func WithLogLevel(logLevel log.LogLevel) CommanderOption {
	return func(opts *CommanderOptions) error {
		opts.LogLevel = logLevel
		return nil
	}
}

// WithLogLevelName is WithLogLevel for level names such as "debug".
func WithLogLevelName(name string) CommanderOption {
	return func(opts *CommanderOptions) error {
		level, err := log.ParseLevel(name)
		if err != nil {
			return err
		}
		opts.LogLevel = level
		return nil
	}
}

func WithoutTerminalLog() CommanderOption {
	return func(opts *CommanderOptions) error {
		opts.NoTerminalLog = true
		return nil
	}
}

func WithLogFile(logFile string) CommanderOption {
	return func(opts *CommanderOptions) error {
		opts.LogFile = logFile
		return nil
	}
}

func WithJSONLog() CommanderOption {
	return func(opts *CommanderOptions) error {
		opts.JSONLog = true
		return nil
	}
}

func WithoutColor() CommanderOption {
	return func(opts *CommanderOptions) error {
		opts.NoColor = true
		return nil
	}
}

// WithLogger uses logger as is and ignores every other log option.
func WithLogger(logger *log.Logger) CommanderOption {
	return func(opts *CommanderOptions) error {
		opts.Logger = logger
		return nil
	}
}

// WithStrictArguments rejects invocations that leave a required argument
// without a token.
func WithStrictArguments() CommanderOption {
	return func(opts *CommanderOptions) error {
		opts.StrictArguments = true
		return nil
	}
}

func WithoutBuiltins() CommanderOption {
	return func(opts *CommanderOptions) error {
		opts.NoBuiltins = true
		return nil
	}
}
