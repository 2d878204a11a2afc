// Package commander ties the command registry, its builtin commands and
// logging together.
package commander

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/commander/command"
	"github.com/mwantia/commander/command/builtin"
	"github.com/mwantia/commander/log"
)

type Commander struct {
	log      *log.Logger
	commands *command.Manager
}

func New(opts ...CommanderOption) (*Commander, error) {
	options := newDefaultCommanderOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	logger := options.Logger
	if logger == nil {
		var logOpts []log.LoggerOption
		if options.JSONLog {
			logOpts = append(logOpts, log.WithJSON())
		}
		if options.NoColor {
			logOpts = append(logOpts, log.WithoutColor())
		}
		logger = log.NewLogger("commander", options.LogLevel, options.LogFile, options.NoTerminalLog, logOpts...)
	}

	c := &Commander{
		log: logger,
		commands: command.NewManager(
			command.WithLogger(logger.Named("commands")),
			command.WithStrictArguments(options.StrictArguments),
		),
	}

	if !options.NoBuiltins {
		if err := c.initBuiltinCommands(); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RegisterCommand adds cmd to the registry
func (c *Commander) RegisterCommand(cmd command.Command) error {
	return c.commands.Register(cmd)
}

// UnregisterCommand removes the command called name
func (c *Commander) UnregisterCommand(name string) error {
	return c.commands.Unregister(name)
}

// Commands returns all registered commands sorted by name
func (c *Commander) Commands() []command.Command {
	return c.commands.List()
}

// Manager exposes the underlying registry
func (c *Commander) Manager() *command.Manager {
	return c.commands
}

// Execute runs a command with the given arguments, writing output to the provided writer
func (c *Commander) Execute(ctx context.Context, writer io.Writer, args ...string) (int, error) {
	return c.commands.Execute(ctx, writer, args...)
}

func (c *Commander) initBuiltinCommands() error {
	for _, cmd := range builtin.Commands() {
		if err := c.commands.Register(cmd); err != nil {
			return fmt.Errorf("failed to register builtin command: %w", err)
		}
	}

	c.log.Debug("Registered %d builtin command(s)", len(c.commands.List()))
	return nil
}
