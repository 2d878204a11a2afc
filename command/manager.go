package command

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/mwantia/commander/log"
	"github.com/mwantia/commander/raw"
	"github.com/tidwall/btree"
)

// Manager handles command registration, parsing, and execution
type Manager struct {
	mu     sync.RWMutex
	log    *log.Logger
	strict bool
	cmds   *btree.Map[string, *entry]
}

type entry struct {
	cmd     Command
	args    []raw.Argument
	options []*Option
	parser  *Parser
}

type ManagerOption func(*Manager)

func WithLogger(logger *log.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = logger
	}
}

// WithStrictArguments makes Execute reject invocations in which a required
// argument received no token, before the command runs.
func WithStrictArguments(strict bool) ManagerOption {
	return func(m *Manager) {
		m.strict = strict
	}
}

func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		log:  log.Discard(),
		cmds: btree.NewMap[string, *entry](0),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Register validates the usage and options of cmd and adds it
func (m *Manager) Register(cmd Command) error {
	if cmd == nil {
		return fmt.Errorf("%w: command cannot be nil", ErrInvalidCommand)
	}

	name := cmd.Name()
	if name == "" {
		return fmt.Errorf("%w: command name cannot be empty", ErrInvalidCommand)
	}

	usage := cmd.Usage()
	if usage == "" {
		usage = name
	}

	usageName, args, err := ParseUsage(usage)
	if err != nil {
		return fmt.Errorf("failed to register '%s': %w", name, err)
	}
	if usageName != name {
		return fmt.Errorf("failed to register '%s': %w: usage names '%s'", name, ErrInvalidUsage, usageName)
	}

	options := cmd.Options()
	parser, err := NewParser(options)
	if err != nil {
		return fmt.Errorf("failed to register '%s': %w", name, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.cmds.Get(name); exists {
		return fmt.Errorf("%w: %s", ErrCommandExists, name)
	}

	m.cmds.Set(name, &entry{
		cmd:     cmd,
		args:    args,
		options: options,
		parser:  parser,
	})
	m.log.Debug("Registered command '%s' with %d argument(s) and %d option(s)", name, len(args), len(options))

	return nil
}

// Unregister removes a registered command
func (m *Manager) Unregister(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, deleted := m.cmds.Delete(name); !deleted {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	m.log.Debug("Unregistered command '%s'", name)
	return nil
}

// Get returns a command by name
func (m *Manager) Get(name string) (Command, error) {
	e, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	return e.cmd, nil
}

// List returns all registered commands sorted by name
func (m *Manager) List() []Command {
	m.mu.RLock()
	defer m.mu.RUnlock()

	commands := make([]Command, 0, m.cmds.Len())
	m.cmds.Scan(func(_ string, e *entry) bool {
		commands = append(commands, e.cmd)
		return true
	})

	return commands
}

// Arguments returns the argument descriptors parsed from the usage of name
func (m *Manager) Arguments(name string) ([]raw.Argument, error) {
	e, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	return e.args, nil
}

// Execute parses and executes a command. args[0] names the command, the
// rest are its tokens.
func (m *Manager) Execute(ctx context.Context, w io.Writer, args ...string) (int, error) {
	if len(args) == 0 {
		return 1, ErrNoCommand
	}

	name := args[0]
	e, err := m.lookup(name)
	if err != nil {
		return 1, err
	}

	inst, err := e.parser.Parse(args[1:])
	if err != nil {
		return 1, fmt.Errorf("parse error: %s: %w", name, err)
	}

	inv := NewInvocation(name, e.args, e.options, inst)
	m.log.Debug("Executing '%s' [%s] with %d positional token(s) over %d argument(s)",
		name, inv.ID, len(inst.Args), len(e.args))

	if m.strict {
		if missing := inv.Missing(); len(missing) > 0 {
			return 1, fmt.Errorf("%w: %s %s", ErrMissingArgument, name, missing[0])
		}
	}

	if err := ctx.Err(); err != nil {
		return 1, err
	}

	code, err := e.cmd.Execute(ctx, inv, w)
	if err != nil {
		m.log.Error("Command '%s' [%s] failed with code %d: %v", name, inv.ID, code, err)
	}

	return code, err
}

func (m *Manager) lookup(name string) (*entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, exists := m.cmds.Get(name)
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	return e, nil
}
