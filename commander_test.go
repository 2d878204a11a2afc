package commander_test

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/mwantia/commander"
	"github.com/mwantia/commander/command"
	"github.com/mwantia/commander/command/builtin"
	"github.com/mwantia/commander/log"
	"github.com/mwantia/commander/raw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestCommanderFactory func(tst *testing.T) (*commander.Commander, error)

func GetTestCommanderFactories() map[string]TestCommanderFactory {
	return map[string]TestCommanderFactory{
		"builtins": func(tst *testing.T) (*commander.Commander, error) {
			return commander.New(commander.WithLogLevel(log.Debug), commander.WithoutTerminalLog(),
				commander.WithLogFile(filepath.Join(tst.TempDir(), "commander.log")))
		},
		"strict": func(tst *testing.T) (*commander.Commander, error) {
			return commander.New(commander.WithStrictArguments(), commander.WithLogger(log.Discard()))
		},
		"manual": func(tst *testing.T) (*commander.Commander, error) {
			c, err := commander.New(commander.WithoutBuiltins(), commander.WithLogger(log.Discard()))
			if err != nil {
				return nil, err
			}
			for _, cmd := range builtin.Commands() {
				if err := c.RegisterCommand(cmd); err != nil {
					return nil, err
				}
			}
			return c, nil
		},
	}
}

// TestAllCommanders_Builtins verifies builtin dispatch across all setups.
func TestAllCommanders_Builtins(t *testing.T) {
	for name, factory := range GetTestCommanderFactories() {
		t.Run(name, func(tst *testing.T) {
			c, err := factory(tst)
			require.NoError(tst, err)
			require.Len(tst, c.Commands(), 3)

			var out bytes.Buffer
			code, err := c.Execute(tst.Context(), &out, "echo", "-s", "+", "1", "2")
			require.NoError(tst, err)
			assert.Equal(tst, 0, code)
			assert.Equal(tst, "1+2\n", out.String())

			out.Reset()
			_, err = c.Execute(tst.Context(), &out, "sum", "4", "-0.5")
			require.NoError(tst, err)
			assert.Equal(tst, "3.5\n", out.String())
		})
	}
}

// TestAllCommanders_CustomCommand verifies registering a command that binds
// its arguments by type.
func TestAllCommanders_CustomCommand(t *testing.T) {
	for name, factory := range GetTestCommanderFactories() {
		t.Run(name, func(tst *testing.T) {
			c, err := factory(tst)
			require.NoError(tst, err)

			var got struct {
				Dir  string   `arg:"dir"`
				Dirs []string `arg:"dirs"`
				Out  *string  `opt:"output"`
			}
			parse := command.Define("parse <dir> [dirs...]", "Parse directories",
				func(ctx context.Context, inv *command.Invocation, w io.Writer) (int, error) {
					return 0, inv.Bind(&got)
				},
				command.MustOption("-o, --output <output_dir>", "Output directory"),
			)
			require.NoError(tst, c.RegisterCommand(parse))
			assert.ErrorIs(tst, c.RegisterCommand(parse), command.ErrCommandExists)

			_, err = c.Execute(tst.Context(), io.Discard, "parse", "a", "b", "-o", "out", "c")
			require.NoError(tst, err)
			assert.Equal(tst, "a", got.Dir)
			assert.Equal(tst, []string{"b", "c"}, got.Dirs)
			require.NotNil(tst, got.Out)
			assert.Equal(tst, "out", *got.Out)

			args, err := c.Manager().Arguments("parse")
			require.NoError(tst, err)
			assert.Equal(tst, raw.OptionalMultiple, args[1].Type)

			require.NoError(tst, c.UnregisterCommand("parse"))
		})
	}
}

func TestNew_Options(t *testing.T) {
	_, err := commander.New(commander.WithLogLevelName("nope"))
	assert.Error(t, err)

	c, err := commander.New(commander.WithLogLevelName("error"), commander.WithJSONLog(),
		commander.WithoutColor(), commander.WithoutTerminalLog(),
		commander.WithLogFile(filepath.Join(t.TempDir(), "json.log")))
	require.NoError(t, err)

	_, err = c.Execute(t.Context(), io.Discard)
	assert.ErrorIs(t, err, command.ErrNoCommand)
}

func TestStrict_MissingArgument(t *testing.T) {
	c, err := commander.New(commander.WithStrictArguments(), commander.WithLogger(log.Discard()))
	require.NoError(t, err)

	code, err := c.Execute(t.Context(), io.Discard, "repeat")
	assert.Equal(t, 1, code)
	assert.ErrorIs(t, err, command.ErrMissingArgument)
}
