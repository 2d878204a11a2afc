package command

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/mwantia/commander/log"
	"github.com/mwantia/commander/raw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// copyCommand echoes how its tokens were distributed.
func copyCommand() Command {
	return Define("cp <src> [dsts...]", "Copy files", func(ctx context.Context, inv *Invocation, w io.Writer) (int, error) {
		fmt.Fprintf(w, "src=%s dsts=%v mode=%s force=%t\n",
			raw.String(inv.Named("src")),
			raw.Strings(inv.Named("dsts")),
			raw.Optional(inv.Option("mode"), raw.ParseString).OrElse("none"),
			inv.Has("force"),
		)
		return 0, nil
	},
		MustOption("-f, --force", "Overwrite"),
		MustOption("-m, --mode <mode>", "File mode"),
	)
}

func TestManager_RegisterAndList(t *testing.T) {
	m := NewManager()

	require.NoError(t, m.Register(Define("zeta", "", nil)))
	require.NoError(t, m.Register(copyCommand()))
	require.NoError(t, m.Register(Define("alpha [x]", "", nil)))

	var names []string
	for _, cmd := range m.List() {
		names = append(names, cmd.Name())
	}
	assert.Equal(t, []string{"alpha", "cp", "zeta"}, names)

	args, err := m.Arguments("cp")
	require.NoError(t, err)
	assert.Equal(t, []raw.Argument{
		{Name: "src", Type: raw.RequiredSingle},
		{Name: "dsts", Type: raw.OptionalMultiple},
	}, args)

	cmd, err := m.Get("cp")
	require.NoError(t, err)
	assert.Equal(t, "Copy files", cmd.Description())

	require.NoError(t, m.Unregister("zeta"))
	_, err = m.Get("zeta")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.ErrorIs(t, m.Unregister("zeta"), ErrUnknownCommand)
}

// TestManager_RegisterErrors verifies that registration rejects broken
// declarations, including descriptor lists that break the ordering contract.
func TestManager_RegisterErrors(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Register(copyCommand()))

	tests := map[string]struct {
		cmd  Command
		want error
	}{
		"nil":               {nil, ErrInvalidCommand},
		"empty-name":        {Define("", "", nil), ErrInvalidCommand},
		"duplicate":         {copyCommand(), ErrCommandExists},
		"variadic-not-last": {Define("mv <srcs...> <dst>", "", nil), ErrVariadicNotLast},
		"bad-argument":      {Define("mv src", "", nil), ErrInvalidUsage},
		"duplicate-option":  {Define("mv", "", nil, MustOption("-f", ""), MustOption("-f, --force", "")), ErrInvalidOption},
	}

	for name, test := range tests {
		t.Run(name, func(tst *testing.T) {
			assert.ErrorIs(tst, m.Register(test.cmd), test.want)
		})
	}
}

// TestManager_Execute verifies parsing, distribution and dispatch end to end.
func TestManager_Execute(t *testing.T) {
	var logs bytes.Buffer
	m := NewManager(WithLogger(log.NewLogger("test", log.Debug, "", false, log.WithWriter(&logs))))
	require.NoError(t, m.Register(copyCommand()))

	tests := map[string]struct {
		args []string
		want string
	}{
		"all-positionals": {[]string{"cp", "a", "b", "c"}, "src=a dsts=[b c] mode=none force=false"},
		"options-mixed":   {[]string{"cp", "-f", "a", "--mode", "644", "b"}, "src=a dsts=[b] mode=644 force=true"},
		"under-supplied":  {[]string{"cp"}, "src= dsts=[] mode=none force=false"},
		"after-dashes":    {[]string{"cp", "--", "-f", "-m"}, "src=-f dsts=[-m] mode=none force=false"},
	}

	for name, test := range tests {
		t.Run(name, func(tst *testing.T) {
			var out bytes.Buffer
			code, err := m.Execute(tst.Context(), &out, test.args...)
			require.NoError(tst, err)
			assert.Equal(tst, 0, code)
			assert.Equal(tst, test.want, strings.TrimSpace(out.String()))
		})
	}

	assert.Contains(t, logs.String(), "Executing 'cp'")
}

func TestManager_ExecuteErrors(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Register(copyCommand()))
	require.NoError(t, m.Register(Define("fail", "", func(context.Context, *Invocation, io.Writer) (int, error) {
		return 3, fmt.Errorf("broken")
	})))

	code, err := m.Execute(t.Context(), io.Discard)
	assert.Equal(t, 1, code)
	assert.ErrorIs(t, err, ErrNoCommand)

	_, err = m.Execute(t.Context(), io.Discard, "rm")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = m.Execute(t.Context(), io.Discard, "cp", "--bogus")
	assert.ErrorIs(t, err, ErrUnknownOption)

	code, err = m.Execute(t.Context(), io.Discard, "fail")
	assert.Equal(t, 3, code)
	assert.EqualError(t, err, "broken")

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err = m.Execute(ctx, io.Discard, "cp", "a")
	assert.ErrorIs(t, err, context.Canceled)
}

// TestManager_StrictArguments verifies the optional post-distribution check.
func TestManager_StrictArguments(t *testing.T) {
	lenient := NewManager()
	strict := NewManager(WithStrictArguments(true))
	for _, m := range []*Manager{lenient, strict} {
		require.NoError(t, m.Register(copyCommand()))
	}

	code, err := lenient.Execute(t.Context(), io.Discard, "cp")
	assert.NoError(t, err)
	assert.Equal(t, 0, code)

	code, err = strict.Execute(t.Context(), io.Discard, "cp")
	assert.ErrorIs(t, err, ErrMissingArgument)
	assert.ErrorContains(t, err, "<src>")
	assert.Equal(t, 1, code)

	_, err = strict.Execute(t.Context(), io.Discard, "cp", "a")
	assert.NoError(t, err)
}
