package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mwantia/commander"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(tst *testing.T, name, content string) string {
	tst.Helper()

	path := filepath.Join(tst.TempDir(), name)
	require.NoError(tst, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	flags.Bool("strict", false, "")
	flags.Bool("no-color", false, "")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.StrictArguments)
	assert.Empty(t, cfg.File)
}

// TestLoad_Files verifies YAML and TOML config files.
func TestLoad_Files(t *testing.T) {
	tests := map[string]struct {
		name    string
		content string
	}{
		"yaml": {"commander.yaml", "log_level: debug\nstrict: true\nlog_json: true\n"},
		"toml": {"commander.toml", "log_level = \"debug\"\nstrict = true\nlog_json = true\n"},
	}

	for name, test := range tests {
		t.Run(name, func(tst *testing.T) {
			path := writeFile(tst, test.name, test.content)

			cfg, err := Load(path, nil)
			require.NoError(tst, err)

			assert.Equal(tst, "debug", cfg.LogLevel)
			assert.True(tst, cfg.StrictArguments)
			assert.True(tst, cfg.LogJSON)
			assert.Equal(tst, path, cfg.File)
		})
	}
}

func TestLoad_DefaultFileLookup(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "commander.yml"), []byte("no_color: true\n"), 0o644))
	t.Chdir(dir)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "commander.yml", cfg.File)
}

// TestLoad_Precedence verifies flags > env > file > defaults.
func TestLoad_Precedence(t *testing.T) {
	path := writeFile(t, "commander.yaml", "log_level: error\nstrict: true\nno_color: true\n")
	t.Setenv("COMMANDER_LOG_LEVEL", "warn")
	t.Setenv("COMMANDER_NO_COLOR", "false")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--log-level", "debug"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.NoColor)
	assert.True(t, cfg.StrictArguments)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeFile(t, "commander.json", "{}"), nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)

	_, err = Load(writeFile(t, "commander.yaml", "log_level: loud\n"), nil)
	assert.Error(t, err)
}

func TestConfig_Options(t *testing.T) {
	cfg := &Config{
		LogLevel:        "error",
		LogFile:         filepath.Join(t.TempDir(), "commander.log"),
		LogJSON:         true,
		NoColor:         true,
		NoTerminalLog:   true,
		StrictArguments: true,
	}
	assert.Len(t, cfg.Options(), 6)

	c, err := commander.New(cfg.Options()...)
	require.NoError(t, err)
	assert.NotEmpty(t, c.Commands())
}

func TestTOMLParser_RoundTrip(t *testing.T) {
	parser := TOML()

	data, err := parser.Marshal(map[string]any{"log_level": "warn"})
	require.NoError(t, err)

	out, err := parser.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, "warn", out["log_level"])
}
