// Package config loads the settings of the commander binary.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/mwantia/commander"
	"github.com/mwantia/commander/log"
	"github.com/spf13/pflag"
)

const EnvPrefix = "COMMANDER_"

var ErrUnsupportedFormat = errors.New("config: unsupported config file format")

// DefaultFiles are looked up in the working directory, in order, when no
// config file is given explicitly.
var DefaultFiles = []string{"commander.yaml", "commander.yml", "commander.toml"}

type Config struct {
	LogLevel        string `koanf:"log_level"`
	LogFile         string `koanf:"log_file"`
	LogJSON         bool   `koanf:"log_json"`
	NoColor         bool   `koanf:"no_color"`
	NoTerminalLog   bool   `koanf:"no_terminal_log"`
	StrictArguments bool   `koanf:"strict"`

	// Path of the config file that was loaded, empty if none
	File string `koanf:"-"`
}

// Load reads the configuration. Precedence (highest to lowest):
// changed flags > COMMANDER_* env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"log_level":       "info",
		"log_file":        "",
		"log_json":        false,
		"no_color":        false,
		"no_terminal_log": false,
		"strict":          false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	cfgFile = findConfigFile(cfgFile)
	if cfgFile != "" {
		parser, err := parserFor(cfgFile)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(cfgFile), parser); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// COMMANDER_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = cfgFile

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Options converts the configuration into commander options.
func (c *Config) Options() []commander.CommanderOption {
	opts := []commander.CommanderOption{
		commander.WithLogLevelName(c.LogLevel),
	}
	if c.LogFile != "" {
		opts = append(opts, commander.WithLogFile(c.LogFile))
	}
	if c.LogJSON {
		opts = append(opts, commander.WithJSONLog())
	}
	if c.NoColor {
		opts = append(opts, commander.WithoutColor())
	}
	if c.NoTerminalLog {
		opts = append(opts, commander.WithoutTerminalLog())
	}
	if c.StrictArguments {
		opts = append(opts, commander.WithStrictArguments())
	}
	return opts
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range DefaultFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return TOML(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
