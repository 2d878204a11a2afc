package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mwantia/commander"
	"github.com/mwantia/commander/command"
	"github.com/mwantia/commander/config"
	"github.com/mwantia/commander/raw"
	"github.com/spf13/cobra"
)

// ExitError carries the exit code of a command that ran but did not succeed.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

type app struct {
	cfgFile string
	cfg     *config.Config
	cmdr    *commander.Commander
}

// NewRootCmd creates the commander command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "commander",
		Short:         "Distribute command line tokens over declared arguments",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(a.cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			a.cfg = cfg

			a.cmdr, err = commander.New(cfg.Options()...)
			return err
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default commander.yaml, commander.yml or commander.toml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "write logs to this file with rotation")
	flags.Bool("log-json", false, "write logs as JSON lines")
	flags.Bool("no-color", false, "disable colored log output")
	flags.Bool("no-terminal-log", false, "do not write logs to stdout")
	flags.Bool("strict", false, "reject invocations with missing required arguments")

	root.AddCommand(a.newRunCmd(), a.newListCmd(), newSplitCmd())
	return root
}

func (a *app) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <command> [tokens...]",
		Short: "Execute a registered command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := a.cmdr.Execute(cmd.Context(), cmd.OutOrStdout(), args...)
			if err != nil || code != 0 {
				return &ExitError{Code: max(code, 1), Err: err}
			}
			return nil
		},
	}
	// Everything after the command name belongs to that command.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Command", "Usage", "Options", "Description"})

			for _, c := range a.cmdr.Commands() {
				options := make([]string, 0, len(c.Options()))
				for _, opt := range c.Options() {
					options = append(options, opt.Usage())
				}
				t.AppendRow(table.Row{c.Name(), c.Usage(), strings.Join(options, "\n"), c.Description()})
			}

			t.Render()
			return nil
		},
	}
}

func newSplitCmd() *cobra.Command {
	var usage string

	cmd := &cobra.Command{
		Use:   "split --usage \"<name> <a> [b...]\" [tokens...]",
		Short: "Show how tokens are distributed over a usage line",
		RunE: func(cmd *cobra.Command, tokens []string) error {
			_, args, err := command.ParseUsage(usage)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Argument", "Arity", "Tokens"})

			for i, group := range raw.Distribute(tokens, args) {
				t.AppendRow(table.Row{args[i].String(), args[i].Type.String(), group.String()})
			}

			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&usage, "usage", "u", "", "usage line, e.g. \"parse <dir> [dirs...]\"")
	_ = cmd.MarkFlagRequired("usage")
	cmd.Flags().SetInterspersed(false)
	return cmd
}
