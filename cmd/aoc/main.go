package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"aoc2023/internal/config"
	"aoc2023/internal/logging"
	"aoc2023/internal/render"
)

// app carries global flags and the loaded config into every subcommand.
type app struct {
	cfgPath string
	verbose bool
	format  string
	timeout time.Duration

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2023 puzzle solvers",
		Long: `aoc parses puzzle inputs and computes answers for the registered days.

Inputs are read from <inputs.dir>/<day>.input unless --input is given.
Every solve first checks the worked examples from the puzzle text, and
answers are journaled to SQLite so a changed answer for the same input
is flagged.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "aoc.yaml", "Config file (YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", render.FormatText, "Output format: text, json, pretty")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 10*time.Minute, "Abort solving after this long (0 disables)")

	root.AddCommand(
		a.solveCmd(),
		a.daysCmd(),
		a.checkCmd(),
		a.historyCmd(),
		a.watchCmd(),
		a.configCmd(),
	)
	return root
}

// setup loads config and initializes logging before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if err := a.apply(cfg); err != nil {
		return err
	}
	logging.BootDebug("config loaded from %s", a.cfgPath)
	return nil
}

// setupDefaults initializes logging from the built-in defaults without
// reading the config file, for commands that replace that file.
func (a *app) setupDefaults(cmd *cobra.Command, args []string) error {
	return a.apply(config.DefaultConfig())
}

func (a *app) apply(cfg *config.Config) error {
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging.Options()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if !slices.Contains(render.Formats, a.format) {
		return fmt.Errorf("unknown output format %q (want one of %v)", a.format, render.Formats)
	}
	a.cfg = cfg
	return nil
}

// context returns a context cancelled by SIGINT/SIGTERM or the --timeout flag.
func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	if a.timeout <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
