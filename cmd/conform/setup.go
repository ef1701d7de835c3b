package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"conform/internal/config"
	"conform/internal/engine"
	"conform/internal/report"
	"conform/internal/rules"
)

// loadConfig resolves the --config flag or searches upwards from the current
// directory.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.Load(path)
	}
	cfg, _, err := config.LoadOrDefault(".")
	return cfg, err
}

// buildEngine loads config, builds the rule set and wraps it in an engine.
func buildEngine(cmd *cobra.Command) (*engine.Engine, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	set, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}
	maxDiag, _ := cmd.Flags().GetInt("max-diagnostics")
	eng := engine.New(set, engine.Options{
		MaxDiagnostics: maxDiag,
		Parallel:       true,
	})
	return eng, cfg, nil
}

// buildRuleSet is buildEngine without the engine, for commands that only
// inspect rules.
func buildRuleSet(cmd *cobra.Command) (*rules.Set, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return cfg.Build()
}

// colorEnabled resolves the --color tri-state against the terminal.
func colorEnabled(cmd *cobra.Command) bool {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

// reportOptions builds render options from the persistent flags.
func reportOptions(cmd *cobra.Command) report.Options {
	quiet, _ := cmd.Flags().GetBool("quiet")
	return report.Options{
		Color:       colorEnabled(cmd),
		ShowContext: !quiet,
	}
}

// newLogger wires zerolog to stderr; debug level only with --verbose.
func newLogger(cmd *cobra.Command) zerolog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// exitChecked terminates with the conventional exit code: 0 iff ok.
func exitChecked(ok bool) {
	if !ok {
		os.Exit(1)
	}
}
