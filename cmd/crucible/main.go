// crucible finds the cheapest route for a crucible across a grid of
// heat-loss digits, where the crucible must respect minimum and maximum
// straight-run lengths.
//
// Usage:
//
//	crucible solve [file]     - Solve a grid (stdin when file is omitted or "-")
//	crucible modes            - List built-in and configured modes
//	crucible history          - Show recently recorded solves
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.crucible/config.yaml, ./configs/crucible.yaml)
//	--db <path>         - History database path (overrides config)
//	--log-level <lvl>   - debug, info, warn or error (overrides config)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	dbPath     string
	logLevel   string

	cfg    config.Config
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "crucible",
		Short: "Cheapest constrained route across a heat-loss grid",
		Long: `crucible reads a grid of digits and finds the cheapest route from the
top-left to the bottom-right cell when the crucible may not reverse and
must keep each straight run within a mode's bounds.

Built-in modes:
  basic  - turn after 1..3 cells
  ultra  - turn after 4..10 cells

Examples:
  crucible solve input.txt
  crucible solve --mode ultra --show-path input.txt
  cat input.txt | crucible solve --record
  crucible history --limit 5`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file")
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "Path to history database (default from config)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newModesCmd(a))
	root.AddCommand(newHistoryCmd(a))

	return root
}

// init loads configuration and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.Storage.DBPath = a.dbPath
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	a.cfg = cfg
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "crucible",
		Level:           level,
	})

	return nil
}
