package main

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/internal/render"
	"github.com/katalvlaran/crucible/internal/storage"
)

type solveFlags struct {
	modes       []string
	model       string
	noGoalCheck bool
	showPath    bool
	record      bool
	plain       bool
}

// solveOutcome is the result of one mode on the input grid.
type solveOutcome struct {
	mode     crucible.Mode
	res      *crucible.Result
	cached   bool
	duration time.Duration
	err      error
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a grid for one or more modes",
		Long: `Read a grid of digits 1-9 (one row per line) and print the minimal
heat loss for each requested mode.

Without --mode the modes listed under solve.modes in the config are used,
which by default are basic and ultra.

Examples:
  crucible solve input.txt
  crucible solve --mode ultra --model per-cell input.txt
  crucible solve --mode basic --show-path - < input.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, args, f)
		},
	}

	cmd.Flags().StringSliceVar(&f.modes, "mode", nil, "Mode name, repeatable (default from config)")
	cmd.Flags().StringVar(&f.model, "model", "", "Transition model: compressed or per-cell (default from config)")
	cmd.Flags().BoolVar(&f.noGoalCheck, "no-goal-check", false, "Accept the goal even when the final run is shorter than MinRun")
	cmd.Flags().BoolVar(&f.showPath, "show-path", false, "Draw the witness route for each mode")
	cmd.Flags().BoolVar(&f.record, "record", false, "Save results to the history database and reuse earlier ones")
	cmd.Flags().BoolVar(&f.plain, "plain", false, "Disable colors and borders")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string, f *solveFlags) error {
	gg, err := readGrid(cmd, args)
	if err != nil {
		return err
	}
	rows, cols := gg.Dimensions()
	a.logger.Debug("grid loaded", "rows", rows, "cols", cols)

	// Resolve settings: flags win over config.
	names := f.modes
	if len(names) == 0 {
		names = a.cfg.Solve.Modes
	}
	modes := make([]crucible.Mode, 0, len(names))
	for _, name := range names {
		m, err := a.cfg.ResolveMode(name)
		if err != nil {
			return err
		}
		modes = append(modes, m)
	}

	modelName := a.cfg.Solve.Model
	if f.model != "" {
		modelName = f.model
	}
	model, err := crucible.ParseModel(modelName)
	if err != nil {
		return err
	}
	goalCheck := a.cfg.Solve.GoalRunCheck && !f.noGoalCheck
	showPath := f.showPath || a.cfg.Solve.ShowPath
	record := f.record || a.cfg.Solve.Record

	var store *storage.Store
	if record {
		store, err = storage.Open(a.cfg.Storage.DBPath)
		if err != nil {
			a.logger.Warn("could not open history database", "error", err)
			// Continue without storage
		} else {
			defer store.Close()
		}
	}
	digest := storage.Digest(gg)

	outcomes := make([]solveOutcome, len(modes))
	var wg sync.WaitGroup
	for i, m := range modes {
		outcomes[i].mode = m
		if store != nil && !showPath {
			cost, found, err := store.Lookup(storage.Key{
				Digest: digest, MinRun: m.MinRun, MaxRun: m.MaxRun, Model: model.String(), GoalRunCheck: goalCheck,
			})
			if err != nil {
				a.logger.Warn("history lookup failed", "mode", m.Name, "error", err)
			} else if found {
				outcomes[i].res = &crucible.Result{Cost: cost}
				outcomes[i].cached = true
				continue
			}
		}

		wg.Add(1)
		go func(o *solveOutcome) {
			defer wg.Done()
			opts := []crucible.Option{
				crucible.WithMode(o.mode),
				crucible.WithTransitionModel(model),
				crucible.WithGoalRunCheck(goalCheck),
			}
			if showPath {
				opts = append(opts, crucible.WithReturnPath())
			}
			start := time.Now()
			o.res, o.err = crucible.Search(gg, opts...)
			o.duration = time.Since(start)
		}(&outcomes[i])
	}
	wg.Wait()

	r := render.New(f.plain)
	out := cmd.OutOrStdout()
	for _, o := range outcomes {
		if o.err != nil {
			return fmt.Errorf("%s: %w", o.mode.Name, o.err)
		}
		if o.cached {
			a.logger.Debug("reused recorded result", "mode", o.mode.Name, "cost", o.res.Cost)
		} else {
			a.logger.Debug("solved", "mode", o.mode, "model", model, "cost", o.res.Cost,
				"popped", o.res.Popped, "settled", o.res.Settled, "duration", o.duration)
		}

		fmt.Fprintln(out, r.Title(fmt.Sprintf("%s: %d", o.mode.Name, o.res.Cost)))
		if showPath {
			fmt.Fprintln(out, r.Box(r.Route(gg, o.res.Path)))
		}

		if store != nil && !o.cached {
			_, err := store.SaveRun(storage.Run{
				Digest:       digest,
				Rows:         rows,
				Cols:         cols,
				Mode:         o.mode.Name,
				MinRun:       o.mode.MinRun,
				MaxRun:       o.mode.MaxRun,
				Model:        model.String(),
				GoalRunCheck: goalCheck,
				Cost:         o.res.Cost,
				Settled:      o.res.Settled,
				Duration:     o.duration,
			})
			if err != nil {
				a.logger.Warn("could not record run", "mode", o.mode.Name, "error", err)
			}
		}
	}

	return nil
}

// readGrid parses the grid from the named file, or stdin for "-" or no args.
func readGrid(cmd *cobra.Command, args []string) (*gridgraph.GridGraph, error) {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("cannot open grid: %w", err)
		}
		defer file.Close()
		in = file
	}

	return gridgraph.ParseDigits(in)
}
