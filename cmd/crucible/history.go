package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/internal/storage"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently recorded solves",
		Long: `Display the most recent solves saved with "crucible solve --record".

Examples:
  crucible history
  crucible history --limit 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := storage.Open(a.cfg.Storage.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.RecentRuns(limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Run 'crucible solve --record <file>' to record one.")
				return nil
			}

			fmt.Fprintf(out, "  %-4s  %-8s  %-10s  %-10s  %-7s  %-8s  %s\n", "ID", "Grid", "Mode", "Model", "Cost", "Digest", "Date")
			fmt.Fprintf(out, "  %-4s  %-8s  %-10s  %-10s  %-7s  %-8s  %s\n", "--", "----", "----", "-----", "----", "------", "----")
			for _, r := range runs {
				fmt.Fprintf(out, "  %-4d  %-8s  %-10s  %-10s  %-7d  %-8s  %s\n",
					r.ID,
					fmt.Sprintf("%dx%d", r.Rows, r.Cols),
					r.Mode,
					r.Model,
					r.Cost,
					r.Digest[:8],
					r.CreatedAt.Format("2006-01-02 15:04"),
				)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of runs to show")

	return cmd
}
