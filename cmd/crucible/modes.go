package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newModesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List available run-length modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "  %-10s  %-7s  %s\n", "Mode", "MinRun", "MaxRun")
			fmt.Fprintf(out, "  %-10s  %-7s  %s\n", "----", "------", "------")
			for _, m := range a.cfg.AllModes() {
				fmt.Fprintf(out, "  %-10s  %-7d  %d\n", m.Name, m.MinRun, m.MaxRun)
			}
			return nil
		},
	}
}
