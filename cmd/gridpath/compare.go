package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath"
	"github.com/katalvlaran/gridpath/internal/gridfile"
	"github.com/katalvlaran/gridpath/search"
)

var compareCmd = &cobra.Command{
	Use:   "compare [FILE]",
	Short: "Run every solver on the same maze",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, _ := cmd.Flags().GetString("start")
		goal, _ := cmd.Flags().GetString("goal")
		m, err := loadMaze(args, start, goal)
		if err != nil {
			return err
		}
		return runCompare(cmd, m, logger(cmd))
	},
}

func init() {
	compareCmd.Flags().String("start", "", "Start position as row,col")
	compareCmd.Flags().String("goal", "", "Goal position as row,col")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, m gridfile.Maze, log *slog.Logger) error {
	results := gridpath.Compare(cmd.Context(), m.Grid, m.Start, m.Goal)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SOLVER\tSTATUS\tLENGTH\tEXPANDED\tVALID")
	for _, c := range results {
		r := c.Result
		log.Info("search finished", "algo", c.Solver, "status", r.Status.String(), "length", r.Len(), "expanded", r.Expanded)
		valid := "-"
		if r.Found() {
			valid = "yes"
			if err := search.ValidatePath(m.Grid, r.Path, m.Start, m.Goal); err != nil {
				log.Warn("invalid path", "algo", c.Solver, "error", err)
				valid = "no"
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", c.Solver, r.Status, r.Len(), r.Expanded, valid)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	reachable := m.Grid.ConnectedComponents().Connected(m.Start, m.Goal)
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "reachable: %v\n", reachable)
	return err
}
