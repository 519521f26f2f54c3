package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "gridpath",
	Short: "gridpath solves grid mazes with classic search strategies",
	Long: `gridpath loads a maze (YAML or JSON, or the built-in reference maze),
runs A*, Dijkstra, flood fill, backtracking or the wall follower on it,
and draws the resulting path in the terminal.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Log every search step")
}

// logger builds the process logger from the --debug flag.
func logger(cmd *cobra.Command) *slog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	return logging.New(logging.Level(debug))
}
