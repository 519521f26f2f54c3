package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gridpath",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gridpath version %s\n", gridpath.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
