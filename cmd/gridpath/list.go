package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available solvers",
	Run: func(cmd *cobra.Command, args []string) {
		for i, name := range gridpath.Names() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, name)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
