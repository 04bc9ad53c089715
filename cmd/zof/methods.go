package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zofmath/zof/internal/presentation/tui"
)

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "Show the root-finding methods guide",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(tui.RenderGuide())
	},
}

func init() {
	rootCmd.AddCommand(methodsCmd)
}
