package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zofmath/zof"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of zof",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("zof version %s\n", zof.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
