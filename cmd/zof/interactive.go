package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zofmath/zof/internal/cli"
)

// interactiveCmd starts the menu-driven prompt session.
var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"run"},
	Short:   "Solve equations in an interactive session",
	Long:    `Starts a prompt loop: pick a method, enter the function and its starting parameters, and view the iteration table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		return cli.RunSession(os.Stdin, os.Stdout, cli.SessionOptions{
			Tolerance:     cfg.Tolerance,
			MaxIterations: cfg.MaxIterations,
			Banner:        term.IsTerminal(int(os.Stdout.Fd())),
			Logger:        logger,
		})
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)

	// Running zof with no subcommand drops into the session.
	rootCmd.RunE = interactiveCmd.RunE
}
