package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zofmath/zof/internal/config"
	"github.com/zofmath/zof/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "zof",
	Short: "zof finds real roots of f(x) = 0",
	Long: `zof solves f(x) = 0 with six classical iterative methods:
bisection, regula falsi, secant, Newton-Raphson, fixed point
iteration, and modified secant. Functions are plain infix text
("x**2 - 4", "cos(x) - x"); Newton-Raphson differentiates them
symbolically.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

// setup loads the configuration and installs the default logger.
// Flags win over the config file, which wins over the defaults.
func setup(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags().Changed("config"))
	if err != nil {
		return cfg, nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	logger := logging.New(logging.ParseLevel(cfg.LogLevel))
	slog.SetDefault(logger)
	return cfg, logger, nil
}
