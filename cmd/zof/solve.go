package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/zofmath/zof"
	"github.com/zofmath/zof/internal/cli"
	"github.com/zofmath/zof/pkg/domain"
)

// solveCmd runs a single non-interactive solve, for scripting and
// quick one-liners.
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one equation non-interactively",
	Long: `Runs a single root-finding invocation from flags and prints the
iteration table, or the raw result as JSON with --json.

Examples:
  zof solve --method bisection --function "x**2 - 4" --a 0 --b 3
  zof solve --method newton_raphson --function "cos(x) - x" --x0 1 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		method, _ := cmd.Flags().GetString("method")
		function, _ := cmd.Flags().GetString("function")
		req := domain.Request{
			Method:        domain.Method(method),
			Function:      function,
			Tolerance:     cfg.Tolerance,
			MaxIterations: cfg.MaxIterations,
		}
		for name, dst := range map[string]**float64{
			"a": &req.A, "b": &req.B, "x0": &req.X0, "x1": &req.X1, "delta": &req.Delta,
		} {
			if cmd.Flags().Changed(name) {
				v, _ := cmd.Flags().GetFloat64(name)
				*dst = &v
			}
		}
		if cmd.Flags().Changed("tol") {
			req.Tolerance, _ = cmd.Flags().GetFloat64("tol")
		}
		if cmd.Flags().Changed("max-iter") {
			req.MaxIterations, _ = cmd.Flags().GetInt("max-iter")
		}

		jsonOut, _ := cmd.Flags().GetBool("json")
		res, err := zof.Solve(req)
		if err != nil {
			logger.Debug("solve failed", "method", method, "err", err)
			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				return enc.Encode(map[string]string{"error": err.Error()})
			}
			cli.RenderError(os.Stdout, req.Method, err)
			os.Exit(1)
		}

		if jsonOut {
			enc := json.NewEncoder(os.Stdout)
			return enc.Encode(res)
		}
		cli.RenderResult(os.Stdout, res)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringP("method", "m", "", "Method: bisection, regula_falsi, secant, newton_raphson, fixed_point, modified_secant")
	solveCmd.Flags().StringP("function", "f", "", "Function text, e.g. \"x**2 - 4\" (g(x) for fixed_point)")
	solveCmd.Flags().Float64("a", 0, "Left bracket endpoint")
	solveCmd.Flags().Float64("b", 0, "Right bracket endpoint")
	solveCmd.Flags().Float64("x0", 0, "Initial guess")
	solveCmd.Flags().Float64("x1", 0, "Second initial guess (secant)")
	solveCmd.Flags().Float64("delta", zof.DefaultDelta, "Perturbation fraction (modified_secant)")
	solveCmd.Flags().Float64("tol", zof.DefaultTolerance, "Convergence tolerance")
	solveCmd.Flags().Int("max-iter", zof.DefaultMaxIterations, "Maximum iterations")
	solveCmd.Flags().Bool("json", false, "Print the raw result as JSON")

	_ = solveCmd.MarkFlagRequired("method")
	_ = solveCmd.MarkFlagRequired("function")
}
