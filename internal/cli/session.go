// Package cli implements the terminal presentation adapter: the
// interactive prompt session and the result table renderer. It only
// collects parameters and formats results; all numeric work happens in
// the solver core behind zof.Solve.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/zofmath/zof"
	"github.com/zofmath/zof/internal/presentation/tui"
	"github.com/zofmath/zof/pkg/domain"
)

// SessionOptions configures an interactive session.
type SessionOptions struct {
	// Tolerance and MaxIterations are the prompt defaults, usually
	// taken from the config file.
	Tolerance     float64
	MaxIterations int
	// Banner suppressed when stdout is not a terminal.
	Banner bool
	Logger *slog.Logger
}

// RunSession drives the interactive prompt loop: pick a method, enter
// the function and its starting parameters, view the iteration table,
// repeat until the user quits or input ends.
func RunSession(in io.Reader, out io.Writer, opts SessionOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Banner {
		tui.PrintBanner(out, zof.Version)
	}

	sc := bufio.NewScanner(in)
	for {
		printMenu(out)
		choice, ok := prompt(sc, out, "Select method (1-6, g for guide, q to quit): ")
		if !ok {
			return nil
		}
		switch strings.ToLower(choice) {
		case "q", "quit", "exit":
			return nil
		case "g", "guide":
			fmt.Fprint(out, tui.RenderGuide())
			continue
		}
		idx, err := strconv.Atoi(choice)
		if err != nil || idx < 1 || idx > len(domain.Methods()) {
			fmt.Fprintln(out, "Invalid choice!")
			continue
		}
		method := domain.Methods()[idx-1]

		req, ok := promptRequest(sc, out, method, opts)
		if !ok {
			return nil
		}

		logger.Debug("solving", "method", string(method), "function", req.Function)
		res, err := zof.Solve(*req)
		if err != nil {
			RenderError(out, method, err)
		} else {
			RenderResult(out, res)
		}

		again, ok := prompt(sc, out, "Solve another equation? (y/n): ")
		if !ok || !strings.EqualFold(strings.TrimSpace(again), "y") {
			return nil
		}
	}
}

func printMenu(w io.Writer) {
	fmt.Fprintln(w, "Available Methods:")
	for i, m := range domain.Methods() {
		fmt.Fprintf(w, "  %d. %s\n", i+1, m.DisplayName())
	}
	fmt.Fprintln(w)
}

func promptRequest(sc *bufio.Scanner, out io.Writer, method domain.Method, opts SessionOptions) (*domain.Request, bool) {
	req := &domain.Request{
		Method:        method,
		Tolerance:     opts.Tolerance,
		MaxIterations: opts.MaxIterations,
	}

	if method == domain.FixedPoint {
		fmt.Fprintln(out, "\nNote: enter the function in the rearranged form g(x) where x = g(x)")
		fmt.Fprintln(out, "Example: for x**2 - 4 = 0 use sqrt(x + 2) near the positive root")
	} else {
		fmt.Fprintln(out, "\nNote: enter the function in infix notation with x as the variable")
		fmt.Fprintln(out, "Examples: x**2 - 4, sin(x) - x/2, exp(x) - 3*x")
	}
	label := "Enter function f(x): "
	if method == domain.FixedPoint {
		label = "Enter function g(x): "
	}
	fn, ok := prompt(sc, out, label)
	if !ok {
		return nil, false
	}
	req.Function = fn

	var paramLabels = map[string]string{
		"a":  "Enter left endpoint (a): ",
		"b":  "Enter right endpoint (b): ",
		"x0": "Enter initial guess (x0): ",
		"x1": "Enter second initial guess (x1): ",
	}
	if method == domain.Secant {
		paramLabels["x0"] = "Enter first initial guess (x0): "
	}
	for _, p := range method.Params() {
		v, ok := promptFloat(sc, out, paramLabels[p], nil)
		if !ok {
			return nil, false
		}
		switch p {
		case "a":
			req.A = v
		case "b":
			req.B = v
		case "x0":
			req.X0 = v
		case "x1":
			req.X1 = v
		}
	}
	if method == domain.ModifiedSecant {
		def := zof.DefaultDelta
		v, ok := promptFloat(sc, out, fmt.Sprintf("Enter perturbation delta (default %g): ", def), &def)
		if !ok {
			return nil, false
		}
		req.Delta = v
	}

	tolDef := req.Tolerance
	if tolDef == 0 {
		tolDef = zof.DefaultTolerance
	}
	tol, ok := promptFloat(sc, out, fmt.Sprintf("Enter tolerance (default %g): ", tolDef), &tolDef)
	if !ok {
		return nil, false
	}
	req.Tolerance = *tol

	iterDef := req.MaxIterations
	if iterDef == 0 {
		iterDef = zof.DefaultMaxIterations
	}
	iters, ok := promptInt(sc, out, fmt.Sprintf("Enter max iterations (default %d): ", iterDef), iterDef)
	if !ok {
		return nil, false
	}
	req.MaxIterations = iters

	return req, true
}

// prompt writes label and reads one trimmed line. ok is false when
// input is exhausted.
func prompt(sc *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprint(out, label)
	if !sc.Scan() {
		fmt.Fprintln(out)
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

// promptFloat reads a float, re-asking on bad input. An empty line
// returns def when one is provided.
func promptFloat(sc *bufio.Scanner, out io.Writer, label string, def *float64) (*float64, bool) {
	for {
		s, ok := prompt(sc, out, label)
		if !ok {
			return nil, false
		}
		if s == "" && def != nil {
			v := *def
			return &v, true
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			fmt.Fprintf(out, "Not a number: %q\n", s)
			continue
		}
		return &v, true
	}
}

func promptInt(sc *bufio.Scanner, out io.Writer, label string, def int) (int, bool) {
	for {
		s, ok := prompt(sc, out, label)
		if !ok {
			return 0, false
		}
		if s == "" {
			return def, true
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintf(out, "Not an integer: %q\n", s)
			continue
		}
		return v, true
	}
}
