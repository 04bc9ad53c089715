package tui

import (
	"github.com/charmbracelet/glamour"
)

// methodsGuide is the built-in markdown reference shown by the
// interactive session and `zof methods`.
const methodsGuide = "# Root-Finding Methods\n" +
	"\n" +
	"Functions are written in infix notation with `x` as the only\n" +
	"variable, e.g. `x**2 - 4`, `cos(x) - x`, `exp(x) - 3*x`.\n" +
	"Available functions: sin cos tan asin acos atan sinh cosh tanh\n" +
	"exp ln log sqrt abs floor ceil. Constants: `pi`, `e`.\n" +
	"\n" +
	"| # | Method | Starting parameters | Notes |\n" +
	"|---|--------|---------------------|-------|\n" +
	"| 1 | Bisection | bracket `a`, `b` | requires f(a)·f(b) < 0 |\n" +
	"| 2 | Regula Falsi | bracket `a`, `b` | requires f(a)·f(b) < 0 |\n" +
	"| 3 | Secant | guesses `x0`, `x1` | no derivative needed |\n" +
	"| 4 | Newton-Raphson | guess `x0` | symbolic derivative |\n" +
	"| 5 | Fixed Point | guess `x0` | enter g(x) with x = g(x) |\n" +
	"| 6 | Modified Secant | guess `x0`, perturbation `delta` | default delta 0.01 |\n" +
	"\n" +
	"Convergence is declared when |f(x)| or the method's error metric\n" +
	"drops below the tolerance (default `1e-6`, max 100 iterations).\n"

// RenderGuide renders the methods guide as styled terminal markdown.
// It falls back to the raw markdown if the renderer cannot start.
func RenderGuide() string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return methodsGuide
	}
	out, err := r.Render(methodsGuide)
	if err != nil {
		return methodsGuide
	}
	return out
}
