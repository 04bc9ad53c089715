// Package zof finds real roots of a user-supplied scalar function
// f(x) = 0 using six classical iterative methods: bisection, regula
// falsi, secant, Newton-Raphson, fixed point iteration, and modified
// secant. Expressions are plain infix text ("x**2 - 4", "cos(x) - x");
// Newton-Raphson differentiates them symbolically.
//
// Every call is a pure function over its inputs: the expression is
// compiled per invocation and the iteration trace is a fresh local
// value, so concurrent callers never share state and identical inputs
// always produce identical results.
package zof

import (
	"github.com/zofmath/zof/internal/solver"
	"github.com/zofmath/zof/pkg/domain"
)

// Version is the release version of the zof module.
const Version = "0.2.0"

// Default tuning parameters, applied when no option overrides them.
const (
	DefaultTolerance     = solver.DefaultTolerance
	DefaultMaxIterations = solver.DefaultMaxIterations
	DefaultDelta         = solver.DefaultDelta
)

// Option tunes a single solve invocation.
type Option func(*solver.Options)

// WithTolerance sets the convergence tolerance (default 1e-6).
func WithTolerance(tol float64) Option {
	return func(o *solver.Options) { o.Tolerance = tol }
}

// WithMaxIterations caps the iteration count (default 100). Hitting the
// cap is reported as a warning on the result, not as an error.
func WithMaxIterations(n int) Option {
	return func(o *solver.Options) { o.MaxIterations = n }
}

// WithDelta sets the modified secant perturbation fraction
// (default 0.01). Other methods ignore it.
func WithDelta(delta float64) Option {
	return func(o *solver.Options) { o.Delta = delta }
}

func build(opts []Option) solver.Options {
	var o solver.Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Bisection finds a root of fn inside the bracket [a, b].
// f(a) and f(b) must have opposite signs.
func Bisection(fn string, a, b float64, opts ...Option) (*domain.Result, error) {
	return solver.Bisection(fn, a, b, build(opts))
}

// RegulaFalsi finds a root of fn inside the bracket [a, b] using the
// false position update. f(a) and f(b) must have opposite signs.
func RegulaFalsi(fn string, a, b float64, opts ...Option) (*domain.Result, error) {
	return solver.RegulaFalsi(fn, a, b, build(opts))
}

// Secant finds a root of fn from the two starting guesses x0 and x1.
func Secant(fn string, x0, x1 float64, opts ...Option) (*domain.Result, error) {
	return solver.Secant(fn, x0, x1, build(opts))
}

// NewtonRaphson finds a root of fn from the starting guess x0, using
// the exact symbolic derivative of fn.
func NewtonRaphson(fn string, x0 float64, opts ...Option) (*domain.Result, error) {
	return solver.NewtonRaphson(fn, x0, build(opts))
}

// FixedPoint iterates x = g(x) from x0. gn must express the rearranged
// form g(x), not the original f(x).
func FixedPoint(gn string, x0 float64, opts ...Option) (*domain.Result, error) {
	return solver.FixedPoint(gn, x0, build(opts))
}

// ModifiedSecant finds a root of fn from x0 using a single-point
// relative perturbation in place of a derivative (see WithDelta).
func ModifiedSecant(fn string, x0 float64, opts ...Option) (*domain.Result, error) {
	return solver.ModifiedSecant(fn, x0, build(opts))
}

// Solve validates req and dispatches to the matching method. It is the
// single entry point shared by the CLI, HTTP, and MCP adapters.
func Solve(req domain.Request) (*domain.Result, error) {
	return solver.Solve(req)
}
