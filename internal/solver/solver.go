// Package solver implements six classical root-finding methods over
// expressions compiled by internal/expr. Every method is a pure
// function: it compiles its own expression, owns its own iteration
// trace, and shares no state with any other invocation, so concurrent
// solves are independent by construction.
//
// All methods share one convergence contract: the iteration converges
// when EITHER the current function-value magnitude OR the method's
// error metric drops below the tolerance. The OR test can declare
// success near a flat extremum where |f(x)| is small without x being
// near a root; that is the documented behavior of this tool, not a bug.
package solver

import (
	"fmt"
	"math"

	"github.com/zofmath/zof/pkg/domain"
)

// Engine defaults and policy constants.
const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100
	DefaultDelta         = 0.01

	// singularityEps is the smallest denominator or derivative
	// magnitude a secant/Newton update step will divide by.
	singularityEps = 1e-12

	// divergenceLimit bounds the iterate magnitude for fixed point
	// iteration before the run is declared divergent.
	divergenceLimit = 1e10
)

const maxIterWarning = "maximum iterations reached"

// Options are the tuning parameters common to all methods. Zero values
// select the defaults; negative values are rejected.
type Options struct {
	Tolerance     float64
	MaxIterations int
	// Delta is the modified secant perturbation fraction.
	Delta float64
}

func (o Options) normalize() (Options, error) {
	switch {
	case o.Tolerance == 0:
		o.Tolerance = DefaultTolerance
	case o.Tolerance < 0:
		return o, &domain.ValidationError{Field: "tolerance", Reason: "must be > 0"}
	}
	switch {
	case o.MaxIterations == 0:
		o.MaxIterations = DefaultMaxIterations
	case o.MaxIterations < 0:
		return o, &domain.ValidationError{Field: "max_iterations", Reason: "must be >= 1"}
	}
	if o.Delta == 0 {
		o.Delta = DefaultDelta
	}
	return o, nil
}

// Solve validates the request and dispatches to the matching method.
// All presentation adapters funnel through this single entry point.
func Solve(req domain.Request) (*domain.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	o := Options{Tolerance: req.Tolerance, MaxIterations: req.MaxIterations}
	if req.Delta != nil {
		o.Delta = *req.Delta
	}
	switch req.Method {
	case domain.Bisection:
		return Bisection(req.Function, *req.A, *req.B, o)
	case domain.RegulaFalsi:
		return RegulaFalsi(req.Function, *req.A, *req.B, o)
	case domain.Secant:
		return Secant(req.Function, *req.X0, *req.X1, o)
	case domain.NewtonRaphson:
		return NewtonRaphson(req.Function, *req.X0, o)
	case domain.FixedPoint:
		return FixedPoint(req.Function, *req.X0, o)
	case domain.ModifiedSecant:
		return ModifiedSecant(req.Function, *req.X0, o)
	}
	return nil, &domain.ValidationError{Field: "method", Reason: fmt.Sprintf("unknown method %q", string(req.Method))}
}

func converged(m domain.Method, root float64, t domain.Trace) *domain.Result {
	return &domain.Result{
		Method:     m,
		Root:       root,
		Iterations: len(t.Steps),
		FinalError: t.Last().Error,
		Trace:      t,
	}
}

func exhausted(m domain.Method, root float64, t domain.Trace) *domain.Result {
	r := converged(m, root, t)
	r.Warning = maxIterWarning
	return r
}

func abs(v float64) float64 { return math.Abs(v) }
