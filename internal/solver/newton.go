package solver

import (
	"fmt"

	"github.com/zofmath/zof/internal/expr"
	"github.com/zofmath/zof/pkg/domain"
)

// NewtonRaphson follows the tangent line at the current estimate. The
// derivative is obtained by exact symbolic differentiation of the
// parsed expression, never by finite differences. Fails when |f'(x)|
// falls below the singularity threshold.
func NewtonRaphson(fn string, x0 float64, opts Options) (*domain.Result, error) {
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	f, node, err := expr.Compile(fn)
	if err != nil {
		return nil, err
	}
	dnode, err := node.Derivative()
	if err != nil {
		return nil, err
	}
	df := expr.Lambdify(dnode)

	t := domain.Trace{Columns: domain.NewtonRaphson.Columns()}
	x := x0
	for i := 1; i <= o.MaxIterations; i++ {
		fx, err := f(x)
		if err != nil {
			return nil, err
		}
		dfx, err := df(x)
		if err != nil {
			return nil, err
		}
		if abs(dfx) < singularityEps {
			return nil, fmt.Errorf("%w: derivative too small at x = %g", domain.ErrSingularity, x)
		}
		xNew := x - fx/dfx
		step := abs(xNew - x)
		t.Steps = append(t.Steps, domain.Step{Iteration: i, Values: []float64{x, fx, dfx, xNew}, Error: step})

		fNew, err := f(xNew)
		if err != nil {
			return nil, err
		}
		if abs(fNew) < o.Tolerance || step < o.Tolerance {
			return converged(domain.NewtonRaphson, xNew, t), nil
		}
		x = xNew
	}
	return exhausted(domain.NewtonRaphson, x, t), nil
}
