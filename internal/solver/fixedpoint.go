package solver

import (
	"fmt"

	"github.com/zofmath/zof/internal/expr"
	"github.com/zofmath/zof/pkg/domain"
)

// FixedPoint iterates x_new = g(x). The function text must already be
// the rearranged form x = g(x); the iteration targets the fixed point
// of g, so convergence is judged on the step size alone — there is no
// |f| test because f is not what is being evaluated. Iterate magnitudes
// beyond the divergence limit abort the run.
func FixedPoint(gn string, x0 float64, opts Options) (*domain.Result, error) {
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	g, _, err := expr.Compile(gn)
	if err != nil {
		return nil, err
	}

	t := domain.Trace{Columns: domain.FixedPoint.Columns()}
	x := x0
	for i := 1; i <= o.MaxIterations; i++ {
		xNew, err := g(x)
		if err != nil {
			return nil, err
		}
		step := abs(xNew - x)
		t.Steps = append(t.Steps, domain.Step{Iteration: i, Values: []float64{x, xNew}, Error: step})

		if step < o.Tolerance {
			return converged(domain.FixedPoint, xNew, t), nil
		}
		if abs(xNew) > divergenceLimit {
			return nil, fmt.Errorf("%w: |x| > %g", domain.ErrDivergence, divergenceLimit)
		}
		x = xNew
	}
	return exhausted(domain.FixedPoint, x, t), nil
}
