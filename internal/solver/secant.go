package solver

import (
	"fmt"

	"github.com/zofmath/zof/internal/expr"
	"github.com/zofmath/zof/pkg/domain"
)

// Secant iterates the secant line through the two most recent points.
// Error metric: |x2 - x1|. Fails when the slope denominator
// f(x1) - f(x0) falls below the singularity threshold.
func Secant(fn string, x0, x1 float64, opts Options) (*domain.Result, error) {
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	f, _, err := expr.Compile(fn)
	if err != nil {
		return nil, err
	}
	f0, err := f(x0)
	if err != nil {
		return nil, err
	}
	f1, err := f(x1)
	if err != nil {
		return nil, err
	}

	t := domain.Trace{Columns: domain.Secant.Columns()}
	var x2 float64
	for i := 1; i <= o.MaxIterations; i++ {
		if abs(f1-f0) < singularityEps {
			return nil, fmt.Errorf("%w: f(x1) - f(x0) too small", domain.ErrSingularity)
		}
		x2 = x1 - f1*(x1-x0)/(f1-f0)
		f2, err := f(x2)
		if err != nil {
			return nil, err
		}
		step := abs(x2 - x1)
		t.Steps = append(t.Steps, domain.Step{Iteration: i, Values: []float64{x0, x1, x2, f2}, Error: step})

		if abs(f2) < o.Tolerance || step < o.Tolerance {
			return converged(domain.Secant, x2, t), nil
		}
		x0, f0 = x1, f1
		x1, f1 = x2, f2
	}
	return exhausted(domain.Secant, x2, t), nil
}

// ModifiedSecant approximates the derivative with a single relative
// perturbation delta instead of carrying two points: the probe sits at
// x + delta*x, or x + delta when x is exactly zero.
func ModifiedSecant(fn string, x0 float64, opts Options) (*domain.Result, error) {
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	f, _, err := expr.Compile(fn)
	if err != nil {
		return nil, err
	}

	t := domain.Trace{Columns: domain.ModifiedSecant.Columns()}
	x := x0
	for i := 1; i <= o.MaxIterations; i++ {
		fx, err := f(x)
		if err != nil {
			return nil, err
		}
		pert := o.Delta * x
		if x == 0 {
			pert = o.Delta
		}
		fp, err := f(x + pert)
		if err != nil {
			return nil, err
		}
		if abs(fp-fx) < singularityEps {
			return nil, fmt.Errorf("%w: f(x + δx) - f(x) too small", domain.ErrSingularity)
		}
		xNew := x - fx*pert/(fp-fx)
		step := abs(xNew - x)
		t.Steps = append(t.Steps, domain.Step{Iteration: i, Values: []float64{x, fx, fp, xNew}, Error: step})

		fNew, err := f(xNew)
		if err != nil {
			return nil, err
		}
		if abs(fNew) < o.Tolerance || step < o.Tolerance {
			return converged(domain.ModifiedSecant, xNew, t), nil
		}
		x = xNew
	}
	return exhausted(domain.ModifiedSecant, x, t), nil
}
