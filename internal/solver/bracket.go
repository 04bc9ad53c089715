package solver

import (
	"fmt"

	"github.com/zofmath/zof/internal/expr"
	"github.com/zofmath/zof/pkg/domain"
)

// Bisection halves the bracket [a, b] around a sign change of f.
// Error metric: half the current bracket width.
func Bisection(fn string, a, b float64, opts Options) (*domain.Result, error) {
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	f, _, err := expr.Compile(fn)
	if err != nil {
		return nil, err
	}
	fa, _, err := bracketValues(f, a, b)
	if err != nil {
		return nil, err
	}

	t := domain.Trace{Columns: domain.Bisection.Columns()}
	var c float64
	for i := 1; i <= o.MaxIterations; i++ {
		c = (a + b) / 2
		fc, err := f(c)
		if err != nil {
			return nil, err
		}
		width := abs(b-a) / 2
		t.Steps = append(t.Steps, domain.Step{Iteration: i, Values: []float64{a, b, c, fc}, Error: width})

		if abs(fc) < o.Tolerance || width < o.Tolerance {
			return converged(domain.Bisection, c, t), nil
		}
		// Keep the half whose endpoints still straddle the sign change.
		if fa*fc < 0 {
			b = c
		} else {
			a, fa = c, fc
		}
	}
	return exhausted(domain.Bisection, c, t), nil
}

// RegulaFalsi replaces the midpoint with the x-intercept of the secant
// through (a, f(a)) and (b, f(b)), keeping the bracketing half.
// Error metric: |c - c_prev|, seeded with |b - a| on the first pass.
func RegulaFalsi(fn string, a, b float64, opts Options) (*domain.Result, error) {
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	f, _, err := expr.Compile(fn)
	if err != nil {
		return nil, err
	}
	fa, fb, err := bracketValues(f, a, b)
	if err != nil {
		return nil, err
	}

	t := domain.Trace{Columns: domain.RegulaFalsi.Columns()}
	cPrev := a
	var c float64
	for i := 1; i <= o.MaxIterations; i++ {
		if abs(fb-fa) < singularityEps {
			return nil, fmt.Errorf("%w: f(a) and f(b) are equal", domain.ErrSingularity)
		}
		c = b - fb*(b-a)/(fb-fa)
		fc, err := f(c)
		if err != nil {
			return nil, err
		}
		step := abs(c - cPrev)
		if i == 1 {
			step = abs(b - a)
		}
		t.Steps = append(t.Steps, domain.Step{Iteration: i, Values: []float64{a, b, c, fc}, Error: step})

		if abs(fc) < o.Tolerance || step < o.Tolerance {
			return converged(domain.RegulaFalsi, c, t), nil
		}
		if fa*fc < 0 {
			b, fb = c, fc
		} else {
			a, fa = c, fc
		}
		cPrev = c
	}
	return exhausted(domain.RegulaFalsi, c, t), nil
}

// bracketValues evaluates both endpoints and enforces the opposite-sign
// precondition shared by the bracketing methods. Equality (a root lying
// exactly on an endpoint) is allowed to proceed.
func bracketValues(f expr.Func, a, b float64) (fa, fb float64, err error) {
	fa, err = f(a)
	if err != nil {
		return 0, 0, err
	}
	fb, err = f(b)
	if err != nil {
		return 0, 0, err
	}
	if fa*fb > 0 {
		return 0, 0, fmt.Errorf("%w: f(%g) and f(%g) have the same sign", domain.ErrPrecondition, a, b)
	}
	return fa, fb, nil
}
