package zof_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zofmath/zof"
	"github.com/zofmath/zof/pkg/domain"
)

func ptr(v float64) *float64 { return &v }

func TestFacade_AllMethods(t *testing.T) {
	cases := []struct {
		name string
		run  func() (*domain.Result, error)
		root float64
	}{
		{"bisection", func() (*domain.Result, error) {
			return zof.Bisection("x**2 - 4", 0, 3)
		}, 2.0},
		{"regula falsi", func() (*domain.Result, error) {
			return zof.RegulaFalsi("x**3 - 2*x - 5", 2, 3)
		}, 2.0945515},
		{"secant", func() (*domain.Result, error) {
			return zof.Secant("cos(x) - x", 0, 1)
		}, 0.7390851},
		{"newton raphson", func() (*domain.Result, error) {
			return zof.NewtonRaphson("x**2 - 4", 3)
		}, 2.0},
		{"fixed point", func() (*domain.Result, error) {
			return zof.FixedPoint("sqrt(x + 2)", 1.5)
		}, 2.0},
		{"modified secant", func() (*domain.Result, error) {
			return zof.ModifiedSecant("x**2 - 4", 3)
		}, 2.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tc.run()
			require.NoError(t, err)
			assert.InDelta(t, tc.root, res.Root, 1e-4)
			assert.NotEmpty(t, res.Trace.Steps)
		})
	}
}

func TestFacade_Options(t *testing.T) {
	loose, err := zof.Bisection("x**2 - 4", 0, 3, zof.WithTolerance(1e-2))
	require.NoError(t, err)
	tight, err := zof.Bisection("x**2 - 4", 0, 3, zof.WithTolerance(1e-10))
	require.NoError(t, err)
	assert.Less(t, loose.Iterations, tight.Iterations)

	capped, err := zof.Bisection("x**2 - 4", 0, 3, zof.WithMaxIterations(2))
	require.NoError(t, err)
	assert.True(t, capped.Exhausted())
	assert.Equal(t, 2, capped.Iterations)
}

func TestFacade_Solve(t *testing.T) {
	res, err := zof.Solve(domain.Request{
		Method:   domain.Secant,
		Function: "cos(x) - x",
		X0:       ptr(0),
		X1:       ptr(1),
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.7390851, res.Root, 1e-5)
}

func TestFacade_ErrorClassification(t *testing.T) {
	_, err := zof.Bisection("x**2 +", 0, 3)
	assert.ErrorIs(t, err, domain.ErrParse)

	_, err = zof.Bisection("x**2 - 4", 3, 5)
	assert.ErrorIs(t, err, domain.ErrPrecondition)

	_, err = zof.NewtonRaphson("x**2 - 4", 0)
	assert.ErrorIs(t, err, domain.ErrSingularity)

	_, err = zof.FixedPoint("2*x", 1)
	assert.ErrorIs(t, err, domain.ErrDivergence)
}
