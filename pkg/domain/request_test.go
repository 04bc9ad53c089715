package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		req     Request
		wantErr string // failing field, empty for valid
	}{
		{
			name: "valid bisection",
			req:  Request{Method: Bisection, Function: "x**2 - 4", A: ptr(0), B: ptr(3)},
		},
		{
			name: "valid secant",
			req:  Request{Method: Secant, Function: "cos(x) - x", X0: ptr(0), X1: ptr(1)},
		},
		{
			name: "valid newton with zero guess",
			req:  Request{Method: NewtonRaphson, Function: "x - 1", X0: ptr(0)},
		},
		{
			name:    "unknown method",
			req:     Request{Method: "muller", Function: "x"},
			wantErr: "method",
		},
		{
			name:    "missing function",
			req:     Request{Method: Bisection, A: ptr(0), B: ptr(1)},
			wantErr: "function",
		},
		{
			name:    "bisection without b",
			req:     Request{Method: Bisection, Function: "x", A: ptr(0)},
			wantErr: "b",
		},
		{
			name:    "secant without x1",
			req:     Request{Method: Secant, Function: "x", X0: ptr(0)},
			wantErr: "x1",
		},
		{
			name:    "negative tolerance",
			req:     Request{Method: FixedPoint, Function: "x", X0: ptr(1), Tolerance: -1},
			wantErr: "tolerance",
		},
		{
			name:    "negative max iterations",
			req:     Request{Method: FixedPoint, Function: "x", X0: ptr(1), MaxIterations: -1},
			wantErr: "max_iterations",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.wantErr, verr.Field)
		})
	}
}

func TestMethod_Metadata(t *testing.T) {
	for _, m := range Methods() {
		assert.True(t, m.Valid(), m)
		assert.NotEmpty(t, m.DisplayName(), m)
		assert.NotEmpty(t, m.Params(), m)
		assert.NotEmpty(t, m.Columns(), m)
	}
	assert.False(t, Method("brent").Valid())
	assert.Len(t, Methods(), 6)
}
