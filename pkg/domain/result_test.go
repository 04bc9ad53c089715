package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace_MarshalJSON_KeyOrder(t *testing.T) {
	tr := Trace{
		Columns: Bisection.Columns(),
		Steps: []Step{
			{Iteration: 1, Values: []float64{0, 3, 1.5, -1.75}, Error: 1.5},
			{Iteration: 2, Values: []float64{1.5, 3, 2.25, 1.0625}, Error: 0.75},
		},
	}
	data, err := json.Marshal(tr)
	require.NoError(t, err)

	// Keys must appear in recording order, not alphabetically.
	want := `[{"iteration":1,"a":0,"b":3,"c":1.5,"f(c)":-1.75,"error":1.5},` +
		`{"iteration":2,"a":1.5,"b":3,"c":2.25,"f(c)":1.0625,"error":0.75}]`
	assert.Equal(t, want, string(data))
}

func TestTrace_MarshalJSON_UnicodeColumn(t *testing.T) {
	tr := Trace{
		Columns: ModifiedSecant.Columns(),
		Steps:   []Step{{Iteration: 1, Values: []float64{1, 2, 3, 4}, Error: 0.5}},
	}
	data, err := json.Marshal(tr)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	var steps []map[string]any
	require.NoError(t, json.Unmarshal(data, &steps))
	require.Len(t, steps, 1)
	assert.Equal(t, 2.0, steps[0]["f(x)"])
	assert.Equal(t, 3.0, steps[0]["f(x+δx)"])
}

func TestTrace_MarshalJSON_Empty(t *testing.T) {
	data, err := json.Marshal(Trace{Columns: Secant.Columns()})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestResult_MarshalJSON(t *testing.T) {
	res := Result{
		Method:     NewtonRaphson,
		Root:       2,
		Iterations: 1,
		FinalError: 1e-9,
		Trace: Trace{
			Columns: NewtonRaphson.Columns(),
			Steps:   []Step{{Iteration: 1, Values: []float64{3, 5, 6, 2}, Error: 1e-9}},
		},
	}
	data, err := json.Marshal(res)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "Newton-Raphson Method", m["method"])
	assert.Equal(t, 2.0, m["root"])
	assert.Equal(t, 1.0, m["iterations"])
	assert.Contains(t, m, "iteration_data")
	// No warning means no warning key on the wire.
	assert.NotContains(t, m, "warning")
}

func TestResult_MarshalJSON_Warning(t *testing.T) {
	res := Result{
		Method:  Secant,
		Warning: "maximum iterations reached",
		Trace:   Trace{Columns: Secant.Columns()},
	}
	data, err := json.Marshal(res)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "maximum iterations reached", m["warning"])
	assert.True(t, res.Exhausted())
}

func TestTrace_Last(t *testing.T) {
	tr := Trace{Steps: []Step{
		{Iteration: 1, Error: 1},
		{Iteration: 2, Error: 0.5},
	}}
	assert.Equal(t, 2, tr.Last().Iteration)
	assert.Equal(t, 0.5, tr.Last().Error)
}
