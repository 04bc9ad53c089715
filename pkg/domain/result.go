package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Step is one row of the iteration trace. Values is aligned with the
// owning Trace's Columns.
type Step struct {
	Iteration int
	Values    []float64
	Error     float64
}

// Trace is the append-only iteration history of a single solve
// invocation. It is a value owned by one Result and is never shared or
// reused across calls.
type Trace struct {
	Columns []string
	Steps   []Step
}

// Last returns the final step. It must only be called on a non-empty
// trace; every successful solve records at least one step.
func (t Trace) Last() Step {
	return t.Steps[len(t.Steps)-1]
}

// MarshalJSON renders the trace as the original wire format: an array
// of objects keyed by iteration, the method's column labels, and error.
// Key order is preserved, which encoding/json maps would not do.
func (t Trace) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, s := range t.Steps {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`{"iteration":`)
		buf.WriteString(strconv.Itoa(s.Iteration))
		for j, col := range t.Columns {
			key, err := json.Marshal(col)
			if err != nil {
				return nil, err
			}
			buf.WriteByte(',')
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(appendJSONFloat(nil, s.Values[j]))
		}
		buf.WriteString(`,"error":`)
		buf.Write(appendJSONFloat(nil, s.Error))
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// appendJSONFloat formats v as a JSON number. Non-finite values are not
// valid JSON and become null; the engine itself never emits them.
func appendJSONFloat(dst []byte, v float64) []byte {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return append(dst, "null"...)
	}
	return strconv.AppendFloat(dst, v, 'g', -1, 64)
}

// Result is the uniform outcome of a converged or budget-exhausted
// solve. Hard failures are reported as errors, not Results.
type Result struct {
	Method     Method  `json:"-"`
	Root       float64 `json:"root"`
	Iterations int     `json:"iterations"`
	FinalError float64 `json:"final_error"`
	Trace      Trace   `json:"iteration_data"`
	// Warning is set when the iteration budget was exhausted before
	// convergence; the Result still carries the best estimate.
	Warning string `json:"warning,omitempty"`
}

// Exhausted reports whether the result hit the iteration budget without
// satisfying the convergence test.
func (r *Result) Exhausted() bool { return r.Warning != "" }

// MarshalJSON adds the human-readable method name to the wire form.
func (r Result) MarshalJSON() ([]byte, error) {
	type alias Result
	return json.Marshal(struct {
		Method string `json:"method"`
		alias
	}{Method: r.Method.DisplayName(), alias: alias(r)})
}
