package domain

import "fmt"

// Request carries one solve invocation across any adapter boundary.
// Starting parameters are pointers so that "absent" can be told apart
// from an explicit zero; Tolerance and MaxIterations fall back to the
// engine defaults when left at their zero values.
type Request struct {
	Method        Method   `json:"method" mapstructure:"method"`
	Function      string   `json:"function" mapstructure:"function"`
	A             *float64 `json:"a,omitempty" mapstructure:"a"`
	B             *float64 `json:"b,omitempty" mapstructure:"b"`
	X0            *float64 `json:"x0,omitempty" mapstructure:"x0"`
	X1            *float64 `json:"x1,omitempty" mapstructure:"x1"`
	Delta         *float64 `json:"delta,omitempty" mapstructure:"delta"`
	Tolerance     float64  `json:"tolerance,omitempty" mapstructure:"tolerance"`
	MaxIterations int      `json:"max_iterations,omitempty" mapstructure:"max_iterations"`
}

// Validate checks that the request names a known method and carries the
// starting parameters that method requires.
func (r *Request) Validate() error {
	if !r.Method.Valid() {
		return &ValidationError{Field: "method", Reason: fmt.Sprintf("unknown method %q", string(r.Method))}
	}
	if r.Function == "" {
		return &ValidationError{Field: "function", Reason: "missing function text"}
	}
	for _, p := range r.Method.Params() {
		if r.param(p) == nil {
			return &ValidationError{Field: p, Reason: "required by " + r.Method.DisplayName()}
		}
	}
	if r.Tolerance < 0 {
		return &ValidationError{Field: "tolerance", Reason: "must be > 0"}
	}
	if r.MaxIterations < 0 {
		return &ValidationError{Field: "max_iterations", Reason: "must be >= 1"}
	}
	return nil
}

func (r *Request) param(name string) *float64 {
	switch name {
	case "a":
		return r.A
	case "b":
		return r.B
	case "x0":
		return r.X0
	case "x1":
		return r.X1
	case "delta":
		return r.Delta
	}
	return nil
}
