package domain

import (
	"errors"
	"fmt"
)

// Failure sentinels. Every solve failure wraps exactly one of these so
// callers can classify the outcome with errors.Is without parsing text.
var (
	// ErrParse marks malformed expression text, a reference to a
	// variable other than x, or a construct that cannot be
	// differentiated when a derivative is required.
	ErrParse = errors.New("expression parse failure")

	// ErrDomain marks evaluation of the function outside its real
	// domain (log of a non-positive value, even root of a negative,
	// division by zero) or a non-finite intermediate result.
	ErrDomain = errors.New("evaluation outside function domain")

	// ErrPrecondition marks bracket endpoints that do not straddle a
	// sign change (bisection and regula falsi).
	ErrPrecondition = errors.New("function must have opposite signs at the endpoints")

	// ErrSingularity marks a denominator or derivative too close to
	// zero (< 1e-12) to trust the update step.
	ErrSingularity = errors.New("denominator too close to zero")

	// ErrDivergence marks iterate magnitude exceeding 1e10
	// (fixed point iteration only).
	ErrDivergence = errors.New("method diverging")
)

// ValidationError represents a single request field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}
