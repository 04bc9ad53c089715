package domain

// Method identifies one of the six root-finding algorithms.
// The string value is the wire identifier used by all adapters.
type Method string

const (
	Bisection      Method = "bisection"
	RegulaFalsi    Method = "regula_falsi"
	Secant         Method = "secant"
	NewtonRaphson  Method = "newton_raphson"
	FixedPoint     Method = "fixed_point"
	ModifiedSecant Method = "modified_secant"
)

// Methods lists all supported methods in menu order.
func Methods() []Method {
	return []Method{Bisection, RegulaFalsi, Secant, NewtonRaphson, FixedPoint, ModifiedSecant}
}

// Valid reports whether m is a known method identifier.
func (m Method) Valid() bool {
	switch m {
	case Bisection, RegulaFalsi, Secant, NewtonRaphson, FixedPoint, ModifiedSecant:
		return true
	}
	return false
}

// DisplayName returns the human-readable method name used in results.
func (m Method) DisplayName() string {
	switch m {
	case Bisection:
		return "Bisection Method"
	case RegulaFalsi:
		return "Regula Falsi Method"
	case Secant:
		return "Secant Method"
	case NewtonRaphson:
		return "Newton-Raphson Method"
	case FixedPoint:
		return "Fixed Point Iteration"
	case ModifiedSecant:
		return "Modified Secant Method"
	}
	return string(m)
}

// Params returns the names of the required numeric starting parameters.
// The modified secant perturbation delta is optional and not listed.
func (m Method) Params() []string {
	switch m {
	case Bisection, RegulaFalsi:
		return []string{"a", "b"}
	case Secant:
		return []string{"x0", "x1"}
	case NewtonRaphson, FixedPoint, ModifiedSecant:
		return []string{"x0"}
	}
	return nil
}

// Columns returns the labels of the per-iteration values recorded by
// the method, in trace order. The iteration index and error metric are
// recorded separately and are common to all methods.
func (m Method) Columns() []string {
	switch m {
	case Bisection, RegulaFalsi:
		return []string{"a", "b", "c", "f(c)"}
	case Secant:
		return []string{"x0", "x1", "x2", "f(x2)"}
	case NewtonRaphson:
		return []string{"x", "f(x)", "f'(x)", "x_new"}
	case FixedPoint:
		return []string{"x", "g(x)"}
	case ModifiedSecant:
		return []string{"x", "f(x)", "f(x+δx)", "x_new"}
	}
	return nil
}
