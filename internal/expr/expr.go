// Package expr compiles textual math expressions in one free variable x
// into evaluable functions and immutable symbolic trees that support
// exact differentiation.
//
// The tree is built through simplifying constructors: constants fold,
// additive zeros and multiplicative ones vanish, nested sums and
// products flatten. Subtraction lowers to add(a, mul(-1, b)) and
// division to mul(a, pow(b, -1)), so the derivative rules only need to
// cover four composite forms.
package expr

import (
	"fmt"
	"math"

	"github.com/zofmath/zof/pkg/domain"
)

// Func is a compiled numeric mapping R -> R. A non-nil error means the
// point lies outside the function's real domain; the value must then be
// ignored, never compared.
type Func func(x float64) (float64, error)

// ErrNonDifferentiable marks a primitive with no symbolic derivative
// (abs, floor, ceil). It is a parse-class failure: the expression is
// well formed but unusable for a derivative-based method.
var ErrNonDifferentiable = fmt.Errorf("%w: expression contains a non-differentiable primitive", domain.ErrParse)

// Node is an immutable symbolic expression in the variable x.
type Node interface {
	// Eval computes the value at x, reporting domain violations and
	// non-finite results as errors instead of propagating NaN.
	Eval(x float64) (float64, error)
	// Derivative returns the exact symbolic first derivative.
	Derivative() (Node, error)
	String() string
}

// Compile parses src and returns the evaluable function together with
// its symbolic form.
func Compile(src string) (Func, Node, error) {
	n, err := Parse(src)
	if err != nil {
		return nil, nil, err
	}
	return Lambdify(n), n, nil
}

// Lambdify wraps a symbolic tree as a plain evaluable function.
func Lambdify(n Node) Func {
	return n.Eval
}

func finite(v float64, what string) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s is not finite", domain.ErrDomain, what)
	}
	return v, nil
}

// ---- constant ----

type num float64

// Num returns a constant node.
func Num(v float64) Node { return num(v) }

func (n num) Eval(float64) (float64, error) { return float64(n), nil }
func (n num) Derivative() (Node, error)     { return num(0), nil }
func (n num) String() string                { return fmt.Sprintf("%g", float64(n)) }

// ---- the variable x ----

type variable struct{}

// X returns the free variable node.
func X() Node { return variable{} }

func (variable) Eval(x float64) (float64, error) { return x, nil }
func (variable) Derivative() (Node, error)       { return num(1), nil }
func (variable) String() string                  { return "x" }

// ---- sum ----

type add struct{ terms []Node }

// Add builds a flattened, constant-folded sum.
func Add(terms ...Node) Node {
	flat := make([]Node, 0, len(terms))
	c := 0.0
	for _, t := range terms {
		switch v := t.(type) {
		case add:
			flat = append(flat, v.terms...)
		case num:
			c += float64(v)
		default:
			flat = append(flat, t)
		}
	}
	if c != 0 {
		flat = append(flat, num(c))
	}
	switch len(flat) {
	case 0:
		return num(0)
	case 1:
		return flat[0]
	}
	return add{terms: flat}
}

// Sub builds a - b.
func Sub(a, b Node) Node { return Add(a, Mul(num(-1), b)) }

func (a add) Eval(x float64) (float64, error) {
	sum := 0.0
	for _, t := range a.terms {
		v, err := t.Eval(x)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return finite(sum, "sum")
}

func (a add) Derivative() (Node, error) {
	dts := make([]Node, len(a.terms))
	for i, t := range a.terms {
		d, err := t.Derivative()
		if err != nil {
			return nil, err
		}
		dts[i] = d
	}
	return Add(dts...), nil
}

func (a add) String() string {
	s := ""
	for i, t := range a.terms {
		if i > 0 {
			s += " + "
		}
		s += t.String()
	}
	return s
}

// ---- product ----

type mul struct{ factors []Node }

// Mul builds a flattened, constant-folded product.
func Mul(factors ...Node) Node {
	flat := make([]Node, 0, len(factors))
	c := 1.0
	for _, f := range factors {
		switch v := f.(type) {
		case mul:
			flat = append(flat, v.factors...)
		case num:
			c *= float64(v)
		default:
			flat = append(flat, f)
		}
	}
	if c == 0 {
		return num(0)
	}
	if c != 1 {
		flat = append([]Node{num(c)}, flat...)
	}
	switch len(flat) {
	case 0:
		return num(1)
	case 1:
		return flat[0]
	}
	return mul{factors: flat}
}

// Div builds a / b.
func Div(a, b Node) Node { return Mul(a, Pow(b, num(-1))) }

func (m mul) Eval(x float64) (float64, error) {
	prod := 1.0
	for _, f := range m.factors {
		v, err := f.Eval(x)
		if err != nil {
			return 0, err
		}
		prod *= v
	}
	return finite(prod, "product")
}

// Derivative applies the general product rule:
// (f1 f2 ... fn)' = sum_i fi' * prod_{j != i} fj.
func (m mul) Derivative() (Node, error) {
	terms := make([]Node, len(m.factors))
	for i, fi := range m.factors {
		dfi, err := fi.Derivative()
		if err != nil {
			return nil, err
		}
		rest := make([]Node, 0, len(m.factors))
		rest = append(rest, dfi)
		for j, fj := range m.factors {
			if j != i {
				rest = append(rest, fj)
			}
		}
		terms[i] = Mul(rest...)
	}
	return Add(terms...), nil
}

func (m mul) String() string {
	s := ""
	for i, f := range m.factors {
		if i > 0 {
			s += "*"
		}
		if _, ok := f.(add); ok {
			s += "(" + f.String() + ")"
		} else {
			s += f.String()
		}
	}
	return s
}

// ---- power ----

type pow struct{ base, exp Node }

// Pow builds base^exp. Constant powers fold only when the result is
// finite, so domain violations stay visible at evaluation time.
func Pow(base, exp Node) Node {
	if e, ok := exp.(num); ok {
		if e == 0 {
			return num(1)
		}
		if e == 1 {
			return base
		}
		if b, ok := base.(num); ok {
			v := math.Pow(float64(b), float64(e))
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				return num(v)
			}
		}
	}
	return pow{base: base, exp: exp}
}

func (p pow) Eval(x float64) (float64, error) {
	b, err := p.base.Eval(x)
	if err != nil {
		return 0, err
	}
	e, err := p.exp.Eval(x)
	if err != nil {
		return 0, err
	}
	v := math.Pow(b, e)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %g^%g is undefined", domain.ErrDomain, b, e)
	}
	return v, nil
}

func (p pow) Derivative() (Node, error) {
	db, err := p.base.Derivative()
	if err != nil {
		return nil, err
	}
	if e, ok := p.exp.(num); ok {
		// d/dx u^c = c * u^(c-1) * u'
		return Mul(num(float64(e)), Pow(p.base, num(float64(e)-1)), db), nil
	}
	de, err := p.exp.Derivative()
	if err != nil {
		return nil, err
	}
	if _, ok := p.base.(num); ok {
		// d/dx c^v = c^v * ln(c) * v'
		return Mul(p, Call("ln", p.base), de), nil
	}
	// General case: u^v * (v' ln(u) + v u'/u).
	return Mul(p, Add(Mul(de, Call("ln", p.base)), Mul(p.exp, db, Pow(p.base, num(-1))))), nil
}

func (p pow) String() string {
	bs := p.base.String()
	switch p.base.(type) {
	case add, mul:
		bs = "(" + bs + ")"
	}
	return bs + "^" + p.exp.String()
}

// ---- named functions ----

type call struct {
	name string
	arg  Node
}

// Call builds a named unary function application. sqrt lowers to
// pow(arg, 1/2); log is an alias of ln. Constant arguments fold when
// the result is finite.
func Call(name string, arg Node) Node {
	switch name {
	case "sqrt":
		return Pow(arg, num(0.5))
	case "log":
		name = "ln"
	}
	if a, ok := arg.(num); ok {
		if v, err := evalFunc(name, float64(a)); err == nil {
			return num(v)
		}
	}
	return call{name: name, arg: arg}
}

// IsFunc reports whether name is a supported unary function.
func IsFunc(name string) bool {
	switch name {
	case "sin", "cos", "tan", "asin", "acos", "atan",
		"sinh", "cosh", "tanh", "exp", "ln", "log", "sqrt",
		"abs", "floor", "ceil":
		return true
	}
	return false
}

func evalFunc(name string, v float64) (float64, error) {
	var r float64
	switch name {
	case "sin":
		r = math.Sin(v)
	case "cos":
		r = math.Cos(v)
	case "tan":
		r = math.Tan(v)
	case "asin":
		if v < -1 || v > 1 {
			return 0, fmt.Errorf("%w: asin of %g", domain.ErrDomain, v)
		}
		r = math.Asin(v)
	case "acos":
		if v < -1 || v > 1 {
			return 0, fmt.Errorf("%w: acos of %g", domain.ErrDomain, v)
		}
		r = math.Acos(v)
	case "atan":
		r = math.Atan(v)
	case "sinh":
		r = math.Sinh(v)
	case "cosh":
		r = math.Cosh(v)
	case "tanh":
		r = math.Tanh(v)
	case "exp":
		r = math.Exp(v)
	case "ln":
		if v <= 0 {
			return 0, fmt.Errorf("%w: log of non-positive value %g", domain.ErrDomain, v)
		}
		r = math.Log(v)
	case "abs":
		r = math.Abs(v)
	case "floor":
		r = math.Floor(v)
	case "ceil":
		r = math.Ceil(v)
	default:
		return 0, fmt.Errorf("%w: unknown function %q", domain.ErrParse, name)
	}
	return finite(r, name)
}

func (c call) Eval(x float64) (float64, error) {
	v, err := c.arg.Eval(x)
	if err != nil {
		return 0, err
	}
	return evalFunc(c.name, v)
}

func (c call) Derivative() (Node, error) {
	du, err := c.arg.Derivative()
	if err != nil {
		return nil, err
	}
	var outer Node
	switch c.name {
	case "sin":
		outer = Call("cos", c.arg)
	case "cos":
		outer = Mul(num(-1), Call("sin", c.arg))
	case "tan":
		outer = Add(num(1), Pow(Call("tan", c.arg), num(2)))
	case "exp":
		outer = Call("exp", c.arg)
	case "ln":
		outer = Pow(c.arg, num(-1))
	case "asin":
		outer = Pow(Sub(num(1), Pow(c.arg, num(2))), num(-0.5))
	case "acos":
		outer = Mul(num(-1), Pow(Sub(num(1), Pow(c.arg, num(2))), num(-0.5)))
	case "atan":
		outer = Pow(Add(num(1), Pow(c.arg, num(2))), num(-1))
	case "sinh":
		outer = Call("cosh", c.arg)
	case "cosh":
		outer = Call("sinh", c.arg)
	case "tanh":
		outer = Sub(num(1), Pow(Call("tanh", c.arg), num(2)))
	default:
		return nil, fmt.Errorf("%w: d/dx %s", ErrNonDifferentiable, c.name)
	}
	return Mul(outer, du), nil
}

func (c call) String() string { return c.name + "(" + c.arg.String() + ")" }
