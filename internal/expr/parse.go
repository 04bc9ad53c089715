package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/zofmath/zof/pkg/domain"
)

// Parse turns infix math text into a symbolic tree. Supported syntax:
// numbers, the variable x, the constants pi and e, the operators
// + - * / and exponentiation (** or ^, right associative), parentheses,
// and the unary functions listed by IsFunc. Any other identifier is
// rejected so that the sole free variable is always x.
func Parse(src string) (Node, error) {
	toks, err := scan(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %q", domain.ErrParse, p.peek().text)
	}
	return n, nil
}

type tokKind int

const (
	tokEOF tokKind = iota
	tokNum
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
)

type token struct {
	kind tokKind
	text string
	val  float64
}

func scan(src string) ([]token, error) {
	var toks []token
	rs := []rune(src)
	i := 0
	for i < len(rs) {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r >= '0' && r <= '9' || r == '.':
			j := i
			for j < len(rs) && (rs[j] >= '0' && rs[j] <= '9' || rs[j] == '.') {
				j++
			}
			// Exponent suffix, e.g. 1.5e-3.
			if j < len(rs) && (rs[j] == 'e' || rs[j] == 'E') {
				k := j + 1
				if k < len(rs) && (rs[k] == '+' || rs[k] == '-') {
					k++
				}
				if k < len(rs) && rs[k] >= '0' && rs[k] <= '9' {
					for k < len(rs) && rs[k] >= '0' && rs[k] <= '9' {
						k++
					}
					j = k
				}
			}
			text := string(rs[i:j])
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q", domain.ErrParse, text)
			}
			toks = append(toks, token{kind: tokNum, text: text, val: v})
			i = j
		case unicode.IsLetter(r) || r == '_':
			j := i
			for j < len(rs) && (unicode.IsLetter(rs[j]) || unicode.IsDigit(rs[j]) || rs[j] == '_') {
				j++
			}
			toks = append(toks, token{kind: tokIdent, text: string(rs[i:j])})
			i = j
		case r == '*':
			if i+1 < len(rs) && rs[i+1] == '*' {
				toks = append(toks, token{kind: tokCaret, text: "**"})
				i += 2
			} else {
				toks = append(toks, token{kind: tokStar, text: "*"})
				i++
			}
		case r == '^':
			toks = append(toks, token{kind: tokCaret, text: "^"})
			i++
		case r == '+':
			toks = append(toks, token{kind: tokPlus, text: "+"})
			i++
		case r == '-':
			toks = append(toks, token{kind: tokMinus, text: "-"})
			i++
		case r == '/':
			toks = append(toks, token{kind: tokSlash, text: "/"})
			i++
		case r == '(':
			toks = append(toks, token{kind: tokLParen, text: "("})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen, text: ")"})
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", domain.ErrParse, string(r))
		}
	}
	toks = append(toks, token{kind: tokEOF, text: "end of input"})
	return toks, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokKind, what string) error {
	if p.peek().kind != kind {
		return fmt.Errorf("%w: expected %s, got %q", domain.ErrParse, what, p.peek().text)
	}
	p.next()
	return nil
}

// expr := term (('+' | '-') term)*
func (p *parser) parseExpr() (Node, error) {
	n, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			rhs, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			n = Add(n, rhs)
		case tokMinus:
			p.next()
			rhs, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			n = Sub(n, rhs)
		default:
			return n, nil
		}
	}
}

// term := unary (('*' | '/') unary)*
func (p *parser) parseTerm() (Node, error) {
	n, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			rhs, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			n = Mul(n, rhs)
		case tokSlash:
			p.next()
			rhs, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			n = Div(n, rhs)
		default:
			return n, nil
		}
	}
}

// unary := ('-' | '+') unary | power
// Unary minus binds looser than exponentiation so -x**2 == -(x**2).
func (p *parser) parseUnary() (Node, error) {
	switch p.peek().kind {
	case tokMinus:
		p.next()
		n, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Mul(Num(-1), n), nil
	case tokPlus:
		p.next()
		return p.parseUnary()
	}
	return p.parsePower()
}

// power := primary (('**' | '^') unary)?   (right associative)
func (p *parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokCaret {
		p.next()
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Pow(base, exp), nil
	}
	return base, nil
}

// primary := number | '(' expr ')' | ident | func '(' expr ')'
func (p *parser) parsePrimary() (Node, error) {
	switch t := p.peek(); t.kind {
	case tokNum:
		p.next()
		return Num(t.val), nil
	case tokLParen:
		p.next()
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen, `")"`); err != nil {
			return nil, err
		}
		return n, nil
	case tokIdent:
		p.next()
		return p.parseIdent(t.text)
	default:
		return nil, fmt.Errorf("%w: expected a value, got %q", domain.ErrParse, t.text)
	}
}

// parseIdent resolves an identifier case-insensitively: X, PI, Sin(x)
// all work.
func (p *parser) parseIdent(name string) (Node, error) {
	name = strings.ToLower(name)
	switch name {
	case "x":
		return X(), nil
	case "pi":
		return Num(math.Pi), nil
	case "e":
		return Num(math.E), nil
	}
	if IsFunc(name) {
		if err := p.expect(tokLParen, `"(" after function name`); err != nil {
			return nil, err
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen, `")"`); err != nil {
			return nil, err
		}
		return Call(name, arg), nil
	}
	return nil, fmt.Errorf("%w: unknown identifier %q (the only variable is x)", domain.ErrParse, name)
}
