package input

import (
	"fmt"
	"math/big"

	"gaussmap/expr"
)

// parser is a recursive-descent parser over the validated token
// stream. Grammar, loosest binding first:
//
//	expression := term (("+" | "-") term)*
//	term       := unary (("*" | "/") unary)*
//	unary      := "-" unary | power
//	power      := atom ("^" unary)?
//	atom       := NUMBER | "pi" | "u" | "v" | NAME "(" expression ")"
//	            | "(" expression ")"
//
// "^" is right-associative and binds tighter than unary minus on its
// left but looser on its right, so -u^2 is -(u^2) and u^-v is u^(-v).
type parser struct {
	toks      []token
	pos       int
	label     string
	allowVars bool
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) errf(format string, args ...any) error {
	return fmt.Errorf("%w: %s in %s", ErrSyntax, fmt.Sprintf(format, args...), p.label)
}

func (p *parser) parse() (expr.Expr, error) {
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.errf("unexpected %q at position %d", t.text, t.pos)
	}
	return e, nil
}

func (p *parser) expression() (expr.Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			right, err := p.term()
			if err != nil {
				return nil, err
			}
			left = expr.AddOf(left, right)
		case tokMinus:
			p.next()
			right, err := p.term()
			if err != nil {
				return nil, err
			}
			left = expr.AddOf(left, expr.MulOf(expr.N(-1), right))
		default:
			return left, nil
		}
	}
}

func (p *parser) term() (expr.Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			right, err := p.unary()
			if err != nil {
				return nil, err
			}
			left = expr.MulOf(left, right)
		case tokSlash:
			p.next()
			right, err := p.unary()
			if err != nil {
				return nil, err
			}
			left = expr.MulOf(left, expr.PowOf(right, expr.N(-1)))
		default:
			return left, nil
		}
	}
}

func (p *parser) unary() (expr.Expr, error) {
	if p.peek().kind == tokMinus {
		p.next()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return expr.MulOf(expr.N(-1), operand), nil
	}
	return p.power()
}

func (p *parser) power() (expr.Expr, error) {
	base, err := p.atom()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokCaret {
		return base, nil
	}
	p.next()
	exponent, err := p.unary()
	if err != nil {
		return nil, err
	}
	return expr.PowOf(base, exponent), nil
}

func (p *parser) atom() (expr.Expr, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		r, ok := new(big.Rat).SetString(t.text)
		if !ok {
			return nil, p.errf("bad number %q", t.text)
		}
		return expr.NRat(r), nil
	case tokIdent:
		switch t.text {
		case "pi":
			return expr.Pi, nil
		case "u", "v":
			if !p.allowVars {
				return nil, p.errf("variable %q not allowed", t.text)
			}
			return expr.S(t.text), nil
		}
		if open := p.next(); open.kind != tokLParen {
			return nil, p.errf("expected ( after %q", t.text)
		}
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, p.errf("missing ) after %s(...", t.text)
		}
		return expr.FuncOf(t.text, arg), nil
	case tokLParen:
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, p.errf("missing )")
		}
		return inner, nil
	case tokEOF:
		return nil, p.errf("unexpected end of expression")
	default:
		return nil, p.errf("unexpected %q at position %d", t.text, t.pos)
	}
}
