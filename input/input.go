// Package input validates and parses user-supplied parameterization
// text into symbolic expressions. Validation is allow-list based:
// anything outside a small character and identifier vocabulary is
// rejected before parsing, so the package is safe to point at
// untrusted strings.
package input

import (
	"errors"
	"fmt"
	"math"

	"gaussmap/expr"
)

var (
	// ErrCharacter reports a character outside the allowed set.
	ErrCharacter = errors.New("input: unallowed character")
	// ErrName reports an identifier outside the allowed vocabulary.
	ErrName = errors.New("input: unallowed name")
	// ErrSyntax reports text that passed validation but does not parse.
	ErrSyntax = errors.New("input: syntax error")
	// ErrBound reports a range bound that does not evaluate to a finite
	// real number.
	ErrBound = errors.New("input: bound is not a finite real number")
)

// maxBound clamps range bounds. Parameter ranges beyond ±100 render as
// noise anyway, so oversized bounds are truncated rather than rejected.
const maxBound = 100.0

// functionNames is the identifier vocabulary for surface components.
var functionNames = map[string]bool{
	"sin": true, "cos": true, "tan": true,
	"csc": true, "sec": true, "cot": true,
	"sinh": true, "cosh": true, "tanh": true,
	"csch": true, "sech": true, "coth": true,
	"exp": true, "log": true,
}

// ParseFunction validates and parses one surface component, e.g.
// "2*cosh(0.5*v)*cos(u)". Allowed identifiers are the trigonometric,
// hyperbolic, exp and log functions, the variables u and v, and pi.
// name labels the component in errors ("x", "y", "z").
func ParseFunction(text, name string) (expr.Expr, error) {
	if err := checkCharacters(text, name, functionChars); err != nil {
		return nil, err
	}
	toks, err := lex(text, name)
	if err != nil {
		return nil, err
	}
	for _, t := range toks {
		if t.kind != tokIdent {
			continue
		}
		if t.text != "u" && t.text != "v" && t.text != "pi" && !functionNames[t.text] {
			return nil, fmt.Errorf("%w: %q in %s", ErrName, t.text, name)
		}
	}
	p := &parser{toks: toks, label: name, allowVars: true}
	return p.parse()
}

// ParseBound validates, parses, and evaluates one range bound, e.g.
// "-2*pi" or "exp(1)". Only numbers, arithmetic operators, pi, and
// exp() are allowed. The result is clamped to ±100.
func ParseBound(text, name string) (float64, error) {
	if err := checkCharacters(text, name, boundChars); err != nil {
		return 0, err
	}
	toks, err := lex(text, name)
	if err != nil {
		return 0, err
	}
	for _, t := range toks {
		if t.kind == tokIdent && t.text != "pi" && t.text != "exp" {
			return 0, fmt.Errorf("%w: %q in %s, only pi and exp() are allowed", ErrName, t.text, name)
		}
	}
	p := &parser{toks: toks, label: name, allowVars: false}
	e, err := p.parse()
	if err != nil {
		return 0, err
	}
	value, ok := e.Eval()
	if !ok || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %s = %s", ErrBound, name, e)
	}
	return math.Min(math.Max(value, -maxBound), maxBound), nil
}

// ParseSurface parses the three components of a surface expression.
func ParseSurface(x, y, z string) (expr.Vector, error) {
	xe, err := ParseFunction(x, "x")
	if err != nil {
		return expr.Vector{}, err
	}
	ye, err := ParseFunction(y, "y")
	if err != nil {
		return expr.Vector{}, err
	}
	ze, err := ParseFunction(z, "z")
	if err != nil {
		return expr.Vector{}, err
	}
	return expr.NewVector(xe, ye, ze), nil
}
