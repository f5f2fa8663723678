// Package expr provides a deterministic symbolic expression kernel for
// parametric surfaces in the two variables u and v.
//
// Design goals:
//   - Exact rational arithmetic (math/big.Rat)
//   - Deterministic simplification and stable output
//   - Closed-form differentiation for the allowed function set
//     (trigonometric, hyperbolic, exp, log) and the constant pi
package expr

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"strings"
)

// ============================================================
// Core Interface
// ============================================================

type Expr interface {
	Simplify() Expr
	String() string
	LaTeX() string
	Sub(varName string, value Expr) Expr
	Diff(varName string) Expr
	Eval() (float64, bool)
	Equal(other Expr) bool
}

// ============================================================
// Num — exact rational number
// ============================================================

type Num struct{ val *big.Rat }

func N(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }
func F(p, q int64) *Num {
	if q == 0 {
		panic("expr: denominator is zero")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}
func NFloat(f float64) *Num   { return &Num{val: new(big.Rat).SetFloat64(f)} }
func NRat(r *big.Rat) *Num    { return &Num{val: new(big.Rat).Set(r)} }
func (n *Num) Simplify() Expr { return n }
func (n *Num) Sub(string, Expr) Expr {
	return n
}
func (n *Num) Diff(string) Expr      { return N(0) }
func (n *Num) Eval() (float64, bool) { f, _ := n.val.Float64(); return f, true }
func (n *Num) Equal(other Expr) bool { o, ok := other.(*Num); return ok && n.val.Cmp(o.val) == 0 }
func (n *Num) Float64() float64      { f, _ := n.val.Float64(); return f }
func (n *Num) IsZero() bool          { return n.val.Sign() == 0 }
func (n *Num) IsOne() bool           { return n.val.Cmp(ratOne) == 0 }
func (n *Num) IsNegOne() bool        { return n.val.Cmp(ratNegOne) == 0 }
func (n *Num) IsInteger() bool       { return n.val.IsInt() }
func (n *Num) IsNegative() bool      { return n.val.Sign() < 0 }

var (
	ratOne    = new(big.Rat).SetInt64(1)
	ratNegOne = new(big.Rat).SetInt64(-1)
)

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

func (n *Num) LaTeX() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(n.val)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return fmt.Sprintf("%s\\frac{%s}{%s}", sign, v.Num().String(), v.Denom().String())
}

func numAdd(a, b *Num) *Num { return &Num{val: new(big.Rat).Add(a.val, b.val)} }
func numMul(a, b *Num) *Num { return &Num{val: new(big.Rat).Mul(a.val, b.val)} }
func numRecip(a *Num) *Num {
	if a.IsZero() {
		panic("expr: division by zero")
	}
	return &Num{val: new(big.Rat).Inv(a.val)}
}

// ============================================================
// Const — named irrational constant
// ============================================================

type Const struct {
	name string
	val  float64
}

// Pi is the only named constant the input contract allows.
var Pi = &Const{name: "pi", val: math.Pi}

func (c *Const) Simplify() Expr        { return c }
func (c *Const) String() string        { return c.name }
func (c *Const) Sub(string, Expr) Expr { return c }
func (c *Const) Diff(string) Expr      { return N(0) }
func (c *Const) Eval() (float64, bool) { return c.val, true }
func (c *Const) Equal(other Expr) bool {
	o, ok := other.(*Const)
	return ok && c.name == o.name
}
func (c *Const) Name() string     { return c.name }
func (c *Const) Value() float64   { return c.val }
func (c *Const) LaTeX() string {
	if c.name == "pi" {
		return "\\pi"
	}
	return c.name
}

// ============================================================
// Sym — symbolic variable
// ============================================================

type Sym struct{ name string }

func S(name string) *Sym      { return &Sym{name: name} }
func (s *Sym) Simplify() Expr { return s }
func (s *Sym) String() string { return s.name }
func (s *Sym) LaTeX() string  { return s.name }
func (s *Sym) Eval() (float64, bool) {
	return 0, false
}
func (s *Sym) Equal(other Expr) bool { o, ok := other.(*Sym); return ok && s.name == o.name }
func (s *Sym) Name() string          { return s.name }
func (s *Sym) Sub(varName string, value Expr) Expr {
	if s.name == varName {
		return value
	}
	return s
}
func (s *Sym) Diff(varName string) Expr {
	if s.name == varName {
		return N(1)
	}
	return N(0)
}

// ============================================================
// Add — sum of terms
// ============================================================

type Add struct{ terms []Expr }

func AddOf(terms ...Expr) Expr { return (&Add{terms: terms}).Simplify() }

func (a *Add) Simplify() Expr {
	flat := make([]Expr, 0, len(a.terms))
	for _, t := range a.terms {
		s := t.Simplify()
		if inner, ok := s.(*Add); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, s)
		}
	}
	numAccum := N(0)
	symCoeffs := map[string]*Num{}
	symOrder := []string{}
	others := []Expr{}
	for _, t := range flat {
		switch v := t.(type) {
		case *Num:
			numAccum = numAdd(numAccum, v)
		case *Sym:
			if _, seen := symCoeffs[v.name]; !seen {
				symOrder = append(symOrder, v.name)
				symCoeffs[v.name] = N(0)
			}
			symCoeffs[v.name] = numAdd(symCoeffs[v.name], N(1))
		default:
			others = append(others, t)
		}
	}
	result := []Expr{}
	sort.Strings(symOrder)
	for _, name := range symOrder {
		coeff := symCoeffs[name]
		if coeff.IsZero() {
			continue
		}
		if coeff.IsOne() {
			result = append(result, S(name))
		} else {
			result = append(result, MulOf(coeff, S(name)))
		}
	}
	result = append(result, others...)
	if !numAccum.IsZero() {
		result = append(result, numAccum)
	}
	if len(result) == 0 {
		return N(0)
	}
	if len(result) == 1 {
		return result[0]
	}
	return &Add{terms: result}
}

func (a *Add) String() string {
	if len(a.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

func (a *Add) LaTeX() string {
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.LaTeX()
	}
	return strings.Join(parts, " + ")
}

func (a *Add) Sub(varName string, value Expr) Expr {
	newTerms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		newTerms[i] = t.Sub(varName, value)
	}
	return AddOf(newTerms...)
}

func (a *Add) Diff(varName string) Expr {
	dTerms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		dTerms[i] = t.Diff(varName)
	}
	return AddOf(dTerms...)
}

func (a *Add) Eval() (float64, bool) {
	acc := 0.0
	for _, t := range a.terms {
		v, ok := t.Eval()
		if !ok {
			return 0, false
		}
		acc += v
	}
	return acc, true
}

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	if !ok || len(a.terms) != len(o.terms) {
		return false
	}
	for i := range a.terms {
		if !a.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

func (a *Add) Terms() []Expr { return a.terms }

// ============================================================
// Mul — product of factors
// ============================================================

type Mul struct{ factors []Expr }

func MulOf(factors ...Expr) Expr { return (&Mul{factors: factors}).Simplify() }

func (m *Mul) Simplify() Expr {
	flat := make([]Expr, 0, len(m.factors))
	for _, f := range m.factors {
		s := f.Simplify()
		if inner, ok := s.(*Mul); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, s)
		}
	}
	coeff := N(1)
	others := []Expr{}
	for _, f := range flat {
		if v, ok := f.(*Num); ok {
			coeff = numMul(coeff, v)
		} else {
			others = append(others, f)
		}
	}
	if coeff.IsZero() {
		return N(0)
	}
	if len(others) == 0 {
		return coeff
	}

	// Precompute sort keys to avoid repeated String() calls in comparator.
	type keyed struct {
		e   Expr
		key string
	}
	ks := make([]keyed, len(others))
	for i, e := range others {
		ks[i] = keyed{e: e, key: e.String()}
	}
	sort.Slice(ks, func(i, j int) bool { return ks[i].key < ks[j].key })
	sortedOthers := make([]Expr, len(ks))
	for i := range ks {
		sortedOthers[i] = ks[i].e
	}
	others = sortedOthers

	if coeff.IsOne() {
		if len(others) == 1 {
			return others[0]
		}
		return &Mul{factors: others}
	}
	return &Mul{factors: append([]Expr{coeff}, others...)}
}

func (m *Mul) String() string {
	if len(m.factors) == 0 {
		return "1"
	}
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if _, isAdd := f.(*Add); isAdd {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	return strings.Join(parts, "*")
}

func (m *Mul) LaTeX() string {
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if _, isAdd := f.(*Add); isAdd {
			parts[i] = "\\left(" + f.LaTeX() + "\\right)"
		} else {
			parts[i] = f.LaTeX()
		}
	}
	return strings.Join(parts, " ")
}

func (m *Mul) Sub(varName string, value Expr) Expr {
	newFactors := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		newFactors[i] = f.Sub(varName, value)
	}
	return MulOf(newFactors...)
}

// Diff applies the product rule across all factors.
func (m *Mul) Diff(varName string) Expr {
	terms := make([]Expr, len(m.factors))
	for i, fi := range m.factors {
		dfi := fi.Diff(varName)
		rest := make([]Expr, 0, len(m.factors)-1)
		for j, fj := range m.factors {
			if j != i {
				rest = append(rest, fj)
			}
		}
		if len(rest) == 0 {
			terms[i] = dfi
		} else {
			terms[i] = MulOf(append([]Expr{dfi}, rest...)...)
		}
	}
	return AddOf(terms...)
}

func (m *Mul) Eval() (float64, bool) {
	acc := 1.0
	for _, f := range m.factors {
		v, ok := f.Eval()
		if !ok {
			return 0, false
		}
		acc *= v
	}
	return acc, true
}

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	if !ok || len(m.factors) != len(o.factors) {
		return false
	}
	for i := range m.factors {
		if !m.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

func (m *Mul) Factors() []Expr { return m.factors }

// ============================================================
// Pow — base^exponent
// ============================================================

type Pow struct{ base, exp Expr }

func PowOf(base, exp Expr) Expr { return (&Pow{base: base, exp: exp}).Simplify() }

// SqrtOf is sugar for the rational exponent 1/2.
func SqrtOf(arg Expr) Expr { return PowOf(arg, F(1, 2)) }

func (p *Pow) Simplify() Expr {
	base := p.base.Simplify()
	exp := p.exp.Simplify()

	if en, ok := exp.(*Num); ok && en.IsZero() {
		return N(1)
	}
	if en, ok := exp.(*Num); ok && en.IsOne() {
		return base
	}

	// Handle 0^exp carefully: 0^0 and 0^negative stay unevaluated.
	if bn, ok := base.(*Num); ok && bn.IsZero() {
		if en, ok2 := exp.(*Num); ok2 {
			if en.IsZero() || en.IsNegative() {
				return &Pow{base: base, exp: exp}
			}
		}
		return N(0)
	}

	if bn, ok := base.(*Num); ok && bn.IsOne() {
		return N(1)
	}
	if bn, ok := base.(*Num); ok {
		if en, ok2 := exp.(*Num); ok2 && en.IsInteger() {
			e := en.val.Num().Int64()
			if e >= 0 && e <= 20 {
				result := N(1)
				for i := int64(0); i < e; i++ {
					result = numMul(result, bn)
				}
				return result
			}
			if e < 0 && e >= -20 {
				result := N(1)
				for i := int64(0); i < -e; i++ {
					result = numMul(result, bn)
				}
				return numRecip(result)
			}
		}
	}
	if inner, ok := base.(*Pow); ok {
		return PowOf(inner.base, MulOf(inner.exp, exp).Simplify())
	}
	return &Pow{base: base, exp: exp}
}

func (p *Pow) String() string {
	baseStr := p.base.String()
	_, baseIsAdd := p.base.(*Add)
	_, baseIsMul := p.base.(*Mul)
	if baseIsAdd || baseIsMul {
		baseStr = "(" + baseStr + ")"
	}
	expStr := p.exp.String()
	if _, isNum := p.exp.(*Num); !isNum {
		expStr = "(" + expStr + ")"
	} else if strings.Contains(expStr, "/") || strings.HasPrefix(expStr, "-") {
		expStr = "(" + expStr + ")"
	}
	return baseStr + "^" + expStr
}

func (p *Pow) LaTeX() string {
	baseStr := p.base.LaTeX()
	_, baseIsAdd := p.base.(*Add)
	_, baseIsMul := p.base.(*Mul)
	if baseIsAdd || baseIsMul {
		baseStr = "\\left(" + baseStr + "\\right)"
	}
	return baseStr + "^{" + p.exp.LaTeX() + "}"
}

func (p *Pow) Sub(varName string, value Expr) Expr {
	return PowOf(p.base.Sub(varName, value), p.exp.Sub(varName, value))
}

func (p *Pow) Diff(varName string) Expr {
	du := p.base.Diff(varName)
	dv := p.exp.Diff(varName)
	if _, expIsNum := p.exp.(*Num); expIsNum {
		// Power rule: d(b^n) = n*b^(n-1)*db
		return MulOf(p.exp, PowOf(p.base, AddOf(p.exp, N(-1))), du)
	}
	if _, baseIsNum := p.base.(*Num); baseIsNum {
		return MulOf(PowOf(p.base, p.exp), LogOf(p.base), dv)
	}
	logTerm := MulOf(dv, LogOf(p.base))
	divTerm := MulOf(p.exp, du, PowOf(p.base, N(-1)))
	return MulOf(PowOf(p.base, p.exp), AddOf(logTerm, divTerm))
}

func (p *Pow) Eval() (float64, bool) {
	b, ok1 := p.base.Eval()
	e, ok2 := p.exp.Eval()
	if !ok1 || !ok2 {
		return 0, false
	}
	pf := math.Pow(b, e)
	if math.IsNaN(pf) || math.IsInf(pf, 0) {
		return 0, false
	}
	return pf, true
}

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}

func (p *Pow) Base() Expr     { return p.base }
func (p *Pow) Exponent() Expr { return p.exp }

// ============================================================
// Func — named function applications
// ============================================================

type Func struct {
	name string
	arg  Expr
}

func funcOf(name string, arg Expr) *Func { return &Func{name: name, arg: arg} }

// Constructors cover exactly the input contract's allow-list:
// trigonometric, reciprocal trigonometric, hyperbolic, reciprocal
// hyperbolic, exp, and natural log.
func SinOf(arg Expr) Expr  { return funcOf("sin", arg).Simplify() }
func CosOf(arg Expr) Expr  { return funcOf("cos", arg).Simplify() }
func TanOf(arg Expr) Expr  { return funcOf("tan", arg).Simplify() }
func CscOf(arg Expr) Expr  { return funcOf("csc", arg).Simplify() }
func SecOf(arg Expr) Expr  { return funcOf("sec", arg).Simplify() }
func CotOf(arg Expr) Expr  { return funcOf("cot", arg).Simplify() }
func SinhOf(arg Expr) Expr { return funcOf("sinh", arg).Simplify() }
func CoshOf(arg Expr) Expr { return funcOf("cosh", arg).Simplify() }
func TanhOf(arg Expr) Expr { return funcOf("tanh", arg).Simplify() }
func CschOf(arg Expr) Expr { return funcOf("csch", arg).Simplify() }
func SechOf(arg Expr) Expr { return funcOf("sech", arg).Simplify() }
func CothOf(arg Expr) Expr { return funcOf("coth", arg).Simplify() }
func ExpOf(arg Expr) Expr  { return funcOf("exp", arg).Simplify() }
func LogOf(arg Expr) Expr  { return funcOf("log", arg).Simplify() }

// FuncOf builds a named application without the allow-list check; unknown
// names survive symbolically and fail later at numeric compilation.
func FuncOf(name string, arg Expr) Expr { return funcOf(name, arg).Simplify() }

func evalFunc(name string, v float64) (float64, bool) {
	var r float64
	switch name {
	case "sin":
		r = math.Sin(v)
	case "cos":
		r = math.Cos(v)
	case "tan":
		r = math.Tan(v)
	case "csc":
		r = 1 / math.Sin(v)
	case "sec":
		r = 1 / math.Cos(v)
	case "cot":
		r = math.Cos(v) / math.Sin(v)
	case "sinh":
		r = math.Sinh(v)
	case "cosh":
		r = math.Cosh(v)
	case "tanh":
		r = math.Tanh(v)
	case "csch":
		r = 1 / math.Sinh(v)
	case "sech":
		r = 1 / math.Cosh(v)
	case "coth":
		r = math.Cosh(v) / math.Sinh(v)
	case "exp":
		r = math.Exp(v)
	case "log":
		r = math.Log(v)
	default:
		return 0, false
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}

func (f *Func) Simplify() Expr {
	arg := f.arg.Simplify()
	if n, ok := arg.(*Num); ok {
		if r, ok2 := evalFunc(f.name, n.Float64()); ok2 {
			return NFloat(r)
		}
	}
	switch f.name {
	case "sin", "tan", "sinh", "tanh":
		if isNumEqual(arg, 0) {
			return N(0)
		}
	case "cos", "cosh", "sec", "sech":
		if isNumEqual(arg, 0) {
			return N(1)
		}
	case "log":
		if n, ok := arg.(*Num); ok && n.IsOne() {
			return N(0)
		}
		if inner, ok := arg.(*Func); ok && inner.name == "exp" {
			return inner.arg
		}
	case "exp":
		if isNumEqual(arg, 0) {
			return N(1)
		}
		if inner, ok := arg.(*Func); ok && inner.name == "log" {
			return inner.arg
		}
	}
	return &Func{name: f.name, arg: arg}
}

func (f *Func) String() string { return f.name + "(" + f.arg.String() + ")" }

func (f *Func) LaTeX() string {
	switch f.name {
	case "sin", "cos", "tan", "csc", "sec", "cot", "sinh", "cosh", "tanh", "coth", "exp", "log":
		return "\\" + f.name + "\\left(" + f.arg.LaTeX() + "\\right)"
	}
	return "\\operatorname{" + f.name + "}\\left(" + f.arg.LaTeX() + "\\right)"
}

func (f *Func) Sub(varName string, value Expr) Expr {
	return funcOf(f.name, f.arg.Sub(varName, value)).Simplify()
}

func (f *Func) Diff(varName string) Expr {
	du := f.arg.Diff(varName)
	var outer Expr
	switch f.name {
	case "sin":
		outer = CosOf(f.arg)
	case "cos":
		outer = MulOf(N(-1), SinOf(f.arg))
	case "tan":
		outer = AddOf(N(1), PowOf(TanOf(f.arg), N(2)))
	case "csc":
		outer = MulOf(N(-1), CscOf(f.arg), CotOf(f.arg))
	case "sec":
		outer = MulOf(SecOf(f.arg), TanOf(f.arg))
	case "cot":
		outer = MulOf(N(-1), AddOf(N(1), PowOf(CotOf(f.arg), N(2))))
	case "sinh":
		outer = CoshOf(f.arg)
	case "cosh":
		outer = SinhOf(f.arg)
	case "tanh":
		outer = AddOf(N(1), MulOf(N(-1), PowOf(TanhOf(f.arg), N(2))))
	case "csch":
		outer = MulOf(N(-1), CschOf(f.arg), CothOf(f.arg))
	case "sech":
		outer = MulOf(N(-1), SechOf(f.arg), TanhOf(f.arg))
	case "coth":
		outer = AddOf(N(1), MulOf(N(-1), PowOf(CothOf(f.arg), N(2))))
	case "exp":
		outer = ExpOf(f.arg)
	case "log":
		outer = PowOf(f.arg, N(-1))
	default:
		// No closed form known; leave a derivative marker for callers to detect.
		return MulOf(funcOf(derivativeMarker+f.name+"]", f.arg), du)
	}
	return MulOf(outer, du).Simplify()
}

func (f *Func) Eval() (float64, bool) {
	v, ok := f.arg.Eval()
	if !ok {
		return 0, false
	}
	return evalFunc(f.name, v)
}

func (f *Func) Equal(other Expr) bool {
	o, ok := other.(*Func)
	return ok && f.name == o.name && f.arg.Equal(o.arg)
}

func (f *Func) FuncName() string { return f.name }
func (f *Func) Arg() Expr        { return f.arg }

func isNumEqual(e Expr, v int64) bool {
	n, ok := e.(*Num)
	return ok && n.Equal(N(v))
}

const derivativeMarker = "D["

// HasDerivativeMarker reports whether differentiation left an unresolved
// derivative of an unknown function anywhere in the expression.
func HasDerivativeMarker(e Expr) bool {
	switch v := e.(type) {
	case *Add:
		for _, t := range v.terms {
			if HasDerivativeMarker(t) {
				return true
			}
		}
	case *Mul:
		for _, f := range v.factors {
			if HasDerivativeMarker(f) {
				return true
			}
		}
	case *Pow:
		return HasDerivativeMarker(v.base) || HasDerivativeMarker(v.exp)
	case *Func:
		if strings.HasPrefix(v.name, derivativeMarker) {
			return true
		}
		return HasDerivativeMarker(v.arg)
	}
	return false
}

// ============================================================
// Deep Simplification and Trig Identities
// ============================================================

// TrigSimplify applies trig identities: sin²+cos²=1, exp(log(x))=x, log(exp(x))=x.
func TrigSimplify(e Expr) Expr {
	return trigSimplifyExpr(e.Simplify()).Simplify()
}

func trigSimplifyExpr(e Expr) Expr {
	switch v := e.(type) {
	case *Add:
		newTerms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			newTerms[i] = trigSimplifyExpr(t)
		}
		return trigFindPythagorean(AddOf(newTerms...))
	case *Mul:
		newFactors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			newFactors[i] = trigSimplifyExpr(f)
		}
		return MulOf(newFactors...)
	case *Pow:
		return PowOf(trigSimplifyExpr(v.base), v.exp)
	case *Func:
		return funcOf(v.name, trigSimplifyExpr(v.arg)).Simplify()
	}
	return e
}

func trigFindPythagorean(e Expr) Expr {
	add, ok := e.(*Add)
	if !ok {
		return e
	}
	type trigTerm struct {
		funcName string
		argStr   string
		restStr  string
		rest     Expr
		idx      int
	}
	var trigTerms []trigTerm
	for idx, t := range add.terms {
		for _, split := range splitTrigSquare(t) {
			trigTerms = append(trigTerms, trigTerm{
				funcName: split.funcName,
				argStr:   split.argStr,
				restStr:  split.rest.String(),
				rest:     split.rest,
				idx:      idx,
			})
		}
	}
	for i := 0; i < len(trigTerms); i++ {
		for j := i + 1; j < len(trigTerms); j++ {
			ti, tj := trigTerms[i], trigTerms[j]
			if ti.idx == tj.idx {
				continue
			}
			if ti.argStr == tj.argStr && ti.funcName != tj.funcName && ti.restStr == tj.restStr {
				newTerms := []Expr{}
				for idx, t := range add.terms {
					if idx != ti.idx && idx != tj.idx {
						newTerms = append(newTerms, t)
					}
				}
				newTerms = append(newTerms, ti.rest)
				return AddOf(newTerms...).Simplify()
			}
		}
	}
	return e
}

type trigSplit struct {
	funcName string
	argStr   string
	rest     Expr
}

// splitTrigSquare finds every way to write t as rest·sin²(x) or
// rest·cos²(x). A bare sin²(x) splits with rest 1.
func splitTrigSquare(t Expr) []trigSplit {
	factors := []Expr{t}
	if m, ok := t.(*Mul); ok {
		factors = m.factors
	}
	var splits []trigSplit
	for i, f := range factors {
		name, argStr, ok := trigSquare(f)
		if !ok {
			continue
		}
		rest := make([]Expr, 0, len(factors)-1)
		rest = append(rest, factors[:i]...)
		rest = append(rest, factors[i+1:]...)
		splits = append(splits, trigSplit{name, argStr, MulOf(rest...)})
	}
	return splits
}

func trigSquare(f Expr) (funcName, argStr string, ok bool) {
	p, isPow := f.(*Pow)
	if !isPow {
		return "", "", false
	}
	fn, isFunc := p.base.(*Func)
	if !isFunc || (fn.name != "sin" && fn.name != "cos") {
		return "", "", false
	}
	if en, isNum := p.exp.(*Num); isNum && en.IsInteger() && en.val.Num().Int64() == 2 {
		return fn.name, fn.arg.String(), true
	}
	return "", "", false
}

// DeepSimplify applies repeated simplification+trig passes until stable.
func DeepSimplify(e Expr) Expr {
	prev := ""
	curr := e.Simplify()
	for i := 0; i < 10; i++ {
		str := curr.String()
		if str == prev {
			break
		}
		prev = str
		curr = TrigSimplify(curr).Simplify()
	}
	return curr
}

// ============================================================
// Free Symbols
// ============================================================

func FreeSymbols(e Expr) map[string]struct{} {
	result := map[string]struct{}{}
	collectSymbols(e, result)
	return result
}

func collectSymbols(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Sym:
		out[v.name] = struct{}{}
	case *Add:
		for _, t := range v.terms {
			collectSymbols(t, out)
		}
	case *Mul:
		for _, f := range v.factors {
			collectSymbols(f, out)
		}
	case *Pow:
		collectSymbols(v.base, out)
		collectSymbols(v.exp, out)
	case *Func:
		collectSymbols(v.arg, out)
	}
}

// ============================================================
// Top-level convenience functions
// ============================================================

func Sub(expr Expr, varName string, value Expr) Expr {
	return expr.Sub(varName, value).Simplify()
}

func Diff(expr Expr, varName string) Expr {
	return expr.Diff(varName).Simplify()
}
