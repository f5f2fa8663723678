package numeric

import (
	"fmt"
	"math"

	"gaussmap/expr"
)

// ParamU and ParamV are the only variable names a compiled function binds.
const (
	ParamU = "u"
	ParamV = "v"
)

var unaryFuncs = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"csc":  func(x float64) float64 { return 1 / math.Sin(x) },
	"sec":  func(x float64) float64 { return 1 / math.Cos(x) },
	"cot":  func(x float64) float64 { return math.Cos(x) / math.Sin(x) },
	"sinh": math.Sinh,
	"cosh": math.Cosh,
	"tanh": math.Tanh,
	"csch": func(x float64) float64 { return 1 / math.Sinh(x) },
	"sech": func(x float64) float64 { return 1 / math.Cosh(x) },
	"coth": func(x float64) float64 { return math.Cosh(x) / math.Sinh(x) },
	"exp":  math.Exp,
	"log":  math.Log,
}

// Compile lowers a symbolic scalar expression into a numeric function of
// (u, v). The walk happens once; evaluation afterwards touches only the
// produced closure tree. Expressions over symbols other than u and v fail
// with ErrFreeSymbol, unknown node or function kinds with ErrUnsupported.
func Compile(e expr.Expr) (ScalarFunc, error) {
	switch n := e.(type) {
	case *expr.Num:
		c := n.Float64()
		return func(float64, float64) float64 { return c }, nil
	case *expr.Const:
		c := n.Value()
		return func(float64, float64) float64 { return c }, nil
	case *expr.Sym:
		switch n.Name() {
		case ParamU:
			return func(u, _ float64) float64 { return u }, nil
		case ParamV:
			return func(_, v float64) float64 { return v }, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrFreeSymbol, n.Name())
	case *expr.Add:
		terms := n.Terms()
		fns := make([]ScalarFunc, len(terms))
		for i, t := range terms {
			fn, err := Compile(t)
			if err != nil {
				return nil, err
			}
			fns[i] = fn
		}
		return func(u, v float64) float64 {
			acc := 0.0
			for _, fn := range fns {
				acc += fn(u, v)
			}
			return acc
		}, nil
	case *expr.Mul:
		factors := n.Factors()
		fns := make([]ScalarFunc, len(factors))
		for i, f := range factors {
			fn, err := Compile(f)
			if err != nil {
				return nil, err
			}
			fns[i] = fn
		}
		return func(u, v float64) float64 {
			acc := 1.0
			for _, fn := range fns {
				acc *= fn(u, v)
			}
			return acc
		}, nil
	case *expr.Pow:
		base, err := Compile(n.Base())
		if err != nil {
			return nil, err
		}
		exponent, err := Compile(n.Exponent())
		if err != nil {
			return nil, err
		}
		return func(u, v float64) float64 {
			return math.Pow(base(u, v), exponent(u, v))
		}, nil
	case *expr.Func:
		fn, ok := unaryFuncs[n.FuncName()]
		if !ok {
			return nil, fmt.Errorf("%w: function %s", ErrUnsupported, n.FuncName())
		}
		arg, err := Compile(n.Arg())
		if err != nil {
			return nil, err
		}
		return func(u, v float64) float64 { return fn(arg(u, v)) }, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, e)
}

// Lambdify compiles all three components of a symbolic vector into a
// numeric field. The conversion is cheap relative to sampling and is
// repeated freely, e.g. after orientation correction negates the normal.
func Lambdify(vec expr.Vector) (Field, error) {
	x, err := Compile(vec.X)
	if err != nil {
		return Field{}, fmt.Errorf("x component: %w", err)
	}
	y, err := Compile(vec.Y)
	if err != nil {
		return Field{}, fmt.Errorf("y component: %w", err)
	}
	z, err := Compile(vec.Z)
	if err != nil {
		return Field{}, fmt.Errorf("z component: %w", err)
	}
	return Field{X: x, Y: y, Z: z}, nil
}
