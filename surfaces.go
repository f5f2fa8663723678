package gaussmap

import (
	"math"

	"gaussmap/expr"
)

// The reference surfaces below record every derived quantity in the
// canonical simplified form the symbolic engine produces, so each one
// doubles as a worked example for the pipeline.

// catenoid: the minimal surface of revolution, waist radius 2.
func catenoid() Parameterization {
	u, v := expr.S("u"), expr.S("v")
	halfV := expr.MulOf(expr.F(1, 2), v)
	expression := expr.NewVector(
		expr.MulOf(expr.N(2), expr.CoshOf(halfV), expr.CosOf(u)),
		expr.MulOf(expr.N(2), expr.CoshOf(halfV), expr.SinOf(u)),
		v,
	)
	normal := expr.NewVector(
		expr.MulOf(expr.N(2), expr.CosOf(u), expr.CoshOf(halfV)),
		expr.MulOf(expr.N(2), expr.SinOf(u), expr.CoshOf(halfV)),
		expr.MulOf(expr.N(-2), expr.CoshOf(halfV), expr.SinhOf(halfV)),
	)
	return Parameterization{
		Name:       "catenoid",
		Expression: expression,
		PartialU: expr.NewVector(
			expr.MulOf(expr.N(-2), expr.CoshOf(halfV), expr.SinOf(u)),
			expr.MulOf(expr.N(2), expr.CoshOf(halfV), expr.CosOf(u)),
			expr.N(0),
		),
		PartialV: expr.NewVector(
			expr.MulOf(expr.SinhOf(halfV), expr.CosOf(u)),
			expr.MulOf(expr.SinhOf(halfV), expr.SinOf(u)),
			expr.N(1),
		),
		Normal:      normal,
		Surface:     mustField(expression),
		NormalField: mustField(normal),
		URange:      Range{Min: -math.Pi, Max: math.Pi},
		VRange:      Range{Min: -2, Max: 2},
		GaussMap1D:  false,
		Inward:      false,
	}
}

// cone: upper half cone along the z-axis. The apex at v=0 is singular,
// so the range starts just above it.
func cone() Parameterization {
	u, v := expr.S("u"), expr.S("v")
	expression := expr.NewVector(
		expr.MulOf(v, expr.CosOf(u)),
		expr.MulOf(v, expr.SinOf(u)),
		v,
	)
	normal := expr.NewVector(
		expr.MulOf(v, expr.CosOf(u)),
		expr.MulOf(v, expr.SinOf(u)),
		expr.MulOf(expr.N(-1), v),
	)
	return Parameterization{
		Name:       "cone",
		Expression: expression,
		PartialU: expr.NewVector(
			expr.MulOf(expr.N(-1), v, expr.SinOf(u)),
			expr.MulOf(v, expr.CosOf(u)),
			expr.N(0),
		),
		PartialV: expr.NewVector(
			expr.CosOf(u),
			expr.SinOf(u),
			expr.N(1),
		),
		Normal:      normal,
		Surface:     mustField(expression),
		NormalField: mustField(normal),
		URange:      Range{Min: 0, Max: 2 * math.Pi},
		VRange:      Range{Min: 0.01, Max: 1},
		GaussMap1D:  true,
		Inward:      false,
	}
}

// cylinder: unit cylinder along the z-axis. Its unit normal ignores v,
// so the Gauss map traces the sphere's equator.
func cylinder() Parameterization {
	u, v := expr.S("u"), expr.S("v")
	expression := expr.NewVector(expr.CosOf(u), expr.SinOf(u), v)
	normal := expr.NewVector(expr.CosOf(u), expr.SinOf(u), expr.N(0))
	return Parameterization{
		Name:       "cylinder",
		Expression: expression,
		PartialU: expr.NewVector(
			expr.MulOf(expr.N(-1), expr.SinOf(u)),
			expr.CosOf(u),
			expr.N(0),
		),
		PartialV:    expr.NewVector(expr.N(0), expr.N(0), expr.N(1)),
		Normal:      normal,
		Surface:     mustField(expression),
		NormalField: mustField(normal),
		URange:      Range{Min: 0, Max: 2 * math.Pi},
		VRange:      Range{Min: -1, Max: 1},
		GaussMap1D:  true,
		Inward:      false,
	}
}

// hyperbolicParaboloid: the saddle z = uv.
func hyperbolicParaboloid() Parameterization {
	u, v := expr.S("u"), expr.S("v")
	expression := expr.NewVector(u, v, expr.MulOf(u, v))
	normal := expr.NewVector(
		expr.MulOf(expr.N(-1), v),
		expr.MulOf(expr.N(-1), u),
		expr.N(1),
	)
	return Parameterization{
		Name:        "hyperbolic paraboloid",
		Expression:  expression,
		PartialU:    expr.NewVector(expr.N(1), expr.N(0), v),
		PartialV:    expr.NewVector(expr.N(0), expr.N(1), u),
		Normal:      normal,
		Surface:     mustField(expression),
		NormalField: mustField(normal),
		URange:      Range{Min: -2, Max: 2},
		VRange:      Range{Min: -2, Max: 2},
		GaussMap1D:  false,
		Inward:      false,
	}
}

// hyperboloid: one sheet, centered along the z-axis.
func hyperboloid() Parameterization {
	u, v := expr.S("u"), expr.S("v")
	expression := expr.NewVector(
		expr.MulOf(expr.CoshOf(u), expr.CosOf(v)),
		expr.MulOf(expr.CoshOf(u), expr.SinOf(v)),
		expr.SinhOf(u),
	)
	normal := expr.NewVector(
		expr.MulOf(expr.N(-1), expr.CosOf(v), expr.PowOf(expr.CoshOf(u), expr.N(2))),
		expr.MulOf(expr.N(-1), expr.SinOf(v), expr.PowOf(expr.CoshOf(u), expr.N(2))),
		expr.MulOf(expr.CoshOf(u), expr.SinhOf(u)),
	)
	return Parameterization{
		Name:       "hyperboloid",
		Expression: expression,
		PartialU: expr.NewVector(
			expr.MulOf(expr.SinhOf(u), expr.CosOf(v)),
			expr.MulOf(expr.SinhOf(u), expr.SinOf(v)),
			expr.CoshOf(u),
		),
		PartialV: expr.NewVector(
			expr.MulOf(expr.N(-1), expr.CoshOf(u), expr.SinOf(v)),
			expr.MulOf(expr.CoshOf(u), expr.CosOf(v)),
			expr.N(0),
		),
		Normal:      normal,
		Surface:     mustField(expression),
		NormalField: mustField(normal),
		URange:      Range{Min: -2 * math.Pi, Max: 2 * math.Pi},
		VRange:      Range{Min: 0, Max: 2 * math.Pi},
		GaussMap1D:  false,
		Inward:      true,
	}
}

// monkeySaddle: z = u³ − 3uv², the saddle with three downhill valleys.
func monkeySaddle() Parameterization {
	u, v := expr.S("u"), expr.S("v")
	u2 := expr.PowOf(u, expr.N(2))
	v2 := expr.PowOf(v, expr.N(2))
	expression := expr.NewVector(
		u, v,
		expr.AddOf(expr.PowOf(u, expr.N(3)), expr.MulOf(expr.N(-3), u, v2)),
	)
	normal := expr.NewVector(
		expr.AddOf(expr.MulOf(expr.N(-3), u2), expr.MulOf(expr.N(3), v2)),
		expr.MulOf(expr.N(6), u, v),
		expr.N(1),
	)
	return Parameterization{
		Name:       "monkey saddle",
		Expression: expression,
		PartialU: expr.NewVector(
			expr.N(1), expr.N(0),
			expr.AddOf(expr.MulOf(expr.N(3), u2), expr.MulOf(expr.N(-3), v2)),
		),
		PartialV: expr.NewVector(
			expr.N(0), expr.N(1),
			expr.MulOf(expr.N(-6), u, v),
		),
		Normal:      normal,
		Surface:     mustField(expression),
		NormalField: mustField(normal),
		URange:      Range{Min: -3, Max: 3},
		VRange:      Range{Min: -3, Max: 3},
		GaussMap1D:  false,
		Inward:      false,
	}
}

// paraboloid: opens toward negative z. v=0 is singular.
func paraboloid() Parameterization {
	u, v := expr.S("u"), expr.S("v")
	expression := expr.NewVector(
		expr.MulOf(v, expr.CosOf(u)),
		expr.MulOf(v, expr.SinOf(u)),
		expr.MulOf(expr.N(-1), expr.PowOf(v, expr.N(2))),
	)
	normal := expr.NewVector(
		expr.MulOf(expr.N(-2), expr.PowOf(v, expr.N(2)), expr.CosOf(u)),
		expr.MulOf(expr.N(-2), expr.PowOf(v, expr.N(2)), expr.SinOf(u)),
		expr.MulOf(expr.N(-1), v),
	)
	return Parameterization{
		Name:       "paraboloid",
		Expression: expression,
		PartialU: expr.NewVector(
			expr.MulOf(expr.N(-1), v, expr.SinOf(u)),
			expr.MulOf(v, expr.CosOf(u)),
			expr.N(0),
		),
		PartialV: expr.NewVector(
			expr.CosOf(u),
			expr.SinOf(u),
			expr.MulOf(expr.N(-2), v),
		),
		Normal:      normal,
		Surface:     mustField(expression),
		NormalField: mustField(normal),
		URange:      Range{Min: 0, Max: 2 * math.Pi},
		VRange:      Range{Min: 0.01, Max: 2},
		GaussMap1D:  false,
		Inward:      true,
	}
}

// ringTorus: major radius 3, minor radius 1.
func ringTorus() Parameterization {
	u, v := expr.S("u"), expr.S("v")
	ring := expr.AddOf(expr.N(3), expr.CosOf(u))
	expression := expr.NewVector(
		expr.MulOf(ring, expr.CosOf(v)),
		expr.MulOf(ring, expr.SinOf(v)),
		expr.SinOf(u),
	)
	normal := expr.NewVector(
		expr.MulOf(expr.N(-1), ring, expr.CosOf(u), expr.CosOf(v)),
		expr.MulOf(expr.N(-1), ring, expr.CosOf(u), expr.SinOf(v)),
		expr.MulOf(expr.N(-1), ring, expr.SinOf(u)),
	)
	return Parameterization{
		Name:       "ring torus",
		Expression: expression,
		PartialU: expr.NewVector(
			expr.MulOf(expr.N(-1), expr.SinOf(u), expr.CosOf(v)),
			expr.MulOf(expr.N(-1), expr.SinOf(u), expr.SinOf(v)),
			expr.CosOf(u),
		),
		PartialV: expr.NewVector(
			expr.MulOf(expr.N(-1), ring, expr.SinOf(v)),
			expr.MulOf(ring, expr.CosOf(v)),
			expr.N(0),
		),
		Normal:      normal,
		Surface:     mustField(expression),
		NormalField: mustField(normal),
		URange:      Range{Min: 0, Max: 2 * math.Pi},
		VRange:      Range{Min: 0, Max: 2 * math.Pi},
		GaussMap1D:  false,
		Inward:      true,
	}
}

// sphere: unit sphere in spherical coordinates. The v range stops short
// of both poles, which are singular.
func sphere() Parameterization {
	u, v := expr.S("u"), expr.S("v")
	expression := expr.NewVector(
		expr.MulOf(expr.CosOf(u), expr.SinOf(v)),
		expr.MulOf(expr.SinOf(u), expr.SinOf(v)),
		expr.CosOf(v),
	)
	normal := expr.NewVector(
		expr.MulOf(expr.N(-1), expr.PowOf(expr.SinOf(v), expr.N(2)), expr.CosOf(u)),
		expr.MulOf(expr.N(-1), expr.PowOf(expr.SinOf(v), expr.N(2)), expr.SinOf(u)),
		expr.MulOf(expr.N(-1), expr.SinOf(v), expr.CosOf(v)),
	)
	return Parameterization{
		Name:       "sphere",
		Expression: expression,
		PartialU: expr.NewVector(
			expr.MulOf(expr.N(-1), expr.SinOf(u), expr.SinOf(v)),
			expr.MulOf(expr.CosOf(u), expr.SinOf(v)),
			expr.N(0),
		),
		PartialV: expr.NewVector(
			expr.MulOf(expr.CosOf(u), expr.CosOf(v)),
			expr.MulOf(expr.SinOf(u), expr.CosOf(v)),
			expr.MulOf(expr.N(-1), expr.SinOf(v)),
		),
		Normal:      normal,
		Surface:     mustField(expression),
		NormalField: mustField(normal),
		URange:      Range{Min: 0, Max: 2 * math.Pi},
		VRange:      Range{Min: 0.01, Max: math.Pi - 0.01},
		GaussMap1D:  false,
		Inward:      true,
	}
}
