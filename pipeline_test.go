package gaussmap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"gaussmap"
	"gaussmap/expr"
	"gaussmap/numeric"
)

// assertFieldsMatch samples both fields on a coarse grid and compares
// the vectors component-wise. sign lets callers compare against a
// negated reference field.
func assertFieldsMatch(t *testing.T, want, got numeric.Field, uRange, vRange gaussmap.Range, sign float64) {
	t.Helper()
	const samples = 7
	for i := 0; i < samples; i++ {
		for j := 0; j < samples; j++ {
			u := uRange.Min + (uRange.Max-uRange.Min)*float64(i)/(samples-1)
			v := vRange.Min + (vRange.Max-vRange.Min)*float64(j)/(samples-1)
			w := want.At(u, v).Scale(sign)
			g := got.At(u, v)
			tol := 1e-9 * math.Max(1, w.Norm())
			assert.InDelta(t, w.X, g.X, tol, "x at (%g, %g)", u, v)
			assert.InDelta(t, w.Y, g.Y, tol, "y at (%g, %g)", u, v)
			assert.InDelta(t, w.Z, g.Z, tol, "z at (%g, %g)", u, v)
		}
	}
}

func TestComputePartials_Cylinder(t *testing.T) {
	u, v := expr.S("u"), expr.S("v")
	surface := expr.NewVector(expr.CosOf(u), expr.SinOf(u), v)
	pu, pv, err := gaussmap.ComputePartials(surface)
	require.NoError(t, err)
	assert.Equal(t, "(-1*sin(u), cos(u), 0)", pu.String())
	assert.Equal(t, "(0, 0, 1)", pv.String())
}

func TestComputePartials_Undifferentiable(t *testing.T) {
	surface := expr.NewVector(expr.FuncOf("erf", expr.S("u")), expr.S("v"), expr.N(0))
	_, _, err := gaussmap.ComputePartials(surface)
	assert.ErrorIs(t, err, gaussmap.ErrDifferentiation)
}

func TestCompute_Cylinder(t *testing.T) {
	u, v := expr.S("u"), expr.S("v")
	surface := expr.NewVector(expr.CosOf(u), expr.SinOf(u), v)
	gm, err := gaussmap.Compute(surface,
		gaussmap.Range{Min: 0, Max: 2 * math.Pi},
		gaussmap.Range{Min: -1, Max: 1},
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, "(cos(u), sin(u), 0)", gm.Normal.String())
	assert.False(t, gm.Inward)
	assert.Equal(t, gaussmap.CurveU, gm.Kind)

	point := gm.Surface.At(math.Pi/4, 0.5)
	assert.InDelta(t, math.Cos(math.Pi/4), point.X, 1e-12)
	assert.InDelta(t, math.Sin(math.Pi/4), point.Y, 1e-12)
	assert.InDelta(t, 0.5, point.Z, 1e-12)
}

func TestCompute_Sphere_FlipsInwardNormal(t *testing.T) {
	u, v := expr.S("u"), expr.S("v")
	surface := expr.NewVector(
		expr.MulOf(expr.CosOf(u), expr.SinOf(v)),
		expr.MulOf(expr.SinOf(u), expr.SinOf(v)),
		expr.CosOf(v),
	)
	gm, err := gaussmap.Compute(surface,
		gaussmap.Range{Min: 0, Max: 2 * math.Pi},
		gaussmap.Range{Min: 0.01, Max: math.Pi - 0.01},
		nil,
	)
	require.NoError(t, err)

	assert.True(t, gm.Inward)
	assert.Equal(t, gaussmap.Surface2D, gm.Kind)

	// After correction the unit normal of the unit sphere is the surface
	// point itself.
	for _, sample := range [][2]float64{{0.3, 1.0}, {2.0, 2.5}, {5.0, 0.5}} {
		p := gm.Surface.At(sample[0], sample[1])
		n := gm.NormalField.At(sample[0], sample[1]).Normalize()
		assert.InDelta(t, p.X, n.X, 1e-9)
		assert.InDelta(t, p.Y, n.Y, 1e-9)
		assert.InDelta(t, p.Z, n.Z, 1e-9)
	}
}

func TestCompute_SwappedParametersSwapCurveAxis(t *testing.T) {
	u, v := expr.S("u"), expr.S("v")
	// The cylinder parameterized with the roles of u and v exchanged:
	// its Gauss-map image depends on v alone.
	surface := expr.NewVector(expr.CosOf(v), expr.SinOf(v), u)
	gm, err := gaussmap.Compute(surface,
		gaussmap.Range{Min: -1, Max: 1},
		gaussmap.Range{Min: 0, Max: 2 * math.Pi},
		nil,
	)
	require.NoError(t, err)
	assert.Equal(t, gaussmap.CurveV, gm.Kind)
}

func TestCompute_Plane_IsDegenerate(t *testing.T) {
	u, v := expr.S("u"), expr.S("v")
	surface := expr.NewVector(u, v, expr.N(0))
	gm, err := gaussmap.Compute(surface,
		gaussmap.Range{Min: -1, Max: 1},
		gaussmap.Range{Min: -1, Max: 1},
		nil,
	)
	require.NoError(t, err)
	assert.Equal(t, gaussmap.Degenerate, gm.Kind)

	_, ok := gm.GaussMapSurfaceFunc()
	assert.False(t, ok)
	_, _, ok = gm.GaussMapCurveFunc()
	assert.False(t, ok)
}

func TestCompute_RejectsForeignSymbol(t *testing.T) {
	surface := expr.NewVector(expr.S("u"), expr.S("w"), expr.N(0))
	_, err := gaussmap.Compute(surface,
		gaussmap.Range{Min: 0, Max: 1}, gaussmap.Range{Min: 0, Max: 1}, nil)
	assert.ErrorIs(t, err, gaussmap.ErrFreeSymbol)
}

func TestCompute_RejectsInvertedRange(t *testing.T) {
	surface := expr.NewVector(expr.S("u"), expr.S("v"), expr.N(0))
	_, err := gaussmap.Compute(surface,
		gaussmap.Range{Min: 1, Max: 0}, gaussmap.Range{Min: 0, Max: 1}, nil)
	assert.ErrorIs(t, err, gaussmap.ErrRange)
}

func TestCompute_WithLogger(t *testing.T) {
	u, v := expr.S("u"), expr.S("v")
	opts := gaussmap.DefaultOptions()
	opts.Logger = zaptest.NewLogger(t)
	_, err := gaussmap.Compute(expr.NewVector(u, v, expr.MulOf(u, v)),
		gaussmap.Range{Min: -2, Max: 2}, gaussmap.Range{Min: -2, Max: 2}, &opts)
	assert.NoError(t, err)
}

func TestComputeMatrix_MatchesCompute(t *testing.T) {
	u, v := expr.S("u"), expr.S("v")
	surface := expr.NewVector(expr.CosOf(u), expr.SinOf(u), v)
	uRange := gaussmap.Range{Min: 0, Max: 2 * math.Pi}
	vRange := gaussmap.Range{Min: -1, Max: 1}

	fromVector, err := gaussmap.Compute(surface, uRange, vRange, nil)
	require.NoError(t, err)
	fromMatrix, err := gaussmap.ComputeMatrix(surface.Matrix(), uRange, vRange, nil)
	require.NoError(t, err)

	assert.Equal(t, fromVector.Normal.String(), fromMatrix.Normal.String())
	assert.Equal(t, fromVector.Kind, fromMatrix.Kind)
}

func TestComputeMatrix_RejectsWrongShape(t *testing.T) {
	m := expr.NewMatrix(2, 2)
	_, err := gaussmap.ComputeMatrix(m,
		gaussmap.Range{Min: 0, Max: 1}, gaussmap.Range{Min: 0, Max: 1}, nil)
	assert.ErrorIs(t, err, expr.ErrShape)
}
