package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gaussmap/expr"
	"gaussmap/numeric"
)

func TestVec3_CrossBasis(t *testing.T) {
	x := numeric.Vec3{X: 1}
	y := numeric.Vec3{Y: 1}
	assert.Equal(t, numeric.Vec3{Z: 1}, x.Cross(y))
	assert.Equal(t, numeric.Vec3{Z: -1}, y.Cross(x))
}

func TestVec3_Norm(t *testing.T) {
	v := numeric.Vec3{X: 3, Y: 4}
	assert.Equal(t, 5.0, v.Norm())
}

func TestVec3_Normalize(t *testing.T) {
	v := numeric.Vec3{X: 0, Y: 0, Z: -7}.Normalize()
	assert.Equal(t, numeric.Vec3{Z: -1}, v)
	assert.InDelta(t, 1, v.Norm(), 1e-15)
}

func TestVec3_NormalizeZero(t *testing.T) {
	assert.Equal(t, numeric.Vec3{}, numeric.Vec3{}.Normalize())
}

func TestVec3_NormalizeIdempotent(t *testing.T) {
	v := numeric.Vec3{X: 2, Y: -1, Z: 0.5}.Normalize()
	again := v.Normalize()
	assert.InDelta(t, v.X, again.X, 1e-15)
	assert.InDelta(t, v.Y, again.Y, 1e-15)
	assert.InDelta(t, v.Z, again.Z, 1e-15)
}

func TestCompile_Polynomial(t *testing.T) {
	u, v := expr.S("u"), expr.S("v")
	e := expr.AddOf(expr.PowOf(u, expr.N(2)), expr.MulOf(expr.N(3), v))
	fn, err := numeric.Compile(e)
	require.NoError(t, err)
	assert.InDelta(t, 10, fn(2, 2), 1e-12)
	assert.InDelta(t, 0.25, fn(0.5, 0), 1e-12)
}

func TestCompile_Trig(t *testing.T) {
	e := expr.SinOf(expr.MulOf(expr.N(2), expr.S("u")))
	fn, err := numeric.Compile(e)
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(3), fn(1.5, 0), 1e-12)
}

func TestCompile_PiConstant(t *testing.T) {
	fn, err := numeric.Compile(expr.MulOf(expr.N(2), expr.Pi))
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Pi, fn(0, 0), 1e-12)
}

func TestCompile_ReciprocalTrig(t *testing.T) {
	fn, err := numeric.Compile(expr.SecOf(expr.S("u")))
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Cos(0.7), fn(0.7, 0), 1e-12)
}

func TestCompile_RejectsFreeSymbol(t *testing.T) {
	_, err := numeric.Compile(expr.AddOf(expr.S("u"), expr.S("w")))
	assert.ErrorIs(t, err, numeric.ErrFreeSymbol)
}

func TestCompile_RejectsUnknownFunction(t *testing.T) {
	_, err := numeric.Compile(expr.FuncOf("erf", expr.S("u")))
	assert.ErrorIs(t, err, numeric.ErrUnsupported)
}

func TestCompile_IsPure(t *testing.T) {
	fn, err := numeric.Compile(expr.PowOf(expr.S("u"), expr.S("v")))
	require.NoError(t, err)
	first := fn(1.3, 2.7)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, fn(1.3, 2.7))
	}
}

func TestBroadcast_EqualLengths(t *testing.T) {
	double := numeric.ScalarFunc(func(u, v float64) float64 { return u + v })
	out, err := double.Broadcast([]float64{1, 2, 3}, []float64{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22, 33}, out)
}

func TestBroadcast_ScalarAgainstArray(t *testing.T) {
	f := numeric.ScalarFunc(func(u, v float64) float64 { return u - v })
	out, err := f.Broadcast([]float64{5}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 3, 2}, out)

	out, err = f.Broadcast([]float64{1, 2, 3}, []float64{5})
	require.NoError(t, err)
	assert.Equal(t, []float64{-4, -3, -2}, out)
}

func TestBroadcast_ShapeMismatch(t *testing.T) {
	f := numeric.ScalarFunc(func(u, v float64) float64 { return 0 })
	_, err := f.Broadcast([]float64{1, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, numeric.ErrShape)
}

func TestLambdify_MatchesSymbolicSub(t *testing.T) {
	u, v := expr.S("u"), expr.S("v")
	vec := expr.NewVector(
		expr.MulOf(v, expr.CosOf(u)),
		expr.MulOf(v, expr.SinOf(u)),
		v,
	)
	field, err := numeric.Lambdify(vec)
	require.NoError(t, err)

	for _, sample := range [][2]float64{{0, 1}, {math.Pi / 3, 0.5}, {2, 2}} {
		got := field.At(sample[0], sample[1])
		subbed := vec.Sub("u", expr.NFloat(sample[0])).Sub("v", expr.NFloat(sample[1]))
		wantX, _ := subbed.X.Eval()
		wantY, _ := subbed.Y.Eval()
		wantZ, _ := subbed.Z.Eval()
		assert.InDelta(t, wantX, got.X, 1e-9)
		assert.InDelta(t, wantY, got.Y, 1e-9)
		assert.InDelta(t, wantZ, got.Z, 1e-9)
	}
}

func TestLambdify_ReportsComponent(t *testing.T) {
	vec := expr.Vector{X: expr.N(0), Y: expr.S("w"), Z: expr.N(0)}
	_, err := numeric.Lambdify(vec)
	require.Error(t, err)
	assert.ErrorIs(t, err, numeric.ErrFreeSymbol)
	assert.Contains(t, err.Error(), "y component")
}

func TestField_Broadcast(t *testing.T) {
	field := numeric.Field{
		X: func(u, v float64) float64 { return u },
		Y: func(u, v float64) float64 { return v },
		Z: func(u, v float64) float64 { return u * v },
	}
	out, err := field.Broadcast([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, numeric.Vec3{X: 1, Y: 3, Z: 3}, out[0])
	assert.Equal(t, numeric.Vec3{X: 2, Y: 4, Z: 8}, out[1])
}
