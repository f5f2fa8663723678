package gaussmap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gaussmap"
	"gaussmap/numeric"
)

func constantField(x, y, z float64) numeric.Field {
	return numeric.Field{
		X: func(u, v float64) float64 { return x },
		Y: func(u, v float64) float64 { return y },
		Z: func(u, v float64) float64 { return z },
	}
}

func TestIsPointingInward(t *testing.T) {
	point := numeric.Vec3{X: 1, Y: 1, Z: 1}
	toOrigin := point.Scale(-1)
	assert.True(t, gaussmap.IsPointingInward(point, toOrigin))
	assert.False(t, gaussmap.IsPointingInward(point, point))
}

func TestIsPointingInward_NotNormalized(t *testing.T) {
	point := numeric.Vec3{X: 2, Y: 0, Z: 0}
	assert.True(t, gaussmap.IsPointingInward(point, numeric.Vec3{X: -100, Y: 0, Z: 0}))
	assert.False(t, gaussmap.IsPointingInward(point, numeric.Vec3{X: 0.001, Y: 0, Z: 0}))
}

func TestIsPointingInward_SignSymmetric(t *testing.T) {
	// Reflecting both the point and the vector through the origin
	// preserves the verdict, whichever way it comes out.
	cases := []struct {
		point, vector numeric.Vec3
	}{
		{numeric.Vec3{X: 1, Y: 2, Z: 3}, numeric.Vec3{X: -1, Y: -2, Z: -3}},
		{numeric.Vec3{X: 1, Y: 2, Z: 3}, numeric.Vec3{X: 1, Y: 2, Z: 3}},
		{numeric.Vec3{X: 2, Y: 0.5, Z: 1}, numeric.Vec3{X: 0.1, Y: 3, Z: 0.2}},
		{numeric.Vec3{X: 0.3, Y: 4, Z: 0.7}, numeric.Vec3{X: 2, Y: 0.1, Z: 1}},
	}
	for _, c := range cases {
		direct := gaussmap.IsPointingInward(c.point, c.vector)
		mirrored := gaussmap.IsPointingInward(c.point.Scale(-1), c.vector.Scale(-1))
		assert.Equal(t, direct, mirrored, "point %v vector %v", c.point, c.vector)
	}
}

func TestIsPointingInward_Orthogonal(t *testing.T) {
	// A tangent direction moves the point farther out, never closer.
	point := numeric.Vec3{X: 1, Y: 0, Z: 0}
	assert.False(t, gaussmap.IsPointingInward(point, numeric.Vec3{Y: 1}))
}

func TestIsUFunction(t *testing.T) {
	r := gaussmap.Range{Min: 0, Max: 2 * math.Pi}
	uOnly := numeric.Field{
		X: func(u, v float64) float64 { return math.Cos(u) },
		Y: func(u, v float64) float64 { return math.Sin(u) },
		Z: func(u, v float64) float64 { return 0 },
	}
	assert.True(t, gaussmap.IsUFunction(uOnly, r, r))
	assert.False(t, gaussmap.IsVFunction(uOnly, r, r))
}

func TestIsVFunction(t *testing.T) {
	r := gaussmap.Range{Min: -1, Max: 1}
	vOnly := numeric.Field{
		X: func(u, v float64) float64 { return v },
		Y: func(u, v float64) float64 { return v * v },
		Z: func(u, v float64) float64 { return 1 },
	}
	assert.False(t, gaussmap.IsUFunction(vOnly, r, r))
	assert.True(t, gaussmap.IsVFunction(vOnly, r, r))
}

func TestIsUFunction_ConstantField(t *testing.T) {
	r := gaussmap.Range{Min: 0, Max: 1}
	constant := constantField(0, 0, 1)
	assert.False(t, gaussmap.IsUFunction(constant, r, r))
	assert.False(t, gaussmap.IsVFunction(constant, r, r))
}

func TestIsUFunction_IgnoresTinyNoise(t *testing.T) {
	r := gaussmap.Range{Min: 0, Max: 1}
	noisy := numeric.Field{
		X: func(u, v float64) float64 { return 1 + u*1e-12 },
		Y: func(u, v float64) float64 { return 0 },
		Z: func(u, v float64) float64 { return 0 },
	}
	assert.False(t, gaussmap.IsUFunction(noisy, r, r))
}

// The cone and the cylinder are the recorded surfaces whose Gauss map
// collapses to a curve: their unit normals vary in u alone. Swapping the
// parameters must move the variation to the other axis, never both.
func TestIsUFunction_CurveBundles(t *testing.T) {
	for _, name := range []string{"cone", "cylinder"} {
		t.Run(name, func(t *testing.T) {
			p, ok := gaussmap.Lookup(name)
			require.True(t, ok)
			unit := mustLambdify(t, p.Normal.Unit())

			assert.True(t, gaussmap.IsUFunction(unit, p.URange, p.VRange))
			assert.False(t, gaussmap.IsVFunction(unit, p.URange, p.VRange))

			swapped := numeric.Field{
				X: func(u, v float64) float64 { return unit.X(v, u) },
				Y: func(u, v float64) float64 { return unit.Y(v, u) },
				Z: func(u, v float64) float64 { return unit.Z(v, u) },
			}
			assert.False(t, gaussmap.IsUFunction(swapped, p.VRange, p.URange))
			assert.True(t, gaussmap.IsVFunction(swapped, p.VRange, p.URange))
		})
	}
}

func TestIsInwardField_ReferenceSurfaces(t *testing.T) {
	for _, p := range gaussmap.Surfaces() {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			got := gaussmap.IsInwardField(p.Surface, p.NormalField, p.URange, p.VRange)
			assert.Equal(t, p.Inward, got)
		})
	}
}

func TestIsInwardFieldGrid_TieIsOutward(t *testing.T) {
	// A tangential normal never wins a vote in either direction.
	plane := numeric.Field{
		X: func(u, v float64) float64 { return u },
		Y: func(u, v float64) float64 { return v },
		Z: func(u, v float64) float64 { return 0 },
	}
	tangent := constantField(0, 0, 1)
	r := gaussmap.Range{Min: 1, Max: 2}
	assert.False(t, gaussmap.IsInwardFieldGrid(plane, tangent, r, r, 10, 10))
}

func TestNewRange(t *testing.T) {
	r, err := gaussmap.NewRange(-1, 1)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, r.Mid())

	_, err = gaussmap.NewRange(2, 1)
	assert.ErrorIs(t, err, gaussmap.ErrRange)
}
