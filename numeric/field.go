// Package numeric converts symbolic parametric vectors into vectorized
// numeric evaluators. A compiled function holds no shared mutable state:
// repeated calls with identical inputs return identical results.
package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrFreeSymbol reports an expression over variables other than u and v.
	ErrFreeSymbol = errors.New("numeric: free symbol is not a parameter")
	// ErrUnsupported reports an expression node with no numeric counterpart.
	ErrUnsupported = errors.New("numeric: unsupported expression")
	// ErrShape reports array arguments whose lengths cannot broadcast.
	ErrShape = errors.New("numeric: arrays do not broadcast")
)

// ScalarFunc is a compiled scalar function of the parameters (u, v).
type ScalarFunc func(u, v float64) float64

// Broadcast evaluates the function element-wise over array arguments.
// Arrays of equal length pair up; a length-1 array broadcasts against the
// other argument. Anything else fails with ErrShape.
func (f ScalarFunc) Broadcast(us, vs []float64) ([]float64, error) {
	switch {
	case len(us) == len(vs):
		out := make([]float64, len(us))
		for i := range us {
			out[i] = f(us[i], vs[i])
		}
		return out, nil
	case len(us) == 1:
		out := make([]float64, len(vs))
		for i := range vs {
			out[i] = f(us[0], vs[i])
		}
		return out, nil
	case len(vs) == 1:
		out := make([]float64, len(us))
		for i := range us {
			out[i] = f(us[i], vs[0])
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: len %d vs %d", ErrShape, len(us), len(vs))
}

// Field is the numeric counterpart of a symbolic 3-vector: three
// independent scalar functions for the x, y, and z coordinates.
type Field struct {
	X, Y, Z ScalarFunc
}

// At evaluates the field at a single parameter point and packs the
// three coordinates into a vector.
func (f Field) At(u, v float64) Vec3 {
	return Vec3{X: f.X(u, v), Y: f.Y(u, v), Z: f.Z(u, v)}
}

// Broadcast evaluates all three coordinate functions over array
// arguments with ScalarFunc broadcast semantics.
func (f Field) Broadcast(us, vs []float64) ([]Vec3, error) {
	xs, err := f.X.Broadcast(us, vs)
	if err != nil {
		return nil, err
	}
	ys, err := f.Y.Broadcast(us, vs)
	if err != nil {
		return nil, err
	}
	zs, err := f.Z.Broadcast(us, vs)
	if err != nil {
		return nil, err
	}
	out := make([]Vec3, len(xs))
	for i := range xs {
		out[i] = Vec3{X: xs[i], Y: ys[i], Z: zs[i]}
	}
	return out, nil
}
