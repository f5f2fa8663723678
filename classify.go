package gaussmap

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"gaussmap/numeric"
)

const (
	// Grid resolution for the orientation vote.
	defaultOrientationSamples = 20
	// Sweep resolution for the single-parameter degeneracy tests.
	sweepSamples = 50

	// Approximate-equality tolerances for comparing field samples.
	sweepAbsTol = 1e-8
	sweepRelTol = 1e-5
)

func linspace(r Range, n int) []float64 {
	if n < 2 {
		return []float64{r.Min}
	}
	dst := make([]float64, n)
	floats.Span(dst, r.Min, r.Max)
	return dst
}

func vecClose(a, b numeric.Vec3) bool {
	return scalar.EqualWithinAbsOrRel(a.X, b.X, sweepAbsTol, sweepRelTol) &&
		scalar.EqualWithinAbsOrRel(a.Y, b.Y, sweepAbsTol, sweepRelTol) &&
		scalar.EqualWithinAbsOrRel(a.Z, b.Z, sweepAbsTol, sweepRelTol)
}

// IsUFunction reports whether the field's output observably varies with u.
// v is pinned to the midpoint of its range and u sweeps its range at a
// fixed resolution; any sample that differs from the first (beyond
// floating-point closeness) counts as variation.
func IsUFunction(field numeric.Field, uRange, vRange Range) bool {
	vMid := vRange.Mid()
	evaluations, err := field.Broadcast(linspace(uRange, sweepSamples), []float64{vMid})
	if err != nil {
		// A one-element side always broadcasts.
		panic(err)
	}
	for _, evaluation := range evaluations[1:] {
		if !vecClose(evaluation, evaluations[0]) {
			return true
		}
	}
	return false
}

// IsVFunction is the mirror of IsUFunction: u pinned, v swept.
func IsVFunction(field numeric.Field, uRange, vRange Range) bool {
	uMid := uRange.Mid()
	evaluations, err := field.Broadcast([]float64{uMid}, linspace(vRange, sweepSamples))
	if err != nil {
		// A one-element side always broadcasts.
		panic(err)
	}
	for _, evaluation := range evaluations[1:] {
		if !vecClose(evaluation, evaluations[0]) {
			return true
		}
	}
	return false
}

// IsPointingInward reports whether following the vector from the point by
// a small step (0.1·‖point‖ along the unit direction) lands strictly
// closer to the origin. At the origin itself no step can be strictly
// closer, so the test is degenerate there; callers keep singular
// parameter values out of their ranges.
func IsPointingInward(point, vector numeric.Vec3) bool {
	norm := point.Norm()
	step := vector.Normalize().Scale(0.1 * norm)
	return point.Add(step).Norm() < norm
}

// IsInwardField decides the net orientation of a normal field over the
// default 20×20 sampling grid. See IsInwardFieldGrid.
func IsInwardField(surface, normal numeric.Field, uRange, vRange Range) bool {
	return IsInwardFieldGrid(surface, normal, uRange, vRange,
		defaultOrientationSamples, defaultOrientationSamples)
}

// IsInwardFieldGrid samples the surface and its normal field on an
// evenly spaced grid (endpoints included) and counts, per grid point,
// whether the normal and its negation point toward the origin. It returns
// true iff strictly more points vote inward for the normal than for its
// negation, so an exact tie classifies as outward. The vote is a
// finite-sample heuristic: symmetric surfaces or singular points inside
// the ranges can flip it.
func IsInwardFieldGrid(surface, normal numeric.Field, uRange, vRange Range, uSamples, vSamples int) bool {
	uValues := linspace(uRange, uSamples)
	vValues := linspace(vRange, vSamples)

	amountInward := 0
	amountInwardNegative := 0
	for _, uValue := range uValues {
		for _, vValue := range vValues {
			point := surface.At(uValue, vValue)
			normalVector := normal.At(uValue, vValue)
			if IsPointingInward(point, normalVector) {
				amountInward++
			}
			if IsPointingInward(point, normalVector.Scale(-1)) {
				amountInwardNegative++
			}
		}
	}
	return amountInward > amountInwardNegative
}
