package gaussmap

import (
	"gaussmap/numeric"
)

// DefaultMaxRadius bounds rendered surface points. Samples farther from
// the origin are pulled back onto the sphere of this radius so that a
// single runaway direction cannot dwarf the rest of the plot.
const DefaultMaxRadius = 8.0

// anchorOffset is how far along the unit normal an anchor sits off the
// surface, enough to keep the marker visually clear of the mesh.
const anchorOffset = 0.1

// SurfaceFunc returns a plotting evaluator for the surface itself.
// Points outside the sphere of radius maxRadius are clamped onto it;
// maxRadius <= 0 selects DefaultMaxRadius.
func (g *GaussMap) SurfaceFunc(maxRadius float64) func(u, v float64) numeric.Vec3 {
	if maxRadius <= 0 {
		maxRadius = DefaultMaxRadius
	}
	surface := g.Surface
	return func(u, v float64) numeric.Vec3 {
		p := surface.At(u, v)
		if norm := p.Norm(); norm > maxRadius {
			p = p.Scale(maxRadius / norm)
		}
		return p
	}
}

// GaussMapSurfaceFunc returns a two-parameter evaluator tracing the
// Gauss-map image on the unit sphere. It reports false unless the image
// is genuinely two-dimensional.
func (g *GaussMap) GaussMapSurfaceFunc() (func(u, v float64) numeric.Vec3, bool) {
	if g.Kind != Surface2D {
		return nil, false
	}
	normal := g.NormalField
	return func(u, v float64) numeric.Vec3 {
		return normal.At(u, v).Normalize()
	}, true
}

// GaussMapCurveFunc returns a one-parameter evaluator for Gauss-map
// images that collapse to a curve, together with the parameter range to
// trace. The fixed parameter is pinned at 1; the normal direction does
// not depend on it. It reports false for surface and degenerate images.
func (g *GaussMap) GaussMapCurveFunc() (func(t float64) numeric.Vec3, Range, bool) {
	normal := g.NormalField
	switch g.Kind {
	case CurveU:
		return func(t float64) numeric.Vec3 {
			return normal.At(t, 1).Normalize()
		}, g.URange, true
	case CurveV:
		return func(t float64) numeric.Vec3 {
			return normal.At(1, t).Normalize()
		}, g.VRange, true
	}
	return nil, Range{}, false
}

// NormalAnchor is a unit normal placed just off its surface point, ready
// to be drawn as an arrow.
type NormalAnchor struct {
	// Position is the surface point nudged anchorOffset along Direction.
	Position numeric.Vec3
	// Direction is the outward (or pipeline-corrected) unit normal.
	Direction numeric.Vec3
}

// NormalAnchors samples an amount×amount parameter grid and returns a
// normal anchor for each surface point within maxRadius of the origin.
// Clamped points get no anchor: a normal drawn on the clamping sphere
// would not belong to the surface. maxRadius <= 0 selects
// DefaultMaxRadius.
func (g *GaussMap) NormalAnchors(amount int, maxRadius float64) []NormalAnchor {
	if amount < 2 {
		amount = 2
	}
	if maxRadius <= 0 {
		maxRadius = DefaultMaxRadius
	}
	us := linspace(g.URange, amount)
	vs := linspace(g.VRange, amount)
	anchors := make([]NormalAnchor, 0, amount*amount)
	for _, u := range us {
		for _, v := range vs {
			p := g.Surface.At(u, v)
			if p.Norm() > maxRadius {
				continue
			}
			dir := g.NormalField.At(u, v).Normalize()
			anchors = append(anchors, NormalAnchor{
				Position:  p.Add(dir.Scale(anchorOffset)),
				Direction: dir,
			})
		}
	}
	return anchors
}
