package gaussmap

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gaussmap/expr"
	"gaussmap/numeric"
)

var (
	// ErrFreeSymbol reports a surface expression over variables other
	// than u and v — a contract violation by the expression source.
	ErrFreeSymbol = errors.New("gaussmap: expression has a free symbol besides u and v")
	// ErrDifferentiation reports an expression with no closed-form
	// partial derivatives.
	ErrDifferentiation = errors.New("gaussmap: expression is not differentiable in closed form")
)

// MapKind classifies the image of a surface's Gauss map.
type MapKind int

const (
	// Surface2D: the unit normal varies with both parameters.
	Surface2D MapKind = iota
	// CurveU: the unit normal depends on u only.
	CurveU
	// CurveV: the unit normal depends on v only.
	CurveV
	// Degenerate: the unit normal is constant over the sampled grid; no
	// Gauss-map evaluator is produced.
	Degenerate
)

func (k MapKind) String() string {
	switch k {
	case Surface2D:
		return "surface"
	case CurveU:
		return "curve in u"
	case CurveV:
		return "curve in v"
	case Degenerate:
		return "degenerate"
	}
	return fmt.Sprintf("MapKind(%d)", int(k))
}

// Options configures the pipeline. The zero Options and a nil *Options
// both mean: no logging, 20×20 orientation grid.
type Options struct {
	// Logger receives human-readable diagnostics about the derived
	// expressions and classifier decisions. Nil disables logging.
	Logger *zap.Logger
	// USamples and VSamples set the orientation-vote grid resolution.
	USamples, VSamples int
}

// DefaultOptions returns the canonical pipeline configuration.
func DefaultOptions() Options {
	return Options{
		Logger:   zap.NewNop(),
		USamples: defaultOrientationSamples,
		VSamples: defaultOrientationSamples,
	}
}

func (o *Options) normalized() Options {
	opts := DefaultOptions()
	if o == nil {
		return opts
	}
	if o.Logger != nil {
		opts.Logger = o.Logger
	}
	if o.USamples > 0 {
		opts.USamples = o.USamples
	}
	if o.VSamples > 0 {
		opts.VSamples = o.VSamples
	}
	return opts
}

// GaussMap bundles everything the pipeline derives from one surface
// expression. It is immutable once constructed.
type GaussMap struct {
	// Expression is the surface itself: (x(u,v), y(u,v), z(u,v)).
	Expression expr.Vector
	// PartialU and PartialV are the exact symbolic partial derivatives.
	PartialU, PartialV expr.Vector
	// Normal is the orientation-corrected cross product ∂u × ∂v. It is
	// not unit length; evaluators normalize per numeric sample.
	Normal expr.Vector

	// Surface and NormalField are the compiled numeric counterparts of
	// Expression and Normal.
	Surface     numeric.Field
	NormalField numeric.Field

	URange, VRange Range

	// Inward records whether the raw cross product pointed toward the
	// origin on balance, i.e. whether Normal is the negated raw normal.
	Inward bool
	// Kind classifies the Gauss-map image.
	Kind MapKind
}

// ComputePartials differentiates a surface expression component-wise with
// respect to u and then v, exactly and in closed form. No finite
// differences: the partials feed further symbolic manipulation.
func ComputePartials(expression expr.Vector) (partialU, partialV expr.Vector, err error) {
	partialU = expression.Diff(numeric.ParamU)
	partialV = expression.Diff(numeric.ParamV)
	for _, vec := range []expr.Vector{partialU, partialV} {
		for _, component := range []expr.Expr{vec.X, vec.Y, vec.Z} {
			if expr.HasDerivativeMarker(component) {
				return expr.Vector{}, expr.Vector{}, fmt.Errorf("%w: %s", ErrDifferentiation, component)
			}
		}
	}
	return partialU, partialV, nil
}

// Compute runs the full symbolic-to-numeric pipeline:
//
//	expression → partials → raw normal → orientation-corrected normal
//	           → degeneracy classification → numeric evaluators.
//
// The surface expression must use exactly the free variables u and v
// (fewer is fine). Classification is statistical: it samples finite
// grids, so pathological parameter values inside the ranges can
// misclassify orientation or degeneracy.
func Compute(expression expr.Vector, uRange, vRange Range, o *Options) (*GaussMap, error) {
	opts := o.normalized()
	log := opts.Logger

	for name := range expression.FreeSymbols() {
		if name != numeric.ParamU && name != numeric.ParamV {
			return nil, fmt.Errorf("%w: %s", ErrFreeSymbol, name)
		}
	}
	if uRange.Min > uRange.Max {
		return nil, fmt.Errorf("%w: u in [%g, %g]", ErrRange, uRange.Min, uRange.Max)
	}
	if vRange.Min > vRange.Max {
		return nil, fmt.Errorf("%w: v in [%g, %g]", ErrRange, vRange.Min, vRange.Max)
	}

	partialU, partialV, err := ComputePartials(expression)
	if err != nil {
		return nil, err
	}
	normal := partialU.Cross(partialV).DeepSimplify()

	surfaceField, err := numeric.Lambdify(expression)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	normalField, err := numeric.Lambdify(normal)
	if err != nil {
		return nil, fmt.Errorf("normal: %w", err)
	}

	inward := IsInwardFieldGrid(surfaceField, normalField, uRange, vRange, opts.USamples, opts.VSamples)
	if inward {
		normal = normal.Neg()
		normalField, err = numeric.Lambdify(normal)
		if err != nil {
			return nil, fmt.Errorf("negated normal: %w", err)
		}
	}

	log.Info("derived normal field",
		zap.Stringer("expression", expression),
		zap.Stringer("partial_u", partialU),
		zap.Stringer("partial_v", partialV),
		zap.Stringer("normal", normal),
		zap.Bool("inward", inward),
	)

	// Degeneracy runs on the symbolically normalized field so that pure
	// magnitude variation does not masquerade as a 2D image; rendering
	// keeps the unnormalized field and normalizes per sample instead.
	unitNormalField, err := numeric.Lambdify(normal.Unit())
	if err != nil {
		return nil, fmt.Errorf("unit normal: %w", err)
	}

	isU := IsUFunction(unitNormalField, uRange, vRange)
	isV := IsVFunction(unitNormalField, uRange, vRange)
	var kind MapKind
	switch {
	case isU && isV:
		kind = Surface2D
	case isU:
		kind = CurveU
	case isV:
		kind = CurveV
	default:
		kind = Degenerate
	}
	log.Info("classified gauss map", zap.Stringer("kind", kind))

	return &GaussMap{
		Expression:  expression,
		PartialU:    partialU,
		PartialV:    partialV,
		Normal:      normal,
		Surface:     surfaceField,
		NormalField: normalField,
		URange:      uRange,
		VRange:      vRange,
		Inward:      inward,
		Kind:        kind,
	}, nil
}

// ComputeMatrix accepts the column-matrix representation of the surface
// expression; the two forms are interchangeable.
func ComputeMatrix(m *expr.Matrix, uRange, vRange Range, o *Options) (*GaussMap, error) {
	expression, err := expr.VectorFromMatrix(m)
	if err != nil {
		return nil, err
	}
	return Compute(expression, uRange, vRange, o)
}
