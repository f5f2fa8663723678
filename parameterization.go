package gaussmap

import (
	"fmt"
	"sort"

	"gaussmap/expr"
	"gaussmap/numeric"
)

// Parameterization is a reference surface with its derived quantities
// worked out by hand: the partials, the raw (orientation-uncorrected)
// cross-product normal, and the classification the pipeline should
// reach. The pipeline does not consume these; they exist to seed the
// command line and to pin the symbolic engine down in tests.
type Parameterization struct {
	Name string

	// Expression is the surface (x(u,v), y(u,v), z(u,v)).
	Expression expr.Vector
	// PartialU and PartialV are the exact partial derivatives.
	PartialU, PartialV expr.Vector
	// Normal is the raw cross product ∂u × ∂v, before any orientation
	// correction. When Inward is true the pipeline negates it.
	Normal expr.Vector

	// Surface and NormalField are the compiled forms of Expression and
	// Normal.
	Surface     numeric.Field
	NormalField numeric.Field

	URange, VRange Range

	// GaussMap1D marks surfaces whose unit normal depends on a single
	// parameter, so the Gauss-map image is a curve on the sphere.
	GaussMap1D bool
	// Inward marks surfaces whose raw cross product points toward the
	// origin on balance.
	Inward bool
}

func mustField(v expr.Vector) numeric.Field {
	f, err := numeric.Lambdify(v)
	if err != nil {
		panic(fmt.Sprintf("gaussmap: reference surface does not compile: %v", err))
	}
	return f
}

var surfaceRegistry = func() map[string]Parameterization {
	all := []Parameterization{
		catenoid(),
		cone(),
		cylinder(),
		hyperbolicParaboloid(),
		hyperboloid(),
		monkeySaddle(),
		paraboloid(),
		ringTorus(),
		sphere(),
	}
	byName := make(map[string]Parameterization, len(all))
	for _, p := range all {
		byName[p.Name] = p
	}
	return byName
}()

// Surfaces returns the reference parameterizations sorted by name.
func Surfaces() []Parameterization {
	all := make([]Parameterization, 0, len(surfaceRegistry))
	for _, p := range surfaceRegistry {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Lookup finds a reference parameterization by name.
func Lookup(name string) (Parameterization, bool) {
	p, ok := surfaceRegistry[name]
	return p, ok
}
