package gaussmap_test

import (
	"fmt"
	"math"

	"gaussmap"
	"gaussmap/expr"
)

func ExampleCompute() {
	u, v := expr.S("u"), expr.S("v")
	cylinder := expr.NewVector(expr.CosOf(u), expr.SinOf(u), v)

	gm, err := gaussmap.Compute(cylinder,
		gaussmap.Range{Min: 0, Max: 2 * math.Pi},
		gaussmap.Range{Min: -1, Max: 1},
		nil,
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("normal:", gm.Normal)
	fmt.Println("inward:", gm.Inward)
	fmt.Println("gauss map:", gm.Kind)
	// Output:
	// normal: (cos(u), sin(u), 0)
	// inward: false
	// gauss map: curve in u
}

func ExampleLookup() {
	p, _ := gaussmap.Lookup("cone")
	fmt.Println(p.Expression)
	fmt.Println(p.PartialV)
	// Output:
	// (cos(u)*v, sin(u)*v, v)
	// (cos(u), sin(u), 1)
}
