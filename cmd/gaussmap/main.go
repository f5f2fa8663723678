// Command gaussmap derives the Gauss map of a parametric surface: it
// differentiates the parameterization symbolically, orients the normal
// field outward, and reports whether the map's image on the unit
// sphere is a surface, a curve, or a point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gaussmap"
	"gaussmap/expr"
	"gaussmap/input"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gaussmap",
		Short:         "Derive and classify Gauss maps of parametric surfaces",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSurfacesCmd(), newMapCmd())
	return root
}

func newSurfacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "surfaces",
		Short: "List the built-in reference surfaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range gaussmap.Surfaces() {
				image := "surface"
				if p.GaussMap1D {
					image = "curve"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s  u in [%g, %g], v in [%g, %g], gauss map %s\n",
					p.Name, p.Expression,
					p.URange.Min, p.URange.Max, p.VRange.Min, p.VRange.Max, image)
			}
			return nil
		},
	}
}

type mapFlags struct {
	x, y, z                string
	uMin, uMax, vMin, vMax string
	latex, verbose         bool
	anchors                int
}

func newMapCmd() *cobra.Command {
	flags := &mapFlags{}
	cmd := &cobra.Command{
		Use:   "map [surface]",
		Short: "Compute the Gauss map of a named or custom surface",
		Long: `Compute the Gauss map of a surface.

Pass the name of a built-in surface (see "gaussmap surfaces"), or give
a custom parameterization with --x, --y, --z and the range flags, e.g.

  gaussmap map sphere
  gaussmap map --x "cos(u)" --y "sin(u)" --z v --u-min 0 --u-max 2*pi --v-min -1 --v-max 1`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(cmd, args, flags)
		},
	}
	cmd.Flags().StringVar(&flags.x, "x", "", "x component in terms of u and v")
	cmd.Flags().StringVar(&flags.y, "y", "", "y component in terms of u and v")
	cmd.Flags().StringVar(&flags.z, "z", "", "z component in terms of u and v")
	cmd.Flags().StringVar(&flags.uMin, "u-min", "0", "minimum u value")
	cmd.Flags().StringVar(&flags.uMax, "u-max", "1", "maximum u value")
	cmd.Flags().StringVar(&flags.vMin, "v-min", "0", "minimum v value")
	cmd.Flags().StringVar(&flags.vMax, "v-max", "1", "maximum v value")
	cmd.Flags().BoolVar(&flags.latex, "latex", false, "print expressions as LaTeX")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "log pipeline diagnostics")
	cmd.Flags().IntVar(&flags.anchors, "anchors", 0, "sample this many normal anchors per axis")
	return cmd
}

func runMap(cmd *cobra.Command, args []string, flags *mapFlags) error {
	expression, uRange, vRange, err := resolveSurface(args, flags)
	if err != nil {
		return err
	}

	opts := gaussmap.DefaultOptions()
	if flags.verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
		opts.Logger = logger
	}

	gm, err := gaussmap.Compute(expression, uRange, vRange, &opts)
	if err != nil {
		return err
	}

	render := expr.Vector.String
	if flags.latex {
		render = expr.Vector.LaTeX
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "surface:   %s\n", render(gm.Expression))
	fmt.Fprintf(out, "partial u: %s\n", render(gm.PartialU))
	fmt.Fprintf(out, "partial v: %s\n", render(gm.PartialV))
	fmt.Fprintf(out, "normal:    %s\n", render(gm.Normal))
	fmt.Fprintf(out, "inward:    %t\n", gm.Inward)
	fmt.Fprintf(out, "gauss map: %s\n", gm.Kind)

	if flags.anchors > 0 {
		for _, a := range gm.NormalAnchors(flags.anchors, gaussmap.DefaultMaxRadius) {
			fmt.Fprintf(out, "anchor: position (%.4f, %.4f, %.4f) direction (%.4f, %.4f, %.4f)\n",
				a.Position.X, a.Position.Y, a.Position.Z,
				a.Direction.X, a.Direction.Y, a.Direction.Z)
		}
	}
	return nil
}

func resolveSurface(args []string, flags *mapFlags) (expr.Vector, gaussmap.Range, gaussmap.Range, error) {
	if len(args) == 1 {
		p, ok := gaussmap.Lookup(args[0])
		if !ok {
			return expr.Vector{}, gaussmap.Range{}, gaussmap.Range{},
				fmt.Errorf("unknown surface %q, see \"gaussmap surfaces\"", args[0])
		}
		return p.Expression, p.URange, p.VRange, nil
	}
	if flags.x == "" || flags.y == "" || flags.z == "" {
		return expr.Vector{}, gaussmap.Range{}, gaussmap.Range{},
			fmt.Errorf("either name a surface or give all of --x, --y, --z")
	}
	expression, err := input.ParseSurface(flags.x, flags.y, flags.z)
	if err != nil {
		return expr.Vector{}, gaussmap.Range{}, gaussmap.Range{}, err
	}
	uRange, err := parseRange(flags.uMin, flags.uMax, "u_min", "u_max")
	if err != nil {
		return expr.Vector{}, gaussmap.Range{}, gaussmap.Range{}, err
	}
	vRange, err := parseRange(flags.vMin, flags.vMax, "v_min", "v_max")
	if err != nil {
		return expr.Vector{}, gaussmap.Range{}, gaussmap.Range{}, err
	}
	return expression, uRange, vRange, nil
}

func parseRange(minText, maxText, minName, maxName string) (gaussmap.Range, error) {
	min, err := input.ParseBound(minText, minName)
	if err != nil {
		return gaussmap.Range{}, err
	}
	max, err := input.ParseBound(maxText, maxName)
	if err != nil {
		return gaussmap.Range{}, err
	}
	return gaussmap.NewRange(min, max)
}
