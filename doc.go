// Package gaussmap derives the Gauss map of a parametric surface.
//
// Given a symbolic parameterization (x(u,v), y(u,v), z(u,v)), the
// pipeline computes the exact partial derivatives, crosses them into a
// normal field, flips the field outward when a grid vote says it
// points toward the origin, and classifies the image of the unit
// normal on the sphere: a patch of surface, a curve in one parameter,
// or a single point. The result carries both the symbolic expressions
// and compiled numeric evaluators ready for plotting.
package gaussmap
