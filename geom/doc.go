// Package geom provides the 2D geometric predicates shared by the rest
// of the module: cross and dot products, turn orientation,
// collinearity within a fixed epsilon, and the exact in-circumcircle
// test used by the Delaunay tree.
//
// All predicates are pure functions over Point values; none allocate or
// hold state. Callers needing integer-valued, reproducible triangulation
// results should quantize coordinates before calling Collinear, per the
// documented epsilon tolerance.
package geom
