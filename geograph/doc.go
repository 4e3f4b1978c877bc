// Package geograph is the root facade tying the geometric and
// graph-theoretic components of this module into one orchestration
// layer: triangulation, label-pair-graph construction, equitable
// coloring, convex hulls, Fourier shape descriptors, minimum spanning
// trees, and shortest paths. Each exported function is a thin wrapper
// delegating to the package that actually owns the algorithm; this
// package only reshapes inputs/outputs at the boundary between
// integer-labeled geometry and core.Graph's string-keyed vertices.
package geograph
