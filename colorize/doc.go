// Package colorize assigns a proper, balanced coloring to a planar
// graph using a degree-bucket peel order followed by a
// least-used-color assignment pass — a Go rendering of the
// Matula-Shiloach-Tarjan linear-time "6-COLOR" algorithm.
//
// Phase 1 (peel order) repeatedly removes a minimum-degree node from a
// residual copy of the graph, recording removal order. Phase 2 replays
// that order in reverse, coloring each node with whichever available
// color currently has the smallest histogram count, which both
// guarantees properness (every planar graph has a vertex of degree <=5
// at every stage) and tends toward balanced color-class sizes.
//
// Complexity: O((V+E) * c) for c colors, dominated by the degree-bucket
// maintenance and per-node color-availability scan.
package colorize
