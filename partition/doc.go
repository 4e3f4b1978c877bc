// Package partition provides two classical graph-partitioning
// operations over core.Graph: extracting a spanning tree rooted at a
// given vertex, and exhaustively searching for the minimum-cost way to
// split a graph's vertices into exactly k non-empty parts.
//
// Neither operation carries novel invariants of its own, and no other
// package of this module calls either of them.
package partition
