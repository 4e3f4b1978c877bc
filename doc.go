// Package geograph turns a planar set of labeled points — typically the
// connected components of a binary image — into a colored adjacency
// graph, and separately produces Fourier-descriptor shape features from
// a contour and its convex hull.
//
// 🚀 What is geograph?
//
//	A thread-conscious, dependency-light library that brings together:
//
//	  • Delaunay triangulation — a randomized history-DAG Delaunay tree
//	  • Planar graph coloring — balanced, equitable 6-COLOR assignment
//	  • Convex hull + k-d tree — Graham scan and bounded k-NN search
//	  • Fourier shape descriptors — contour/hull distance → DFT magnitudes
//	  • Adjacency graph primitives — BFS/DFS/Dijkstra/Kruskal
//
// ✨ Design
//
//   - Pure computation — no I/O, no blocking, no background goroutines
//   - Sentinel errors — every package exposes errors.Is-able failure modes
//   - Functional options — construction is tunable via With... options
//   - Deterministic — randomized steps (Delaunay batch insertion) accept
//     an explicit seed for reproducible results
//
// Under the hood, everything is organized by concern:
//
//	geom/        — predicates: cross/dot product, orientation, in-circumcircle
//	kdtree/      — 2D k-d tree, bulk build + bounded k-nearest search
//	delaunay/    — randomized incremental Delaunay tree (history DAG)
//	hull/        — Graham-scan convex hull
//	core/        — thread-safe Graph, Vertex, Edge primitives
//	bfs/ dfs/    — graph traversal
//	dijkstra/    — single-source shortest paths
//	prim_kruskal/— minimum spanning tree
//	partition/   — spanning trees and exhaustive partition search
//	colorize/    — equitable planar graph coloring
//	fourier/     — Fourier shape-descriptor pipeline
//	neighbors/   — label-pair extraction (centroids, contour samples, Voronoi rasters)
//	rasterio/    — external raster/contour collaborator interfaces
//	config/      — library-wide numeric tunables
//
// The geograph package itself is a thin facade over these: Triangulate,
// GraphFromLabelPairs, Colorize, ConvexHull, FourierFeatures,
// MinSpanningTree, and ShortestPaths.
//
//	go get github.com/katalvlaran/geograph
package geograph
