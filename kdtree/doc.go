// Package kdtree implements a 2D k-d tree: a bulk median-split build
// over a point array and a bounded k-nearest-neighbor query using a
// best-first priority queue with splitting-plane pruning.
//
// Complexity:
//
//	– Build: O(n log n) time, O(n) space (median selection per level).
//	– KNN:   O(log n + k) expected time for well-distributed points;
//	  O(n) worst case under adversarial input, same as any k-d tree.
//
// The tree is built once from a point slice and is read-only afterward;
// there is no incremental Insert, matching the bulk-build-then-query
// usage the Fourier and neighbor-extraction pipelines need.
package kdtree
