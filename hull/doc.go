// Package hull computes the 2D convex hull of a point set via the
// classical Graham scan: pick the leftmost-lowest point as pivot, sort
// the rest by polar angle around it (breaking ties by keeping the
// farthest point), then scan with a stack, popping whenever the last
// three points do not form a strict counter-clockwise (left) turn.
//
// Complexity: O(n log n), dominated by the polar-angle sort.
package hull
