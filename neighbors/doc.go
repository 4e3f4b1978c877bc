// Package neighbors extracts label-adjacency graphs from connected
// components using three interchangeable strategies: triangulating CC
// centroids, triangulating a pooled contour sample, or reading
// adjacency directly off a labeled Voronoi raster. All three return the
// same shape, an unordered set of label pairs, so callers can swap
// strategies without touching downstream code.
package neighbors
