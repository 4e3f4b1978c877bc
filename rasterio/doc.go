// Package rasterio defines the external-collaborator interface this
// module consumes but does not implement: constant-time access to a
// labeled pixel raster (LabeledRaster). The contour-sampling interface
// is neighbors.ContourSampler, which lives in neighbors because it is
// parameterized on neighbors.CC. Concrete raster I/O and pixel-plane
// extraction live outside this module's scope; neighbors.FromVoronoiRaster
// accepts any caller type satisfying LabeledRaster.
package rasterio
