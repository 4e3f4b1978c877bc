// Package fourier computes a fixed-length shape descriptor from a
// closed contour: the contour's convex hull is interpolated to integer
// arc-length spacing, each interpolated point is paired with its
// minimum distance back to the original contour, and the resulting
// complex signal is reduced to magnitude-only Fourier coefficients,
// normalized by the largest of the first n/2 coefficients, DC included.
//
// The descriptor is invariant to the contour's starting point and
// insensitive to small boundary noise, since the hull smooths out local
// concavities before the distance signal is computed.
package fourier
