// SPDX-License-Identifier: MIT

// Package distance computes pairwise dissimilarities between numeric vectors
// taken from the rows or columns of a data matrix.
//
// Metrics:
//   - Maximum: Chebyshev, max_i |a_i - b_i|
//   - Pearson: 1 - r, clipped into [0, 2]
//   - PearsonNonNegative: 1 - r, clipped below at 0 only
//   - Euclidean, Manhattan
//   - DTW: dynamic time warping over two series, optionally banded
//
// Every metric is a stateless value satisfying Metric, so callers can plug in
// their own implementation (or wrap a plain function with Func).
//
//	d, err := distance.RowDistance(m, distance.Pearson{}, 0, 1)
//	leaves, err := distance.Pairwise(m, distance.Maximum{}) // N×N over rows
//
// Mean and population standard deviation come from gonum's stat package.
package distance
