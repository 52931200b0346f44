// SPDX-License-Identifier: MIT

// Package hclust builds agglomerative hierarchical clusterings (dendrograms)
// and reorders their leaves for heatmap-style display.
//
// 🚀 Pipeline:
//
//	data matrix ──metric──▶ N×N leaf distances ──merge loop──▶ dendrogram
//	           ──(optional) reordering / optimal leaf order──▶ leaf permutation
//
// ✨ Key features:
//   - pluggable linkages: Average, Complete, Single, Ward (or your own Linkage)
//   - pluggable metrics from package distance (Pearson, Maximum, ...)
//   - row or column clustering (WithAxis) over any matrix.Matrix
//   - brute-force sibling-flip search maximizing the adjacent-leaf distance sum
//   - cheap bottom-up reorderings (by distance sum, by minimum leaf id)
//   - flat clusters via CutHeight / CutK
//   - deterministic: ties break on the first pair scanned; parallel runs
//     (WithWorkers) return the same tree as sequential ones
//
// ⚙️ Usage:
//
//	res, err := hclust.ClusterMatrix(data,
//		hclust.WithLinkage(hclust.Complete{}),
//		hclust.WithMetric(distance.Pearson{}),
//		hclust.WithOptimalLeafOrder(true),
//	)
//	// res.Root: dendrogram root; Level() is the merge height
//	// res.Order: leaf ids in display order
//
// Node ids: leaves are 0..N-1 in input order; merge nodes get N, N+1, ...
// in merge order, so the root of an N-leaf tree has id 2N-2.
//
// Performance: the merge loop evaluates O(N³) linkages and the leaf-order
// search rebuilds the tree O(N²) times; intended for N in the hundreds.
package hclust
