// SPDX-License-Identifier: MIT

package hclust

import "fmt"

const (
	opCutHeight = "CutHeight"
	opCutK      = "CutK"
)

// CutHeight turns the dendrogram into flat clusters by keeping together every
// subtree whose merge level is <= h. labels[i] is the cluster of leaf i;
// cluster numbers start at 0 and follow the leaf order, so the leftmost
// cluster is 0.
//
// Errors: ErrNilCluster, ErrNotDendrogramRoot.
// Complexity: O(N).
func CutHeight(root *Cluster, h float64) ([]int, error) {
	if err := validateRoot(opCutHeight, root); err != nil {
		return nil, err
	}

	return label(root, func(c *Cluster) bool { return c.level <= h }), nil
}

// CutK undoes the k-1 last merges (the k-1 highest merge ids) and returns the
// k resulting flat clusters, labelled as in CutHeight. For monotone linkages
// (Average, Complete, Single, Ward) this equals cutting just below the
// (k-1)-th highest level.
//
// Errors: ErrNilCluster, ErrNotDendrogramRoot, ErrBadClusterCount.
// Complexity: O(N).
func CutK(root *Cluster, k int) ([]int, error) {
	if err := validateRoot(opCutK, root); err != nil {
		return nil, err
	}
	n := root.size
	if k < 1 || k > n {
		return nil, fmt.Errorf("%s: k=%d, n=%d: %w", opCutK, k, n, ErrBadClusterCount)
	}

	// Merge ids run n..2n-2; the k-1 last ones are > 2n-1-k.
	limit := 2*n - 1 - k

	return label(root, func(c *Cluster) bool { return c.id <= limit }), nil
}

// label walks root pre-order and starts a new flat cluster at the first node
// (top-down) for which keep reports true; leaves always qualify.
func label(root *Cluster, keep func(*Cluster) bool) []int {
	labels := make([]int, root.size)
	next := 0
	root.Walk(func(c *Cluster) bool {
		if c.IsParent() && !keep(c) {
			return true // descend
		}
		for _, id := range LeafIDsInOrder(c) {
			labels[id] = next
		}
		next++
		return false
	})

	return labels
}
