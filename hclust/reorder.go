// SPDX-License-Identifier: MIT

package hclust

import "gonum.org/v1/gonum/floats"

// Cheap, non-exhaustive alternatives to OptimalLeafOrder. Both make a single
// bottom-up pass and swap children in place; leaf membership never changes.

// ReorderByDistanceSum orders every internal node so that the child whose
// leaves have the smaller cumulative distance sum comes first. A leaf's
// weight is the sum of its row over the other N-1 leaves of d (the diagonal
// is skipped); a subtree's weight is the sum of its leaves' weights. Equal weights keep the current order.
// Returns root for chaining; nil-safe.
//
// Complexity: O(N²) for the leaf rows + O(N) for the pass.
func ReorderByDistanceSum(root *Cluster, d *DistanceMatrix) *Cluster {
	if root == nil || d == nil {
		return root
	}

	n := d.Leaves()
	rowSum := make([]float64, n)
	var row []float64
	for i := 0; i < n; i++ {
		row = d.data[i*d.size : i*d.size+n]
		rowSum[i] = floats.Sum(row) - row[i]
	}

	weight := make(map[*Cluster]float64, 2*root.size)
	for _, c := range postOrder(root) {
		if !c.IsParent() {
			if c.id < n {
				weight[c] = rowSum[c.id]
			}
			continue
		}
		w1, w2 := weight[c.child1], weight[c.child2]
		if w2 < w1 {
			c.SwapChildren()
		}
		weight[c] = w1 + w2
	}

	return root
}

// ReorderByMinLeaf orders every internal node so that the child containing the
// smaller leaf id comes first. Returns root for chaining; nil-safe.
// Complexity: O(N).
func ReorderByMinLeaf(root *Cluster) *Cluster {
	if root == nil {
		return root
	}

	minLeaf := make(map[*Cluster]int, 2*root.size)
	for _, c := range postOrder(root) {
		if !c.IsParent() {
			minLeaf[c] = c.id
			continue
		}
		m1, m2 := minLeaf[c.child1], minLeaf[c.child2]
		if m2 < m1 {
			c.SwapChildren()
		}
		minLeaf[c] = min(m1, m2)
	}

	return root
}

// postOrder lists the nodes under root so that every node appears after all
// of its descendants (reverse of the explicit-stack pre-order).
func postOrder(root *Cluster) []*Cluster {
	pre := make([]*Cluster, 0, 2*root.size-1)
	root.Walk(func(c *Cluster) bool {
		pre = append(pre, c)
		return true
	})
	for l, r := 0, len(pre)-1; l < r; l, r = l+1, r-1 {
		pre[l], pre[r] = pre[r], pre[l]
	}

	return pre
}
