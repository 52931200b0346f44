// SPDX-License-Identifier: MIT

package hclust

import "slices"

// Cluster is a node of the strictly binary dendrogram.
//
// Leaves carry ids 0..N-1 in input order; every merge receives the next id,
// so internal ids are >= N and increase in merge order. A parent exclusively
// owns its two children (tree, not DAG). After construction the only mutation
// is SwapChildren, which changes leaf order but never leaf membership.
type Cluster struct {
	id     int
	level  float64
	size   int
	child1 *Cluster
	child2 *Cluster
}

// NewLeaf returns a singleton cluster with the given id, level 0 and size 1.
func NewLeaf(id int) *Cluster {
	return &Cluster{id: id, size: 1}
}

// newParent joins c1 and c2 under a new internal node.
func newParent(id int, level float64, c1, c2 *Cluster) *Cluster {
	return &Cluster{
		id:     id,
		level:  level,
		size:   c1.size + c2.size,
		child1: c1,
		child2: c2,
	}
}

// ID returns the cluster id.
func (c *Cluster) ID() int { return c.id }

// Level returns the merge cost at which this node was created (0 for leaves).
func (c *Cluster) Level() float64 { return c.level }

// Size returns the number of leaf descendants (1 for leaves).
func (c *Cluster) Size() int { return c.size }

// IsParent reports whether c is an internal node.
func (c *Cluster) IsParent() bool { return c.child1 != nil }

// Child1 returns the first child, or nil for a leaf.
func (c *Cluster) Child1() *Cluster { return c.child1 }

// Child2 returns the second child, or nil for a leaf.
func (c *Cluster) Child2() *Cluster { return c.child2 }

// SwapChildren exchanges child1 and child2 in place. No-op on leaves.
func (c *Cluster) SwapChildren() {
	c.child1, c.child2 = c.child2, c.child1
}

// LeafIDs returns the leaf ids under c in left-to-right order.
// See LeafIDsInOrder.
func (c *Cluster) LeafIDs() []int {
	return LeafIDsInOrder(c)
}

// LeafIDsInOrder walks root depth-first with an explicit stack, pushing
// child2 before child1 so that child1's subtree is read first. The result has
// exactly root.Size() ids; for a dendrogram root it is a permutation of 0..N-1.
//
// Complexity: O(size) time, O(depth) stack.
func LeafIDsInOrder(root *Cluster) []int {
	if root == nil {
		return nil
	}

	out := make([]int, 0, root.size)
	stack := []*Cluster{root}
	var c *Cluster
	for len(stack) > 0 {
		c = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !c.IsParent() {
			out = append(out, c.id)
			continue
		}
		stack = append(stack, c.child2, c.child1)
	}

	return out
}

// Walk visits every node pre-order (parent, then child1's subtree, then
// child2's subtree) with an explicit stack. Returning false from fn skips the
// node's subtree.
func (c *Cluster) Walk(fn func(*Cluster) bool) {
	if c == nil || fn == nil {
		return
	}

	stack := []*Cluster{c}
	var n *Cluster
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(n) || !n.IsParent() {
			continue
		}
		stack = append(stack, n.child2, n.child1)
	}
}

// Count returns the total number of nodes under c, c included (2*Size-1).
func (c *Cluster) Count() int {
	n := 0
	c.Walk(func(*Cluster) bool { n++; return true })

	return n
}

// Merge is one row of a flat merge table.
type Merge struct {
	ID     int     // id of the merge node
	Child1 int     // id of the first child
	Child2 int     // id of the second child
	Level  float64 // merge cost
	Size   int     // leaf count of the merge node
}

// Merges flattens the internal nodes under root into a table sorted by id,
// i.e. in the order the merges happened.
func Merges(root *Cluster) []Merge {
	if root == nil || !root.IsParent() {
		return nil
	}

	out := make([]Merge, 0, root.size-1)
	root.Walk(func(n *Cluster) bool {
		if n.IsParent() {
			out = append(out, Merge{
				ID:     n.id,
				Child1: n.child1.id,
				Child2: n.child2.id,
				Level:  n.level,
				Size:   n.size,
			})
		}
		return true
	})
	slices.SortFunc(out, func(a, b Merge) int { return a.ID - b.ID })

	return out
}
