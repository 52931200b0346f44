// SPDX-License-Identifier: MIT

package hclust_test

import (
	"testing"

	"github.com/katalvlaran/hclust/hclust"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorderByMinLeaf(t *testing.T) {
	res, err := hclust.FromDistances(dense(t, threeItems))
	require.NoError(t, err)
	require.Equal(t, []int{2, 0, 1}, res.Order)

	root := hclust.ReorderByMinLeaf(res.Root)
	assert.Same(t, res.Root, root)
	assert.Equal(t, []int{0, 1, 2}, hclust.LeafIDsInOrder(root))

	// Every internal node ends up with the smaller minimum leaf on the left.
	res, err = hclust.FromDistances(randomDistances(t, 12, 5))
	require.NoError(t, err)
	hclust.ReorderByMinLeaf(res.Root)
	res.Root.Walk(func(c *hclust.Cluster) bool {
		if c.IsParent() {
			assert.Less(t, minOf(c.Child1().LeafIDs()), minOf(c.Child2().LeafIDs()))
		}
		return true
	})
	assert.Equal(t, 0, hclust.LeafIDsInOrder(res.Root)[0])
}

func TestReorderByDistanceSum(t *testing.T) {
	// Row sums: leaf 0 → 6, leaf 1 → 5, leaf 2 → 9.
	res, err := hclust.FromDistances(dense(t, threeItems))
	require.NoError(t, err)

	root := hclust.ReorderByDistanceSum(res.Root, res.Distances)
	assert.Equal(t, []int{2, 1, 0}, hclust.LeafIDsInOrder(root))
	merges := hclust.Merges(root)
	assert.Equal(t, 1, merges[0].Child1)
	assert.Equal(t, 0, merges[0].Child2)
}

// TestFromDistances_IgnoresDiagonal gives the leaves large, unequal
// self-distances; weights, merge levels and stored rows must not change.
func TestFromDistances_IgnoresDiagonal(t *testing.T) {
	noisy := [][]float64{
		{100, 1, 5},
		{1, 300, 4},
		{5, 4, 0},
	}
	res, err := hclust.FromDistances(dense(t, noisy), hclust.WithReorder(hclust.ReorderDistanceSum))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, res.Order)

	for _, link := range []hclust.Linkage{hclust.Average{}, hclust.Complete{}, hclust.Single{}, hclust.Ward{}} {
		got, err := hclust.FromDistances(dense(t, noisy), hclust.WithLinkage(link))
		require.NoError(t, err, link.String())
		want, err := hclust.FromDistances(dense(t, threeItems), hclust.WithLinkage(link))
		require.NoError(t, err, link.String())

		gm, wm := hclust.Merges(got.Root), hclust.Merges(want.Root)
		require.Len(t, gm, len(wm))
		for k := range wm {
			assert.Equal(t, wm[k].Level, gm[k].Level, "%s merge %d", link, k)
		}
		for i := 0; i < 3; i++ {
			assert.Zero(t, got.Distances.Get(i, i), "%s d(%d,%d)", link, i, i)
		}
	}
}

func TestReorderNilSafe(t *testing.T) {
	assert.Nil(t, hclust.ReorderByMinLeaf(nil))
	assert.Nil(t, hclust.ReorderByDistanceSum(nil, nil))

	leaf := hclust.NewLeaf(0)
	assert.Same(t, leaf, hclust.ReorderByDistanceSum(leaf, nil))
}

func minOf(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		m = min(m, x)
	}
	return m
}
