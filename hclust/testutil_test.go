// SPDX-License-Identifier: MIT

package hclust_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hclust/distance"
	"github.com/katalvlaran/hclust/hclust"
	"github.com/katalvlaran/hclust/matrix"
	"github.com/stretchr/testify/require"
)

// threeItems is the 3-leaf scenario: D(0,1)=1, D(0,2)=5, D(1,2)=4.
var threeItems = [][]float64{
	{0, 1, 5},
	{1, 0, 4},
	{5, 4, 0},
}

// fourItems is the 4-leaf scenario used with Complete linkage.
var fourItems = [][]float64{
	{0, 2, 6, 10},
	{2, 0, 5, 9},
	{6, 5, 0, 4},
	{10, 9, 4, 0},
}

func dense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	return m
}

// randomDistances returns a symmetric n×n matrix with zero diagonal and
// distinct positive off-diagonal entries drawn from a fixed seed.
func randomDistances(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := 1 + rng.Float64()*9
			rows[i][j], rows[j][i] = v, v
		}
	}
	return dense(t, rows)
}

// randomData returns an n×dims data matrix from a fixed seed.
func randomData(t testing.TB, n, dims int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, dims)
		for j := range rows[i] {
			rows[i][j] = rng.NormFloat64()
		}
	}
	return dense(t, rows)
}

// pointDistances returns Euclidean distances between n random 3-d points.
func pointDistances(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	d, err := distance.Pairwise(randomData(t, n, 3, seed), distance.Euclidean{})
	require.NoError(t, err)
	return d
}

// requirePermutation asserts order is a permutation of 0..n-1.
func requirePermutation(t testing.TB, order []int, n int) {
	t.Helper()
	require.Len(t, order, n)
	seen := make([]bool, n)
	for _, id := range order {
		require.GreaterOrEqual(t, id, 0)
		require.Less(t, id, n)
		require.False(t, seen[id], "duplicate leaf %d", id)
		seen[id] = true
	}
}

// requireSameTree asserts two dendrograms have identical merges and leaf order.
func requireSameTree(t testing.TB, a, b *hclust.Cluster) {
	t.Helper()
	require.Equal(t, hclust.Merges(a), hclust.Merges(b))
	require.Equal(t, hclust.LeafIDsInOrder(a), hclust.LeafIDsInOrder(b))
}
