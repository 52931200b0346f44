// SPDX-License-Identifier: MIT

package distance_test

import (
	"testing"

	"github.com/katalvlaran/hclust/distance"
	"github.com/katalvlaran/hclust/matrix"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom([][]float64{
		{1, 2, 3},
		{1, 5, 3},
		{0, 2, 9},
	})
	require.NoError(t, err)
	return m
}

// TestRowColumnDistance verifies row and column extraction.
func TestRowColumnDistance(t *testing.T) {
	m := sample(t)

	d, err := distance.RowDistance(m, distance.Maximum{}, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, d)

	d, err = distance.ColumnDistance(m, distance.Maximum{}, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 9.0, d) // |0-9|

	// Non-Dense matrices go through At.
	d, err = distance.RowDistance(matrix.T(m), distance.Maximum{}, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 9.0, d)

	_, err = distance.RowDistance(m, distance.Maximum{}, 0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = distance.ColumnDistance(m, distance.Maximum{}, -1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = distance.RowDistance(m, nil, 0, 1)
	require.ErrorIs(t, err, distance.ErrNilMetric)

	_, err = distance.RowDistance(nil, distance.Maximum{}, 0, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestPairwise checks shape, symmetry, diagonal and agreement with RowDistance.
func TestPairwise(t *testing.T) {
	m := sample(t)

	d, err := distance.Pairwise(m, distance.Euclidean{})
	require.NoError(t, err)
	require.Equal(t, 3, d.Rows())
	require.Equal(t, 3, d.Cols())
	require.NoError(t, matrix.ValidateSymmetric(d, 0))

	for i := 0; i < 3; i++ {
		v, _ := d.At(i, i)
		require.Equal(t, 0.0, v)
		for j := 0; j < 3; j++ {
			want, err := distance.RowDistance(m, distance.Euclidean{}, i, j)
			require.NoError(t, err)
			got, _ := d.At(i, j)
			require.Equal(t, want, got)
		}
	}
}

// TestPairwiseCountsEvaluations confirms every ordered pair, diagonal included, is evaluated.
func TestPairwiseCountsEvaluations(t *testing.T) {
	m := sample(t)
	calls := 0
	counting := distance.Func(func(a, b []float64) (float64, error) {
		calls++
		return distance.Manhattan{}.Distance(a, b)
	})

	_, err := distance.Pairwise(m, counting)
	require.NoError(t, err)
	require.Equal(t, 9, calls)
}

// TestPairwiseErrors covers nil inputs and metric failures.
func TestPairwiseErrors(t *testing.T) {
	_, err := distance.Pairwise(nil, distance.Maximum{})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = distance.Pairwise(sample(t), nil)
	require.ErrorIs(t, err, distance.ErrNilMetric)

	failing := distance.Func(func(a, b []float64) (float64, error) {
		return 0, distance.ErrLengthMismatch
	})
	_, err = distance.Pairwise(sample(t), failing)
	require.ErrorIs(t, err, distance.ErrLengthMismatch)
}
