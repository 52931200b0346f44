// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hclust/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetNaNPolicy checks that the finite-value policy is on by default and can be disabled.
func TestSetNaNPolicy(t *testing.T) {
	strict, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))

	// Clone keeps the policy.
	require.NoError(t, loose.Clone().Set(0, 0, math.NaN()))
}

// TestNewDenseFrom covers copying, empty input and ragged rows.
func TestNewDenseFrom(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestRowCol verifies that Row/Col return independent copies.
func TestRowCol(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)

	col, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, col)

	row[0] = 99 // must not leak into m
	v, _ := m.At(1, 0)
	require.Equal(t, 3.0, v)

	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_ = m.Set(0, 0, 1.0)

	clone := m.Clone()
	_ = clone.Set(0, 0, 3.0) // modify the clone, but not the original

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestString checks the debug representation.
func TestString(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2.5}, {0, -1}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2.5]\n[0, -1]\n", m.String())
}
