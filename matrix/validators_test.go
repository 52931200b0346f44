// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/hclust/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSquare covers square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	sq, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSquare(sq))

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)
}

// TestValidateNonEmpty covers nil and non-empty inputs.
func TestValidateNonEmpty(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateNonEmpty(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNonEmpty(m))
}

// TestValidateVecLen covers nil, wrong and correct lengths.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}

// TestValidateSymmetric is table-driven over shapes, tolerances and asymmetry.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	build := func(rows [][]float64) matrix.Matrix {
		m, err := matrix.NewDenseFrom(rows)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		m       matrix.Matrix
		tol     float64
		wantErr error
	}{
		{"nil", nil, 0, matrix.ErrNilMatrix},
		{"non-square", build([][]float64{{1, 2}}), 0, matrix.ErrNonSquare},
		{"nan tol", build([][]float64{{0}}), math.NaN(), matrix.ErrNaNInf},
		{"1x1", build([][]float64{{5}}), 0, nil},
		{"symmetric", build([][]float64{{0, 2}, {2, 0}}), 0, nil},
		{"within tol", build([][]float64{{0, 2}, {2.0001, 0}}), -1e-3, nil},
		{"asymmetric", build([][]float64{{0, 2}, {3, 0}}), 1e-9, matrix.ErrAsymmetry},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSymmetric(tc.m, tc.tol)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}
