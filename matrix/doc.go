// SPDX-License-Identifier: MIT

// Package matrix provides the numeric data matrix consumed by clustering.
//
// The matrix package provides:
//
//   - Matrix, a minimal two-dimensional float64 surface (Rows, Cols, At, Set, Clone).
//   - Dense, a row-major implementation with bound-checked accessors and an
//     optional finite-value policy.
//   - T, a no-copy transpose view, so that clustering columns is clustering
//     rows of the transposed view.
//   - FromGonum / ToGonum bridges to gonum.org/v1/gonum/mat.
//   - Validators shared by callers (nil, empty, square, symmetric, vector length).
//   - Preprocessing: CenterRows, CenterColumns, NormalizeRowsL2.
//
// There is no general matrix arithmetic; convert with ToGonum and use gonum.
//
//	m, _ := matrix.NewDenseFrom([][]float64{
//		{1, 2, 3},
//		{2, 4, 6},
//	})
//	cols := matrix.T(m) // 3×2 view
package matrix
