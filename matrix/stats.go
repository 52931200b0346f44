// SPDX-License-Identifier: MIT

// Package matrix - preprocessing transforms applied to a data matrix before
// distances are computed (centering, row normalization).
//
// Every transform returns a new *Dense and the per-row (or per-column)
// statistic it removed, so callers can undo it. The input is never modified.
//
// Complexity quicksheet: all transforms are O(r*c) time and memory.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	opCenterRows      = "CenterRows"
	opCenterColumns   = "CenterColumns"
	opNormalizeRowsL2 = "NormalizeRowsL2"
)

// CenterRows subtracts each row's mean from that row.
// Errors: ErrNilMatrix, ErrInvalidDimensions.
func CenterRows(x Matrix) (*Dense, []float64, error) {
	out, err := denseCopy(opCenterRows, x)
	if err != nil {
		return nil, nil, err
	}

	means := make([]float64, out.r)
	var row []float64
	for i := 0; i < out.r; i++ {
		row = out.data[i*out.c : (i+1)*out.c]
		means[i] = stat.Mean(row, nil)
		floats.AddConst(-means[i], row)
	}

	return out, means, nil
}

// CenterColumns subtracts each column's mean from that column.
// Errors: ErrNilMatrix, ErrInvalidDimensions.
func CenterColumns(x Matrix) (*Dense, []float64, error) {
	out, err := denseCopy(opCenterColumns, x)
	if err != nil {
		return nil, nil, err
	}

	// Stage 1: column sums, accumulated row by row.
	means := make([]float64, out.c)
	for i := 0; i < out.r; i++ {
		floats.Add(means, out.data[i*out.c:(i+1)*out.c])
	}
	floats.Scale(1/float64(out.r), means)

	// Stage 2: broadcast-subtract.
	for i := 0; i < out.r; i++ {
		floats.Sub(out.data[i*out.c:(i+1)*out.c], means)
	}

	return out, means, nil
}

// NormalizeRowsL2 scales every row to unit Euclidean norm. Rows with norm 0
// are left unchanged. The returned slice holds the original norms.
// Errors: ErrNilMatrix, ErrInvalidDimensions.
func NormalizeRowsL2(x Matrix) (*Dense, []float64, error) {
	out, err := denseCopy(opNormalizeRowsL2, x)
	if err != nil {
		return nil, nil, err
	}

	norms := make([]float64, out.r)
	var row []float64
	for i := 0; i < out.r; i++ {
		row = out.data[i*out.c : (i+1)*out.c]
		norms[i] = floats.Norm(row, 2)
		if norms[i] > 0 {
			floats.Scale(1/norms[i], row)
		}
	}

	return out, norms, nil
}

// denseCopy materializes x into a fresh *Dense that keeps x's numeric policy
// when x is itself a *Dense.
func denseCopy(op string, x Matrix) (*Dense, error) {
	if err := ValidateNonEmpty(x); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if d, ok := x.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}

	r, c := x.Rows(), x.Cols()
	out, err := NewDense(r, c, WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = x.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
