// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"

	"github.com/katalvlaran/hclust/matrix"
)

const (
	opRowDistance    = "RowDistance"
	opColumnDistance = "ColumnDistance"
	opPairwise       = "Pairwise"
)

// RowDistance extracts rows r1 and r2 of m into temporary vectors and
// returns metric.Distance over them.
//
// Errors: ErrNilMetric, matrix.ErrNilMatrix, matrix.ErrOutOfRange (wrapped),
// plus any error from the metric.
func RowDistance(m matrix.Matrix, metric Metric, r1, r2 int) (float64, error) {
	if err := validate(opRowDistance, m, metric); err != nil {
		return 0, err
	}
	a, err := row(m, r1)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opRowDistance, err)
	}
	b, err := row(m, r2)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opRowDistance, err)
	}

	return metric.Distance(a, b)
}

// ColumnDistance extracts columns c1 and c2 of m into temporary vectors and
// returns metric.Distance over them.
func ColumnDistance(m matrix.Matrix, metric Metric, c1, c2 int) (float64, error) {
	if err := validate(opColumnDistance, m, metric); err != nil {
		return 0, err
	}
	a, err := row(matrix.T(m), c1)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opColumnDistance, err)
	}
	b, err := row(matrix.T(m), c2)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opColumnDistance, err)
	}

	return metric.Distance(a, b)
}

// Pairwise builds the N×N leaf distance matrix over the rows of m
// (N = m.Rows()). For columns, pass matrix.T(m).
//
// The metric is evaluated on every ordered pair (i, j), including i == j;
// no symmetry shortcut is taken. Rows are extracted once up front.
//
// The result allows non-finite values so that metrics returning +Inf
// (e.g. from extreme inputs) are not rejected.
//
// Complexity: O(N² · cost(metric)) time, O(N² + N·C) space.
func Pairwise(m matrix.Matrix, metric Metric) (*matrix.Dense, error) {
	if err := validate(opPairwise, m, metric); err != nil {
		return nil, err
	}
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opPairwise, err)
	}

	n := m.Rows()
	rows := make([][]float64, n)
	var (
		i, j int
		err  error
	)
	for i = 0; i < n; i++ {
		if rows[i], err = row(m, i); err != nil {
			return nil, fmt.Errorf("%s: %w", opPairwise, err)
		}
	}

	out, err := matrix.NewDense(n, n, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPairwise, err)
	}
	var d float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if d, err = metric.Distance(rows[i], rows[j]); err != nil {
				return nil, fmt.Errorf("%s(%d,%d): %w", opPairwise, i, j, err)
			}
			_ = out.Set(i, j, d) // in range by construction
		}
	}

	return out, nil
}

func validate(op string, m matrix.Matrix, metric Metric) error {
	if metric == nil {
		return fmt.Errorf("%s: %w", op, ErrNilMetric)
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// row copies row i of m; *Dense takes the flat-buffer fast path.
func row(m matrix.Matrix, i int) ([]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Row(i)
	}
	if i < 0 || i >= m.Rows() {
		return nil, fmt.Errorf("row %d: %w", i, matrix.ErrOutOfRange)
	}

	out := make([]float64, m.Cols())
	var err error
	for j := range out {
		if out[j], err = m.At(i, j); err != nil {
			return nil, err
		}
	}

	return out, nil
}
