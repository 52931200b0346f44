// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// transposed is a no-copy transpose view over a base Matrix.
// Reads and writes go through to the base with swapped coordinates.
type transposed struct {
	base Matrix
}

var _ Matrix = transposed{}

// T returns the transpose of m as a view: T(m).At(i, j) == m.At(j, i).
// Mutations through the view are visible in m. T(T(m)) returns m itself.
// A nil m yields nil.
// Complexity: O(1).
func T(m Matrix) Matrix {
	if m == nil {
		return nil
	}
	if t, ok := m.(transposed); ok {
		return t.base
	}

	return transposed{base: m}
}

func (t transposed) Rows() int { return t.base.Cols() }
func (t transposed) Cols() int { return t.base.Rows() }

func (t transposed) At(i, j int) (float64, error) {
	v, err := t.base.At(j, i)
	if err != nil {
		return 0, fmt.Errorf("T.At(%d,%d): %w", i, j, err)
	}

	return v, nil
}

func (t transposed) Set(i, j int, v float64) error {
	if err := t.base.Set(j, i, v); err != nil {
		return fmt.Errorf("T.Set(%d,%d): %w", i, j, err)
	}

	return nil
}

// Clone materializes the view into an independent transposed copy.
func (t transposed) Clone() Matrix {
	return transposed{base: t.base.Clone()}
}
