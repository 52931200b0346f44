// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const ctxGonum = "FromGonum"

// FromGonum copies any gonum mat.Matrix into a new Dense.
//
// Errors:
//   - ErrNilMatrix when g is nil.
//   - ErrInvalidDimensions when g is empty.
//   - ErrNaNInf when g holds non-finite values and the numeric policy rejects them.
//
// Complexity: O(r*c).
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", ctxGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxGonum, err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, g.At(i, j)); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxGonum, err)
			}
		}
	}

	return m, nil
}

// ToGonum returns a gonum *mat.Dense holding a copy of m's data.
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}
