// SPDX-License-Identifier: MIT

package hclust

import (
	"fmt"

	"github.com/katalvlaran/hclust/matrix"
)

const (
	ctxDMAt  = "At"
	ctxDMSet = "Set"
)

// DistanceMatrix is a symmetric S×S matrix indexed by cluster id, with
// S = 2N-1 fixed at construction (N leaves + N-1 merges). The top-left N×N
// block holds leaf distances; rows for merge ids are filled in as merges occur.
// Entries for ids not created yet are zero and meaningless.
//
// Storage is row-major and flat (offset = i*S + j), like matrix.Dense.
// Set mirrors every write to (j, i).
type DistanceMatrix struct {
	leaves int       // N
	size   int       // S = 2N-1
	data   []float64 // len == S*S
}

var _ matrix.Matrix = (*DistanceMatrix)(nil)

// NewDistanceMatrix allocates a matrix for n leaves at full capacity 2n-1.
// Errors: matrix.ErrInvalidDimensions when n <= 0.
// Complexity: O(n²) memory.
func NewDistanceMatrix(n int) (*DistanceMatrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewDistanceMatrix(%d): %w", n, matrix.ErrInvalidDimensions)
	}
	s := 2*n - 1

	return &DistanceMatrix{leaves: n, size: s, data: make([]float64, s*s)}, nil
}

// Leaves returns N.
func (d *DistanceMatrix) Leaves() int { return d.leaves }

// Capacity returns S = 2N-1.
func (d *DistanceMatrix) Capacity() int { return d.size }

// Rows returns Capacity(); part of matrix.Matrix.
func (d *DistanceMatrix) Rows() int { return d.size }

// Cols returns Capacity(); part of matrix.Matrix.
func (d *DistanceMatrix) Cols() int { return d.size }

// At returns d(i, j) with bounds checking.
func (d *DistanceMatrix) At(i, j int) (float64, error) {
	if !d.inRange(i, j) {
		return 0, fmt.Errorf("DistanceMatrix.%s(%d,%d): %w", ctxDMAt, i, j, matrix.ErrOutOfRange)
	}

	return d.data[i*d.size+j], nil
}

// Set writes v at (i, j) and mirrors it to (j, i).
func (d *DistanceMatrix) Set(i, j int, v float64) error {
	if !d.inRange(i, j) {
		return fmt.Errorf("DistanceMatrix.%s(%d,%d): %w", ctxDMSet, i, j, matrix.ErrOutOfRange)
	}
	d.data[i*d.size+j] = v
	d.data[j*d.size+i] = v

	return nil
}

// Get is the unchecked hot-path read used by linkages. Indices must be valid
// cluster ids; out-of-range ids panic like a slice index.
func (d *DistanceMatrix) Get(i, j int) float64 {
	return d.data[i*d.size+j]
}

// Between returns the distance between two clusters by id.
func (d *DistanceMatrix) Between(a, b *Cluster) float64 {
	return d.Get(a.id, b.id)
}

// Clone returns an independent copy.
func (d *DistanceMatrix) Clone() matrix.Matrix {
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return &DistanceMatrix{leaves: d.leaves, size: d.size, data: buf}
}

// LeafMatrix returns a copy of the top-left N×N leaf block.
func (d *DistanceMatrix) LeafMatrix() *matrix.Dense {
	out, _ := matrix.NewDense(d.leaves, d.leaves, matrix.WithNoValidateNaNInf()) // n > 0 by construction
	for i := 0; i < d.leaves; i++ {
		for j := 0; j < d.leaves; j++ {
			_ = out.Set(i, j, d.data[i*d.size+j])
		}
	}

	return out
}

// loadLeaves copies the N×N block of src into the top-left corner.
// Off-diagonal values are copied as read; symmetry is the caller's
// responsibility. The diagonal is stored as 0 whatever src holds.
func (d *DistanceMatrix) loadLeaves(src matrix.Matrix) error {
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < d.leaves; i++ {
		for j = 0; j < d.leaves; j++ {
			if i == j {
				d.data[i*d.size+j] = 0
				continue
			}
			if v, err = src.At(i, j); err != nil {
				return err
			}
			d.data[i*d.size+j] = v
		}
	}

	return nil
}

func (d *DistanceMatrix) inRange(i, j int) bool {
	return i >= 0 && i < d.size && j >= 0 && j < d.size
}
