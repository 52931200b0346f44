// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hclust/matrix"
)

var (
	// ErrLengthMismatch indicates the two vectors differ in length.
	ErrLengthMismatch = errors.New("distance: vectors have different lengths")

	// ErrEmptyVector indicates a zero-length input vector.
	ErrEmptyVector = errors.New("distance: empty vector")

	// ErrNilMetric indicates a nil Metric was passed.
	ErrNilMetric = errors.New("distance: metric is nil")
)

// Metric computes a scalar dissimilarity between two equal-length vectors.
// Implementations must be pure: no retained state between calls.
type Metric interface {
	Distance(a, b []float64) (float64, error)
}

// Func adapts a plain function into a Metric.
type Func func(a, b []float64) (float64, error)

// Distance calls f(a, b).
func (f Func) Distance(a, b []float64) (float64, error) { return f(a, b) }

// checkPair enforces the common metric contract: both vectors non-empty and
// of equal length. A length mismatch matches both ErrLengthMismatch and
// matrix.ErrDimensionMismatch.
func checkPair(op string, a, b []float64) error {
	if len(a) == 0 || len(b) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyVector)
	}
	if err := matrix.ValidateVecLen(b, len(a)); err != nil {
		return fmt.Errorf("%s: %d vs %d: %w: %w", op, len(a), len(b), ErrLengthMismatch, err)
	}

	return nil
}
