// SPDX-License-Identifier: MIT

package hclust

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hclust/matrix"
)

// validateOptions checks internal consistency of Options without looking at data.
// needMetric is false for FromDistances, which never calls the metric.
// Complexity: O(1).
func validateOptions(op string, o Options, needMetric bool) error {
	if o.Linkage == nil {
		return fmt.Errorf("%s: %w", op, ErrNilLinkage)
	}
	if needMetric && o.Metric == nil {
		return fmt.Errorf("%s: %w", op, ErrNilMetric)
	}
	if o.Axis != Rows && o.Axis != Columns {
		return fmt.Errorf("%s: axis %d: %w", op, int(o.Axis), ErrBadAxis)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%s: %w", op, ErrBadWorkers)
	}
	switch o.Reorder {
	case ReorderNone, ReorderDistanceSum, ReorderMinLeaf:
	default:
		return fmt.Errorf("%s: reorder %d: %w", op, int(o.Reorder), ErrBadReorder)
	}
	if math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) {
		return fmt.Errorf("%s: epsilon: %w", op, matrix.ErrNaNInf)
	}

	return nil
}

// validateDistances checks a precomputed leaf distance matrix: non-nil,
// non-empty, square and symmetric within eps.
// Complexity: O(n²).
func validateDistances(op string, dist matrix.Matrix, eps float64) error {
	if dist == nil {
		return fmt.Errorf("%s: %w", op, ErrNilData)
	}
	if err := matrix.ValidateNonEmpty(dist); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := matrix.ValidateSquare(dist); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := matrix.ValidateSymmetric(dist, eps); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// validateRoot checks that root is the root of a full dendrogram over
// root.Size() leaves: its id is 2N-2 (or it is leaf 0 when N == 1).
func validateRoot(op string, root *Cluster) error {
	if root == nil {
		return fmt.Errorf("%s: %w", op, ErrNilCluster)
	}
	if root.id != 2*root.size-2 {
		return fmt.Errorf("%s: id %d with %d leaves: %w", op, root.id, root.size, ErrNotDendrogramRoot)
	}

	return nil
}
