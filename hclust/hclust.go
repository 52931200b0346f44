// SPDX-License-Identifier: MIT

// Package hclust - agglomerative clustering entry points.
//
// This file provides the canonical entry points:
//
//   - ClusterMatrix: accept a data matrix, build the N×N leaf distance matrix with the
//     configured metric (rows, or columns via the transpose view), then delegate.
//   - FromDistances: accept a precomputed symmetric leaf distance matrix.
//
// Both run the same pipeline: merge loop → optional heuristic reordering →
// optional optimal leaf-order search → leaf order.
package hclust

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hclust/distance"
	"github.com/katalvlaran/hclust/matrix"
	"go.uber.org/zap"
)

const (
	opCluster       = "ClusterMatrix"
	opFromDistances = "FromDistances"
)

// ClusterMatrix clusters the rows (or columns, see WithAxis) of data.
//
// Contracts:
//   - data must be non-nil with at least one row and one column.
//   - N == 1 yields a single-leaf root; the merge loop is a no-op.
//
// Errors: ErrNilData, matrix.ErrInvalidDimensions, option errors from
// validateOptions, metric errors (e.g. distance.ErrLengthMismatch), and
// context errors.
//
// Complexity: O(N²·C) for the leaf matrix, O(N³) linkage evaluations for the
// merge loop (each linkage costing O(|A|·|B|)), plus O(M²·N) for the optional
// leaf-order search with M = N-1.
func ClusterMatrix(data matrix.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if err := validateOptions(opCluster, o, true); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%s: %w", opCluster, ErrNilData)
	}
	if err := matrix.ValidateNonEmpty(data); err != nil {
		return nil, fmt.Errorf("%s: %w", opCluster, err)
	}

	view := data
	if o.Axis == Columns {
		view = matrix.T(data)
	}
	o.Logger.Debug("computing leaf distances",
		zap.Stringer("axis", o.Axis),
		zap.Int("items", view.Rows()),
		zap.Int("features", view.Cols()),
		zap.String("metric", fmt.Sprint(o.Metric)),
		zap.String("linkage", o.Linkage.String()),
	)

	leaves, err := distance.Pairwise(view, o.Metric)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCluster, err)
	}

	return run(opCluster, leaves, o)
}

// FromDistances clusters N items given their N×N leaf distance matrix.
// The matrix must be square and symmetric within Options.Epsilon; the
// diagonal is ignored and treated as 0.
func FromDistances(dist matrix.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if err := validateOptions(opFromDistances, o, false); err != nil {
		return nil, err
	}
	if err := validateDistances(opFromDistances, dist, o.Epsilon); err != nil {
		return nil, err
	}

	return run(opFromDistances, dist, o)
}

// run executes the shared pipeline over a validated leaf matrix.
func run(op string, leaves matrix.Matrix, o Options) (*Result, error) {
	n := leaves.Rows()
	d, err := NewDistanceMatrix(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = d.loadLeaves(leaves); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	root, err := merge(o.Ctx, d, o.Linkage, o.Workers, o.Logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch o.Reorder {
	case ReorderDistanceSum:
		root = ReorderByDistanceSum(root, d)
	case ReorderMinLeaf:
		root = ReorderByMinLeaf(root)
	}

	if o.OptimalLeafOrder {
		if root, err = optimalLeafOrder(o.Ctx, root, d, o.Workers, o.Logger); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return &Result{Root: root, Order: LeafIDsInOrder(root), Distances: d}, nil
}

// merge runs the agglomerative loop over the leaves already loaded into d.
//
// Implementation:
//   - Stage 1: create N leaves (ids 0..N-1); they form the active list.
//   - Stage 2: while more than one cluster is active:
//     a) find the closest active pair (i<j, first pair wins ties);
//     b) create the merge node with the next id and level = that distance;
//     c) fill its row of d against every cluster created so far, active or not;
//     d) remove j then i from the active list and append the new node.
//
// Complexity: O(N) iterations × O(k²) pair scans + O(N) row fills.
func merge(ctx context.Context, d *DistanceMatrix, link Linkage, workers int, log *zap.Logger) (*Cluster, error) {
	n := d.Leaves()
	all := make([]*Cluster, 0, d.Capacity()) // index == id
	active := make([]*Cluster, n)
	for i := 0; i < n; i++ {
		leaf := NewLeaf(i)
		all = append(all, leaf)
		active[i] = leaf
	}

	var (
		bi, bj int
		level  float64
		err    error
	)
	for len(active) > 1 {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		bi, bj, level, err = closestPair(ctx, d, link, active, workers)
		if err != nil {
			return nil, err
		}

		node := newParent(len(all), level, active[bi], active[bj])
		for p := 0; p < node.id; p++ {
			_ = d.Set(node.id, p, link.Distance(d, node, all[p])) // ids < capacity by construction
		}
		all = append(all, node)

		log.Debug("merge",
			zap.Int("id", node.id),
			zap.Int("child1", node.child1.id),
			zap.Int("child2", node.child2.id),
			zap.Float64("level", level),
			zap.Int("size", node.size),
		)

		// Higher index first so bi stays valid.
		active = append(active[:bj], active[bj+1:]...)
		active = append(active[:bi], active[bi+1:]...)
		active = append(active, node)
	}

	return active[0], nil
}
