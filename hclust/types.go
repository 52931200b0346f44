// SPDX-License-Identifier: MIT

// Package hclust defines options, sentinel errors and result types for
// agglomerative clustering.
package hclust

import (
	"context"
	"errors"

	"github.com/katalvlaran/hclust/distance"
	"github.com/katalvlaran/hclust/matrix"
	"go.uber.org/zap"
)

var (
	// ErrNilData is returned when the data or distance matrix is nil.
	ErrNilData = errors.New("hclust: data matrix is nil")

	// ErrNilLinkage is returned when Options.Linkage is nil.
	ErrNilLinkage = errors.New("hclust: linkage is nil")

	// ErrNilMetric is returned by ClusterMatrix when Options.Metric is nil.
	ErrNilMetric = errors.New("hclust: metric is nil")

	// ErrBadAxis is returned for an Axis other than Rows or Columns.
	ErrBadAxis = errors.New("hclust: unknown axis")

	// ErrBadWorkers is returned when Options.Workers is negative.
	ErrBadWorkers = errors.New("hclust: workers must be >= 0")

	// ErrBadReorder is returned for an unknown Reordering.
	ErrBadReorder = errors.New("hclust: unknown reordering")

	// ErrNilCluster is returned when a nil root is passed to a tree operation.
	ErrNilCluster = errors.New("hclust: cluster is nil")

	// ErrNilDistances is returned when a nil *DistanceMatrix is passed.
	ErrNilDistances = errors.New("hclust: distance matrix is nil")

	// ErrNotDendrogramRoot is returned when a tree operation needs the root of a
	// full dendrogram (leaf ids 0..N-1, merge ids N..2N-2) and got something else.
	ErrNotDendrogramRoot = errors.New("hclust: cluster is not a dendrogram root")

	// ErrBadClusterCount is returned by CutK for k outside [1, N].
	ErrBadClusterCount = errors.New("hclust: cluster count out of range")
)

// Axis selects what is clustered: the rows or the columns of the data matrix.
type Axis int

const (
	// Rows clusters the rows of the data matrix (one item per row).
	Rows Axis = iota

	// Columns clusters the columns; equivalent to Rows on matrix.T(data).
	Columns
)

func (a Axis) String() string {
	switch a {
	case Rows:
		return "rows"
	case Columns:
		return "columns"
	default:
		return "unknown"
	}
}

// Reordering selects a cheap bottom-up child-order heuristic applied to the
// finished tree (before the optimal leaf-order search, when both are enabled).
type Reordering int

const (
	// ReorderNone keeps the merge order (child1 = earlier position in the active list).
	ReorderNone Reordering = iota

	// ReorderDistanceSum applies ReorderByDistanceSum: the child whose leaves
	// have the smaller cumulative leaf-row distance sum goes first.
	ReorderDistanceSum

	// ReorderMinLeaf applies ReorderByMinLeaf: the child containing the
	// smaller leaf id goes first.
	ReorderMinLeaf
)

// Option configures clustering. Use with ClusterMatrix(data, opts...) or FromDistances(dist, opts...).
type Option func(*Options)

// Options holds the clustering configuration.
type Options struct {
	// Ctx allows cancellation; checked once per merge and once per outer step of
	// the leaf-order search. Defaults to context.Background().
	Ctx context.Context

	// Linkage computes the merge cost between clusters. Default Average{}.
	Linkage Linkage

	// Metric computes leaf distances (ClusterMatrix only). Default distance.Pearson{}.
	Metric distance.Metric

	// Axis selects rows or columns (ClusterMatrix only). Default Rows.
	Axis Axis

	// OptimalLeafOrder runs the brute-force flip search on the finished tree.
	OptimalLeafOrder bool

	// Reorder applies a bottom-up heuristic to the finished tree. Default ReorderNone.
	Reorder Reordering

	// Workers parallelizes the nearest-pair scan and the leaf-order search when > 1.
	// 0 and 1 both mean sequential. Results do not depend on Workers.
	Workers int

	// Epsilon is the symmetry tolerance applied by FromDistances. Default matrix.DefaultEpsilon.
	Epsilon float64

	// Logger receives Debug-level progress. Default zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns Options with:
//   - Background context
//   - Average linkage, Pearson metric, Rows axis
//   - no reordering, no optimal leaf order
//   - sequential execution
//   - matrix.DefaultEpsilon symmetry tolerance
//   - a no-op logger
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Linkage: Average{},
		Metric:  distance.Pearson{},
		Axis:    Rows,
		Reorder: ReorderNone,
		Workers: 1,
		Epsilon: matrix.DefaultEpsilon,
		Logger:  zap.NewNop(),
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithLinkage sets the linkage strategy.
func WithLinkage(l Linkage) Option {
	return func(o *Options) { o.Linkage = l }
}

// WithMetric sets the leaf distance metric.
func WithMetric(m distance.Metric) Option {
	return func(o *Options) { o.Metric = m }
}

// WithAxis selects rows or columns.
func WithAxis(a Axis) Option {
	return func(o *Options) { o.Axis = a }
}

// WithOptimalLeafOrder enables or disables the leaf-order search.
func WithOptimalLeafOrder(on bool) Option {
	return func(o *Options) { o.OptimalLeafOrder = on }
}

// WithReorder selects a heuristic reordering.
func WithReorder(r Reordering) Option {
	return func(o *Options) { o.Reorder = r }
}

// WithWorkers sets the degree of parallelism for read-only scans.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithEpsilon sets the symmetry tolerance used by FromDistances.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithLogger sets the logger; nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

// gatherOptions applies user setters over DefaultOptions; nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return o
}

// Result is the outcome of a clustering run.
type Result struct {
	// Root is the dendrogram root (a single leaf when N == 1).
	Root *Cluster

	// Order is LeafIDsInOrder(Root): the leaf permutation for display.
	Order []int

	// Distances holds leaf distances and every linkage value computed during merging.
	Distances *DistanceMatrix
}
