// SPDX-License-Identifier: MIT

package hclust

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const opOptimalLeafOrder = "OptimalLeafOrder"

// flip combinations per (c1id, c2id) pair, enumerated as (false,false),
// (false,true), (true,false), (true,true) for (flip1, flip2).
const flipCombos = 4

// candidate is the best tree found by one worker.
type candidate struct {
	tree  *Cluster
	sum   float64
	index int // position in the global enumeration order
	found bool
}

// OptimalLeafOrder searches sibling flips of a dendrogram for the leaf order
// whose adjacent-leaf distance sum (AdjacentSum) is largest.
//
// Despite the name this is a bounded local search, not a global optimum: for
// every ordered pair of distinct merge ids (c1id, c2id) in N..2N-2 and every
// combination of two flip flags, the tree is copied top-down and a parent's
// children are swapped in the copy when its child1 has id c1id with flip1 set,
// or its child2 has id c2id with flip2 set (one swap, one level). The
// candidate with the largest sum wins; ties keep the first one enumerated.
// Since the (false, false) candidate reproduces the input order, the objective
// never decreases. With N-1 <= 1 merges the input root is returned unchanged.
//
// The input tree is never modified. workers > 1 evaluates c1id ranges
// concurrently with an identical result. ctx is checked once per c1id.
//
// Errors: ErrNilCluster, ErrNilDistances, ErrNotDendrogramRoot, context errors.
//
// Complexity: O(M²·N) time with M = N-1, O(N) extra space per worker.
func OptimalLeafOrder(ctx context.Context, root *Cluster, d *DistanceMatrix, workers int) (*Cluster, error) {
	return optimalLeafOrder(ctx, root, d, workers, zap.NewNop())
}

func optimalLeafOrder(ctx context.Context, root *Cluster, d *DistanceMatrix, workers int, log *zap.Logger) (*Cluster, error) {
	if err := validateRoot(opOptimalLeafOrder, root); err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%s: %w", opOptimalLeafOrder, ErrNilDistances)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	n := root.size
	m := n - 1
	if m <= 1 {
		return root, nil
	}
	first, last := n, 2*n-2

	var best candidate
	if workers <= 1 || m < 2*workers {
		var err error
		if best, err = searchFlips(ctx, root, d, first, last, first, last); err != nil {
			return nil, fmt.Errorf("%s: %w", opOptimalLeafOrder, err)
		}
	} else {
		// Contiguous c1id ranges keep per-worker winners in enumeration order.
		per := (m + workers - 1) / workers
		parts := make([]candidate, 0, workers)
		for lo := first; lo <= last; lo += per {
			parts = append(parts, candidate{})
		}

		g, gctx := errgroup.WithContext(ctx)
		for w := range parts {
			w := w
			lo := first + w*per
			hi := min(lo+per-1, last)
			g.Go(func() error {
				c, err := searchFlips(gctx, root, d, lo, hi, first, last)
				parts[w] = c
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("%s: %w", opOptimalLeafOrder, err)
		}
		for _, c := range parts {
			if c.found && (!best.found || c.sum > best.sum) {
				best = c
			}
		}
	}

	log.Debug("leaf order search",
		zap.Int("merges", m),
		zap.Int("candidates", m*(m-1)*flipCombos),
		zap.Int("winner", best.index),
		zap.Float64("objective", best.sum),
	)

	return best.tree, nil
}

// searchFlips evaluates all candidates with c1id in [lo, hi] and c2id in
// [first, last], c2id != c1id, returning the first candidate with maximal sum.
func searchFlips(ctx context.Context, root *Cluster, d *DistanceMatrix, lo, hi, first, last int) (candidate, error) {
	var best candidate
	m := last - first + 1

	for c1 := lo; c1 <= hi; c1++ {
		if err := ctx.Err(); err != nil {
			return candidate{}, err
		}
		for c2 := first; c2 <= last; c2++ {
			if c2 == c1 {
				continue
			}
			for k := 0; k < flipCombos; k++ {
				tree := copyFlipped(root, c1, k&2 != 0, c2, k&1 != 0)
				sum := AdjacentSum(LeafIDsInOrder(tree), d)
				if !best.found || sum > best.sum {
					best = candidate{
						tree:  tree,
						sum:   sum,
						index: ((c1-first)*m+(c2-first))*flipCombos + k,
						found: true,
					}
				}
			}
		}
	}

	return best, nil
}

// copyFlipped deep-copies root top-down. While copying a parent, its two
// children are swapped in the copy when (flip1 && child1.id == c1) or
// (flip2 && child2.id == c2). The test looks at the source tree's children.
func copyFlipped(root *Cluster, c1 int, flip1 bool, c2 int, flip2 bool) *Cluster {
	type pair struct{ src, dst *Cluster }

	out := &Cluster{id: root.id, level: root.level, size: root.size}
	stack := []pair{{root, out}}
	var p pair
	for len(stack) > 0 {
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !p.src.IsParent() {
			continue
		}

		a, b := p.src.child1, p.src.child2
		ca := &Cluster{id: a.id, level: a.level, size: a.size}
		cb := &Cluster{id: b.id, level: b.level, size: b.size}
		if (flip1 && a.id == c1) || (flip2 && b.id == c2) {
			p.dst.child1, p.dst.child2 = cb, ca
		} else {
			p.dst.child1, p.dst.child2 = ca, cb
		}
		stack = append(stack, pair{a, ca}, pair{b, cb})
	}

	return out
}

// AdjacentSum returns Σ d(order[k], order[k+1]) over consecutive leaves:
// the objective maximized by OptimalLeafOrder.
func AdjacentSum(order []int, d *DistanceMatrix) float64 {
	s := 0.0
	for k := 0; k+1 < len(order); k++ {
		s += d.Get(order[k], order[k+1])
	}

	return s
}
