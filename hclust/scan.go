// SPDX-License-Identifier: MIT

package hclust

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// pairBest is the closest partner found for one row of the pair scan.
type pairBest struct {
	j     int
	v     float64
	found bool
}

// closestPair scans all pairs i<j of active clusters and returns the pair with
// the smallest linkage. Ties keep the first pair in (i, j) lexicographic order.
//
// With workers > 1 rows are split into contiguous ranges scanned concurrently;
// each row keeps its own first-best partner and the rows are reduced in order,
// which yields exactly the sequential answer. d is only read here.
func closestPair(ctx context.Context, d *DistanceMatrix, link Linkage, active []*Cluster, workers int) (int, int, float64, error) {
	k := len(active)
	rows := make([]pairBest, k)

	scanRow := func(i int) {
		var rb pairBest
		for j := i + 1; j < k; j++ {
			v := link.Distance(d, active[i], active[j])
			if !rb.found || v < rb.v {
				rb = pairBest{j: j, v: v, found: true}
			}
		}
		rows[i] = rb
	}

	if workers <= 1 || k < 2*workers {
		for i := 0; i < k-1; i++ {
			scanRow(i)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		per := (k + workers - 1) / workers
		for start := 0; start < k-1; start += per {
			start := start
			end := min(start+per, k-1)
			g.Go(func() error {
				for i := start; i < end; i++ {
					if err := gctx.Err(); err != nil {
						return err
					}
					scanRow(i)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return 0, 0, 0, err
		}
	}

	bi, bj := 0, 1
	var (
		best  float64
		found bool
	)
	for i := 0; i < k-1; i++ {
		if rows[i].found && (!found || rows[i].v < best) {
			bi, bj, best, found = i, rows[i].j, rows[i].v, true
		}
	}

	return bi, bj, best, nil
}
