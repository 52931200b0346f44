// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"
)

// DTW is the Dynamic Time Warping distance between two series, useful when
// rows are time courses that may be shifted or stretched against each other.
//
// Window > 0 limits |i-j| for aligned positions (Sakoe–Chiba band); 0 or a
// negative value means no band. SlopePenalty is added to every insertion or
// deletion step.
//
// Unlike the other metrics the two series may differ in length; only empty
// input is rejected. Only the distance is needed for clustering, so the DP
// keeps two rows and no warping path.
//
// Recurrence:
//
//	D[0][0] = 0, D[i][0] = D[0][j] = +Inf
//	D[i][j] = |a[i-1] - b[j-1]| + min(D[i-1][j]+p, D[i][j-1]+p, D[i-1][j-1])
//
// Complexity: O(n·m) time, O(m) memory.
type DTW struct {
	Window       int
	SlopePenalty float64
}

// Distance returns D[n][m]; +Inf when the band admits no alignment.
func (w DTW) Distance(a, b []float64) (float64, error) {
	const op = "DTW"
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrEmptyVector)
	}
	window := w.Window
	if window <= 0 {
		window = max(n, m)
	}

	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	var i, j int
	for i = 1; i <= n; i++ {
		curr[0] = inf
		for j = 1; j <= m; j++ {
			if absInt(i-j) > window {
				curr[j] = inf
				continue
			}
			best := min(prev[j]+w.SlopePenalty, curr[j-1]+w.SlopePenalty, prev[j-1])
			curr[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
		prev, curr = curr, prev
	}

	return prev[m], nil
}

func (w DTW) String() string { return NameDTW }

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
