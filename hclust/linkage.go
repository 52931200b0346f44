// SPDX-License-Identifier: MIT

package hclust

import (
	"math"
	"sort"
	"strings"
)

// Linkage computes the merge cost between two clusters of any shape
// (leaf/leaf, leaf/internal, internal/internal) from pairwise leaf distances
// held in the top-left block of a DistanceMatrix.
//
// Implementations are stateless, read-only against d and symmetric in a, b.
// Both clusters are reduced to their leaf sets with the iterative traversal
// of LeafIDsInOrder; leaf sets are never empty for clusters built by this package.
type Linkage interface {
	Distance(d *DistanceMatrix, a, b *Cluster) float64
	String() string
}

// Registered linkage names.
const (
	NameAverage  = "average"
	NameComplete = "complete"
	NameSingle   = "single"
	NameWard     = "ward"
)

var linkages = map[string]Linkage{
	NameAverage:  Average{},
	NameComplete: Complete{},
	NameSingle:   Single{},
	NameWard:     Ward{},
}

// LinkageByName returns the standard linkage registered under name (case-insensitive).
func LinkageByName(name string) (Linkage, bool) {
	l, ok := linkages[strings.ToLower(strings.TrimSpace(name))]
	return l, ok
}

// LinkageNames lists the registered linkage names in sorted order.
func LinkageNames() []string {
	out := make([]string, 0, len(linkages))
	for name := range linkages {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Average is the average-distance (UPGMA) linkage: the sum of all pairwise
// leaf distances divided by the number of pairs. For two leaves this is
// exactly one lookup.
type Average struct{}

func (Average) Distance(d *DistanceMatrix, a, b *Cluster) float64 {
	aix, bix := LeafIDsInOrder(a), LeafIDsInOrder(b)

	sum := 0.0
	n := 0
	for _, ai := range aix {
		for _, bi := range bix {
			sum += d.Get(ai, bi)
			n++
		}
	}

	return sum / float64(n)
}

func (Average) String() string { return NameAverage }

// Complete is the maximum-distance linkage.
type Complete struct{}

func (Complete) Distance(d *DistanceMatrix, a, b *Cluster) float64 {
	aix, bix := LeafIDsInOrder(a), LeafIDsInOrder(b)

	md := -math.MaxFloat64
	for _, ai := range aix {
		for _, bi := range bix {
			if v := d.Get(ai, bi); v > md {
				md = v
			}
		}
	}

	return md
}

func (Complete) String() string { return NameComplete }

// Single is the minimum-distance linkage.
type Single struct{}

func (Single) Distance(d *DistanceMatrix, a, b *Cluster) float64 {
	aix, bix := LeafIDsInOrder(a), LeafIDsInOrder(b)

	md := math.MaxFloat64
	for _, ai := range aix {
		for _, bi := range bix {
			if v := d.Get(ai, bi); v < md {
				md = v
			}
		}
	}

	return md
}

func (Single) String() string { return NameSingle }

// Ward is the minimum-variance linkage, recovered from pairwise leaf
// distances (assumed Euclidean):
//
//	ward(A, B) = sqrt(2·|A|·|B|/(|A|+|B|)) · ‖c_A − c_B‖
//	‖c_A − c_B‖² = mean_{a,b} d² − ½·mean_{a,a'} d² − ½·mean_{b,b'} d²
//
// It matches the Lance–Williams recurrence and equals d(i, j) for two leaves.
// Complexity: O((|A|+|B|)²).
type Ward struct{}

func (Ward) Distance(d *DistanceMatrix, a, b *Cluster) float64 {
	aix, bix := LeafIDsInOrder(a), LeafIDsInOrder(b)
	na, nb := float64(len(aix)), float64(len(bix))

	between := sumSquares(d, aix, bix)
	withinA := sumSquares(d, aix, aix)
	withinB := sumSquares(d, bix, bix)

	sq := between/(na*nb) - withinA/(2*na*na) - withinB/(2*nb*nb)
	if sq < 0 { // rounding on near-identical clusters
		sq = 0
	}

	return math.Sqrt(2 * na * nb / (na + nb) * sq)
}

func (Ward) String() string { return NameWard }

// sumSquares returns Σ d(x, y)² over all ordered pairs of xs × ys.
// The diagonal contributes nothing: loadLeaves stores d(i, i) as 0.
func sumSquares(d *DistanceMatrix, xs, ys []int) float64 {
	s := 0.0
	var v float64
	for _, x := range xs {
		for _, y := range ys {
			v = d.Get(x, y)
			s += v * v
		}
	}

	return s
}
