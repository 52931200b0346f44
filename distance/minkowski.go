// SPDX-License-Identifier: MIT

package distance

import "gonum.org/v1/gonum/floats"

// Euclidean is the L2 distance.
type Euclidean struct{}

// Distance returns sqrt(Σ (a_i - b_i)²).
func (Euclidean) Distance(a, b []float64) (float64, error) {
	if err := checkPair("Euclidean", a, b); err != nil {
		return 0, err
	}

	return floats.Distance(a, b, 2), nil
}

func (Euclidean) String() string { return NameEuclidean }

// Manhattan is the L1 (city-block) distance.
type Manhattan struct{}

// Distance returns Σ |a_i - b_i|.
func (Manhattan) Distance(a, b []float64) (float64, error) {
	if err := checkPair("Manhattan", a, b); err != nil {
		return 0, err
	}

	return floats.Distance(a, b, 1), nil
}

func (Manhattan) String() string { return NameManhattan }
