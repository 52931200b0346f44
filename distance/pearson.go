// SPDX-License-Identifier: MIT

package distance

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Correlation bounds for 1 - r.
const (
	pearsonMin = 0.0
	pearsonMax = 2.0
)

// Pearson is the correlation distance 1 - r, clipped into [0, 2] to absorb
// floating-point overshoot of r outside [-1, 1].
type Pearson struct{}

// Distance returns bound(1 - r(a, b), 0, 2).
func (Pearson) Distance(a, b []float64) (float64, error) {
	v, err := oneMinusCorrelation("Pearson", a, b)
	if err != nil {
		return 0, err
	}

	return clipPearson(v), nil
}

func (Pearson) String() string { return NamePearson }

// PearsonNonNegative is 1 - r with only the lower side clipped (max(v, 0)).
// Values slightly above 2 are returned as computed.
type PearsonNonNegative struct{}

// Distance returns max(1 - r(a, b), 0).
func (PearsonNonNegative) Distance(a, b []float64) (float64, error) {
	v, err := oneMinusCorrelation("PearsonNonNegative", a, b)
	if err != nil {
		return 0, err
	}

	return clipNonNegative(v), nil
}

func (PearsonNonNegative) String() string { return NamePearsonNonNegative }

// oneMinusCorrelation z-scores both vectors and returns 1 - mean(za*zb).
func oneMinusCorrelation(op string, a, b []float64) (float64, error) {
	if err := checkPair(op, a, b); err != nil {
		return 0, err
	}

	za := ZScore(a)
	zb := ZScore(b)

	return 1 - floats.Dot(za, zb)/float64(len(za)), nil
}

// ZScore returns (x_i - mean) / sd using the population standard deviation.
// When sd is zero the centered values are returned unscaled, so a constant
// vector maps to all zeros.
func ZScore(x []float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}

	mean, sd := stat.PopMeanStdDev(x, nil)
	for i, v := range x {
		out[i] = v - mean
	}
	if sd != 0 {
		floats.Scale(1/sd, out)
	}

	return out
}

// clipPearson clamps 1 - r into [0, 2].
func clipPearson(v float64) float64 { return bound(v, pearsonMin, pearsonMax) }

// clipNonNegative only lifts negative overshoot to 0.
func clipNonNegative(v float64) float64 { return max(v, pearsonMin) }

// bound clamps v into [lo, hi].
func bound(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
