// SPDX-License-Identifier: MIT

package distance

import "math"

// Maximum is the Chebyshev (L-infinity) distance: max_i |a_i - b_i|.
type Maximum struct{}

// Distance returns the largest absolute coordinate difference.
// The accumulator starts at the smallest representable float64 and is refined by scanning.
func (Maximum) Distance(a, b []float64) (float64, error) {
	if err := checkPair("Maximum", a, b); err != nil {
		return 0, err
	}

	d := -math.MaxFloat64
	for i := range a {
		if v := math.Abs(a[i] - b[i]); v > d {
			d = v
		}
	}

	return d, nil
}

func (Maximum) String() string { return NameMaximum }
