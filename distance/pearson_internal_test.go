// SPDX-License-Identifier: MIT

package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClipPearson_BothSides(t *testing.T) {
	above := math.Nextafter(pearsonMax, 3)
	assert.Equal(t, pearsonMax, clipPearson(above))
	assert.Equal(t, pearsonMax, clipPearson(2.5))
	assert.Equal(t, pearsonMin, clipPearson(-1e-12))
	assert.Equal(t, 1.25, clipPearson(1.25))
}

func TestClipNonNegative_UpperSideUncapped(t *testing.T) {
	above := math.Nextafter(pearsonMax, 3)
	assert.Equal(t, above, clipNonNegative(above))
	assert.Equal(t, 2.0000001, clipNonNegative(2.0000001))
	assert.Equal(t, pearsonMin, clipNonNegative(-1e-12))
	assert.Equal(t, 1.25, clipNonNegative(1.25))
}

// Anti-correlated vectors sit on the upper edge for both variants, which
// must agree up to rounding there.
func TestPearsonVariants_AntiCorrelated(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{4, 3, 2, 1}

	capped, err := Pearson{}.Distance(a, b)
	assert.NoError(t, err)
	raw, err := PearsonNonNegative{}.Distance(a, b)
	assert.NoError(t, err)

	assert.LessOrEqual(t, capped, pearsonMax)
	assert.InDelta(t, 2.0, raw, 1e-12)
	assert.Equal(t, capped, min(raw, pearsonMax))
}
