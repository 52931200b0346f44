// SPDX-License-Identifier: MIT

package distance

import (
	"sort"
	"strings"
)

// Registered metric names.
const (
	NameMaximum            = "maximum"
	NamePearson            = "pearson"
	NamePearsonNonNegative = "pearson-nonnegative"
	NameEuclidean          = "euclidean"
	NameManhattan          = "manhattan"
	NameDTW                = "dtw"
)

// registry maps lower-case names to the standard metrics.
var registry = map[string]Metric{
	NameMaximum:            Maximum{},
	NamePearson:            Pearson{},
	NamePearsonNonNegative: PearsonNonNegative{},
	NameEuclidean:          Euclidean{},
	NameManhattan:          Manhattan{},
	NameDTW:                DTW{},
}

// Lookup returns the standard metric registered under name (case-insensitive).
func Lookup(name string) (Metric, bool) {
	m, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// Names lists the registered metric names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
