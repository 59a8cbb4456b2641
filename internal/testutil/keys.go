// Package testutil holds key-distribution generators used by pkg/nfl's
// test suite.
package testutil

import (
	"math"
	"math/rand"
	"sort"
)

// UniformKeys returns n unique keys drawn uniformly from [0, scale),
// sorted ascending - a fixture for the "no benefit from flattening"
// scenario.
func UniformKeys(seed int64, n int, scale float64) []float64 {
	rng := rand.New(rand.NewSource(seed))

	seen := make(map[float64]struct{}, n)
	keys := make([]float64, 0, n)

	for len(keys) < n {
		k := rng.Float64() * scale
		if _, dup := seen[k]; dup {
			continue
		}

		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	sort.Float64s(keys)

	return keys
}

// LognormalKeys returns n unique keys drawn from exp(N(0,1)), sorted
// ascending - a fixture for the "flattening helps" scenario: a long
// right tail crowds a naive equal-width bucketing, which a squashing
// transform relieves.
func LognormalKeys(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))

	seen := make(map[float64]struct{}, n)
	keys := make([]float64, 0, n)

	for len(keys) < n {
		k := math.Exp(rng.NormFloat64())
		if _, dup := seen[k]; dup {
			continue
		}

		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	sort.Float64s(keys)

	return keys
}
