package afli

import "math"

// model is a Node's linear placement function: slot(k) = clamp(round(a*k
// + b), 0, size-1), fitted so that a sorted key range spreads as evenly
// as possible across size slots.
type model struct {
	a, b float64
	size int
}

// modelEpsilon is the smallest key span fitModel divides by, guarding
// against a near-zero denominator when distinct keys lie very close
// together. Ranges of fewer than two keys return before the division.
const modelEpsilon = 1e-9

// fitModel fits a model over a sorted key range [keys[0], keys[len-1]]
// mapping onto `size` slots.
func fitModel(keys []Key, size int) model {
	if size < 1 {
		size = 1
	}

	if len(keys) <= 1 || size == 1 {
		return model{a: 0, b: 0, size: size}
	}

	lo, hi := keys[0], keys[len(keys)-1]

	span := hi - lo
	if span < modelEpsilon {
		span = modelEpsilon
	}

	a := float64(size-1) / span
	b := -a * lo

	return model{a: a, b: b, size: size}
}

// slot computes the placement slot for k, clamped to [0, size-1].
//
// Rounding uses round-half-to-even (math.RoundToEven) so that bulk-load
// placement and subsequent lookups agree on the same slot for the same
// key, regardless of which direction a .5 boundary is approached from.
func (m model) slot(k Key) int {
	raw := math.RoundToEven(m.a*k + m.b)

	if raw < 0 {
		return 0
	}

	if raw > float64(m.size-1) {
		return m.size - 1
	}

	return int(raw)
}
