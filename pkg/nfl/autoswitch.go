package nfl

import "math"

// sampleBucketCapacity mirrors afli's default bucket size; AutoSwitch
// only needs a rough per-segment capacity to compare raw vs transformed
// crowding, not the tree's actual fitted model.
const sampleBucketCapacity = 8

// AutoSwitch estimates whether running keys through tr meaningfully
// flattens their distribution, and returns the tail_conflicts hint to
// feed into the following bulk load.
//
// It buckets raw keys and transformed keys into the same number of
// equal-width segments and compares how many keys spill past
// sampleBucketCapacity in each. If the transform reduces spillage,
// enabled is true and tailConflicts reflects the transformed estimate;
// otherwise enabled is false and tailConflicts reflects the raw one, so
// a caller that never transforms still gets a tail_conflicts value
// consistent with the raw-key bulk load it will actually perform.
func AutoSwitch(tr Transform, keys []float64) (enabled bool, tailConflicts int) {
	if len(keys) == 0 {
		return false, 0
	}

	rawConflicts := estimateTailConflicts(keys)
	transformedConflicts := estimateTailConflicts(tr.EvaluateBatch(keys))

	if transformedConflicts < rawConflicts {
		return true, transformedConflicts
	}

	return false, rawConflicts
}

// estimateTailConflicts buckets keys into sqrt(n)-ish equal-width
// segments over their observed range and sums, per segment, how far the
// segment's population exceeds sampleBucketCapacity.
func estimateTailConflicts(keys []float64) int {
	lo, hi := keys[0], keys[0]

	for _, k := range keys {
		if k < lo {
			lo = k
		}

		if k > hi {
			hi = k
		}
	}

	segments := nextPow2(int(math.Ceil(math.Sqrt(float64(len(keys))))))
	if segments < 1 {
		segments = 1
	}

	counts := make([]int, segments)
	span := hi - lo

	for _, k := range keys {
		idx := 0

		if span > 0 {
			idx = int(float64(segments) * (k - lo) / span)
			if idx >= segments {
				idx = segments - 1
			}

			if idx < 0 {
				idx = 0
			}
		}

		counts[idx]++
	}

	conflicts := 0

	for _, c := range counts {
		if c > sampleBucketCapacity {
			conflicts += c - sampleBucketCapacity
		}
	}

	return conflicts
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}
