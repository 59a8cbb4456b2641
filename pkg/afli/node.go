package afli

// slotTag discriminates the state of a Node's fan-out slot.
type slotTag uint8

const (
	slotEmpty slotTag = iota
	slotSingle
	slotBucket
	slotChild
)

// slot is a tagged variant: {Empty, Single, Bucket, Child}. Only the
// field matching tag is meaningful; this keeps the slot a small,
// cache-friendly union rather than reaching for an interface and
// virtual dispatch.
type slot[V any] struct {
	tag    slotTag
	single Entry[V]
	bucket *bucket[V]
	child  *node[V]
}

// conflictsDecay biases a slot's conflict counter toward recent
// collisions: on every touch the prior count is decayed before the new
// collision is added in.
const conflictsDecay = 0.1

// refitThreshold is the decayed-conflict-count above which a slot's next
// split builds its child with a larger aggregate size, in an attempt to
// reduce future collisions in that region.
const refitThreshold = 4.0

// node is one level of the AFLI tree: a fan-out array of slots plus the
// linear model predicting, for any key, which slot it belongs in.
type node[V any] struct {
	model     model
	slots     []slot[V]
	conflicts []float64
}

// buildNode bulk-builds a Node over a sorted, unique key range. data
// must be sorted strictly ascending by Key.
func buildNode[V any](data []Entry[V], cfg Config) *node[V] {
	size := nodeSize(len(data), cfg)

	keys := make([]Key, len(data))
	for i, e := range data {
		keys[i] = e.Key
	}

	n := &node[V]{
		model:     fitModel(keys, size),
		slots:     make([]slot[V], size),
		conflicts: make([]float64, size),
	}

	n.place(data, cfg)

	return n
}

// nodeSize picks the slot-array size for a range of n keys:
// max(aggregate_size, next_power_of_two(n)).
func nodeSize(n int, cfg Config) int {
	size := nextPow2(n)
	if cfg.AggregateSize > size {
		size = cfg.AggregateSize
	}

	if size < 1 {
		size = 1
	}

	return size
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}

	size := 1
	for size < n {
		size <<= 1
	}

	return size
}

// place assigns each entry in data (sorted by Key) to its modeled slot,
// grouping runs that land on the same slot into Single/Bucket/Child
// states.
func (n *node[V]) place(data []Entry[V], cfg Config) {
	i := 0
	for i < len(data) {
		slotIdx := n.model.slot(data[i].Key)

		j := i + 1
		for j < len(data) && n.model.slot(data[j].Key) == slotIdx {
			j++
		}

		n.placeGroup(slotIdx, data[i:j], cfg)
		i = j
	}
}

func (n *node[V]) placeGroup(slotIdx int, group []Entry[V], cfg Config) {
	switch {
	case len(group) == 1:
		n.slots[slotIdx] = slot[V]{tag: slotSingle, single: group[0]}
	case len(group) <= cfg.BucketSize:
		b := newBucket[V](cfg.BucketSize)
		b.entries = append(b.entries, group...)
		n.slots[slotIdx] = slot[V]{tag: slotBucket, bucket: b}
	default:
		n.slots[slotIdx] = slot[V]{tag: slotChild, child: buildNode(group, cfg)}
	}
}

// find descends the tree looking for k.
func (n *node[V]) find(k Key) (V, bool) {
	i := n.model.slot(k)
	s := &n.slots[i]

	switch s.tag {
	case slotSingle:
		if s.single.Key == k {
			return s.single.Value, true
		}
	case slotBucket:
		if idx, ok := s.bucket.find(k); ok {
			return s.bucket.entries[idx].Value, true
		}
	case slotChild:
		return s.child.find(k)
	}

	var zero V

	return zero, false
}

// insert places (k, v). Duplicate keys are reported via DuplicateKey
// without mutating the tree - the presence check happens here, before
// any delegate mutates, so a duplicate never has a side effect.
func (n *node[V]) insert(k Key, v V, cfg Config) Outcome {
	i := n.model.slot(k)
	s := &n.slots[i]

	switch s.tag {
	case slotEmpty:
		*s = slot[V]{tag: slotSingle, single: Entry[V]{Key: k, Value: v}}
		return Inserted

	case slotSingle:
		if s.single.Key == k {
			return DuplicateKey
		}

		b := newBucket[V](cfg.BucketSize)
		if k < s.single.Key {
			b.entries = append(b.entries, Entry[V]{Key: k, Value: v}, s.single)
		} else {
			b.entries = append(b.entries, s.single, Entry[V]{Key: k, Value: v})
		}

		*s = slot[V]{tag: slotBucket, bucket: b}

		return Inserted

	case slotBucket:
		if _, ok := s.bucket.find(k); ok {
			return DuplicateKey
		}

		switch s.bucket.insert(k, v) {
		case bucketInserted:
			return Inserted
		case bucketOverflow:
			n.split(i, k, v, cfg)
			return Inserted
		default:
			// unreachable: presence was already ruled out above.
			return Inserted
		}

	default: // slotChild
		return s.child.insert(k, v, cfg)
	}
}

// split converts an overflowing bucket slot into a Child Node covering
// the bucket's keys plus the new key.
func (n *node[V]) split(i int, k Key, v V, cfg Config) {
	old := n.slots[i].bucket

	merged := make([]Entry[V], 0, len(old.entries)+1)

	inserted := false

	for _, e := range old.entries {
		if !inserted && k < e.Key {
			merged = append(merged, Entry[V]{Key: k, Value: v})
			inserted = true
		}

		merged = append(merged, e)
	}

	if !inserted {
		merged = append(merged, Entry[V]{Key: k, Value: v})
	}

	n.conflicts[i] = n.conflicts[i]*(1-conflictsDecay) + 1

	childCfg := cfg
	if n.conflicts[i] > refitThreshold {
		childCfg.AggregateSize = cfg.AggregateSize * 2
	}

	n.slots[i] = slot[V]{tag: slotChild, child: buildNode(merged, childCfg)}
}

// update replaces k's value if present, returning false without
// mutating if absent.
func (n *node[V]) update(k Key, v V) bool {
	i := n.model.slot(k)
	s := &n.slots[i]

	switch s.tag {
	case slotSingle:
		if s.single.Key == k {
			s.single.Value = v
			return true
		}

		return false
	case slotBucket:
		return s.bucket.update(k, v)
	case slotChild:
		return s.child.update(k, v)
	default:
		return false
	}
}

// remove deletes k if present, returning true on success. A Bucket that
// drops to a single live entry is demoted back to a Single slot.
func (n *node[V]) remove(k Key) bool {
	i := n.model.slot(k)
	s := &n.slots[i]

	switch s.tag {
	case slotSingle:
		if s.single.Key != k {
			return false
		}

		*s = slot[V]{tag: slotEmpty}

		return true

	case slotBucket:
		if !s.bucket.remove(k) {
			return false
		}

		if s.bucket.len() == 1 {
			*s = slot[V]{tag: slotSingle, single: s.bucket.entries[0]}
		}

		return true

	case slotChild:
		return s.child.remove(k)

	default:
		return false
	}
}
