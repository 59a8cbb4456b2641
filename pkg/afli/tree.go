package afli

import "sort"

// AFLI is the root holder of an adaptive, model-driven tree index. It
// supports one-shot bulk construction and batched point operations:
// Find, Insert, Update, Remove.
type AFLI[V any] struct {
	root *node[V]
	cfg  Config

	// resolved caches cfg with implementation defaults/auto values
	// filled in, so every node built over the tree's lifetime (bulk
	// load, split, single-key insert) agrees on the same BucketSize.
	resolved Config
}

// New creates an empty AFLI with the given configuration. BulkLoad is
// optional: before any data is loaded, Find/Update/Remove report the key
// as absent, and the first Insert seeds a one-slot root.
func New[V any](cfg Config) *AFLI[V] {
	return &AFLI[V]{cfg: cfg, resolved: cfg.resolve(0)}
}

// BulkLoad constructs the tree from data, which must be strictly sorted
// ascending by Key with no duplicates. Returns ErrUnsorted or
// ErrDuplicate if the precondition is violated.
func (t *AFLI[V]) BulkLoad(data []Entry[V]) error {
	return t.BulkLoadWithHint(data, 0)
}

// BulkLoadWithHint is BulkLoad with an additional tailConflicts hint: an
// estimate of residual collisions expected near the top of the tree.
// A positive hint is added to the resolved AggregateSize, which is the
// minimum fan-out of every Node built for this tree (the root, its
// children, and Nodes created by later splits), not of the root alone.
func (t *AFLI[V]) BulkLoadWithHint(data []Entry[V], tailConflicts int) error {
	if err := validateSorted(data); err != nil {
		return err
	}

	cfg := t.cfg.resolve(len(data))
	if tailConflicts > 0 {
		cfg.AggregateSize += tailConflicts
	}

	t.resolved = cfg

	if len(data) == 0 {
		t.root = emptyNode[V]()

		return nil
	}

	t.root = buildNode(data, cfg)

	return nil
}

// emptyNode returns a trivial one-slot Node used to seed an index with
// no keys yet (either an empty bulk load, or the first Insert into a
// fresh AFLI).
func emptyNode[V any]() *node[V] {
	return &node[V]{
		model:     model{size: 1},
		slots:     make([]slot[V], 1),
		conflicts: make([]float64, 1),
	}
}

// BulkLoadUnordered builds the tree from data without requiring it be
// presorted, and tolerates exact key collisions (keeping the first
// occurrence) rather than failing.
//
// This exists for [nfl.NFL]: a transform is monotone by construction but
// not guaranteed strictly so, so the transformed keys it hands to AFLI
// may not be in strictly ascending order even though the original keys
// were. AFLI's correctness does not depend on presorted input - only
// BulkLoad's documented contract does - so this path sorts a defensive
// copy internally instead of rejecting it.
func (t *AFLI[V]) BulkLoadUnordered(data []Entry[V], tailConflicts int) error {
	cp := make([]Entry[V], len(data))
	copy(cp, data)

	sort.SliceStable(cp, func(i, j int) bool { return cp[i].Key < cp[j].Key })

	deduped := cp[:0]

	for i, e := range cp {
		if i > 0 && e.Key == deduped[len(deduped)-1].Key {
			continue
		}

		deduped = append(deduped, e)
	}

	cfg := t.cfg.resolve(len(deduped))
	if tailConflicts > 0 {
		cfg.AggregateSize += tailConflicts
	}

	t.resolved = cfg

	if len(deduped) == 0 {
		t.root = emptyNode[V]()

		return nil
	}

	t.root = buildNode(deduped, cfg)

	return nil
}

func validateSorted[V any](data []Entry[V]) error {
	for i := 1; i < len(data); i++ {
		switch {
		case data[i].Key < data[i-1].Key:
			return ErrUnsorted
		case data[i].Key == data[i-1].Key:
			return ErrDuplicate
		}
	}

	return nil
}

// Find looks up k, returning an iterator positioned at its value, or at
// end if k is absent.
func (t *AFLI[V]) Find(k Key) ResultIterator[V] {
	if t.root == nil {
		return endIterator[V]()
	}

	if v, ok := t.root.find(k); ok {
		return foundIterator(v)
	}

	return endIterator[V]()
}

// Insert adds (k, v). Returns DuplicateKey without modifying the tree
// if k is already present.
func (t *AFLI[V]) Insert(e Entry[V]) Outcome {
	if t.root == nil {
		t.root = emptyNode[V]()
	}

	return t.root.insert(e.Key, e.Value, t.resolved)
}

// Update replaces k's value, returning true iff k was present.
func (t *AFLI[V]) Update(e Entry[V]) bool {
	if t.root == nil {
		return false
	}

	return t.root.update(e.Key, e.Value)
}

// Remove deletes k, returning the number removed (0 or 1).
func (t *AFLI[V]) Remove(k Key) int {
	if t.root == nil {
		return 0
	}

	if t.root.remove(k) {
		return 1
	}

	return 0
}

// Stats returns byte-accounting for the whole tree.
func (t *AFLI[V]) Stats() Stats {
	if t.root == nil {
		return Stats{}
	}

	return statsOf(t.root)
}

// ModelSize returns the accounted byte size of all Node models.
func (t *AFLI[V]) ModelSize() uint64 {
	return t.Stats().ModelBytes
}

// IndexSize returns the accounted byte size of all slot/Bucket/Child
// storage.
func (t *AFLI[V]) IndexSize() uint64 {
	return t.Stats().IndexBytes
}

