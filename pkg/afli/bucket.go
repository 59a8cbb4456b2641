package afli

import "sort"

// bucketOutcome is the low-level result of a bucket mutation.
type bucketOutcome int

const (
	bucketInserted bucketOutcome = iota
	bucketReplaced
	bucketOverflow
)

// bucket is a small, sorted, capacity-bounded container for entries that
// collided at the same Node slot. Entries are stored inline in a
// preallocated slice sized to cap at construction, so steady-state
// operation never allocates.
type bucket[V any] struct {
	entries []Entry[V]
}

func newBucket[V any](cap int) *bucket[V] {
	return &bucket[V]{entries: make([]Entry[V], 0, cap)}
}

// find returns the index of k in the bucket via binary search, or
// (-1, false) if absent.
func (b *bucket[V]) find(k Key) (int, bool) {
	i := sort.Search(len(b.entries), func(i int) bool {
		return b.entries[i].Key >= k
	})

	if i < len(b.entries) && b.entries[i].Key == k {
		return i, true
	}

	return -1, false
}

// insert places (k, v). If k is already present its value is replaced
// and bucketReplaced is returned. If the bucket is at capacity and k is
// new, bucketOverflow is returned and the bucket is left unmodified -
// the caller promotes the slot to a child Node.
func (b *bucket[V]) insert(k Key, v V) bucketOutcome {
	i := sort.Search(len(b.entries), func(i int) bool {
		return b.entries[i].Key >= k
	})

	if i < len(b.entries) && b.entries[i].Key == k {
		b.entries[i].Value = v
		return bucketReplaced
	}

	if len(b.entries) == cap(b.entries) {
		return bucketOverflow
	}

	b.entries = append(b.entries, Entry[V]{})
	copy(b.entries[i+1:], b.entries[i:])
	b.entries[i] = Entry[V]{Key: k, Value: v}

	return bucketInserted
}

// update replaces the value for k if present, returning false without
// mutating the bucket if k is absent.
func (b *bucket[V]) update(k Key, v V) bool {
	i, ok := b.find(k)
	if !ok {
		return false
	}

	b.entries[i].Value = v

	return true
}

// remove deletes k if present, returning true on success.
func (b *bucket[V]) remove(k Key) bool {
	i, ok := b.find(k)
	if !ok {
		return false
	}

	copy(b.entries[i:], b.entries[i+1:])
	b.entries = b.entries[:len(b.entries)-1]

	return true
}

// len returns the number of live entries.
func (b *bucket[V]) len() int {
	return len(b.entries)
}
