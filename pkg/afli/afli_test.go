package afli

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func entries(pairs ...[2]float64) []Entry[int] {
	out := make([]Entry[int], len(pairs))
	for i, p := range pairs {
		out[i] = Entry[int]{Key: p[0], Value: int(p[1])}
	}

	return out
}

// S1 - Bulk + point lookup.
func TestBulkLoadAndFind(t *testing.T) {
	tree := New[int](Config{})
	require.NoError(t, tree.BulkLoad(entries([2]float64{1.0, 10}, [2]float64{2.0, 20}, [2]float64{3.0, 30})))

	it := tree.Find(2.0)
	require.False(t, it.IsEnd())
	require.Equal(t, 20, it.Value())

	require.True(t, tree.Find(2.5).IsEnd())
}

// S2 - Insert triggering bucket fill then overflow to Child.
func TestInsertBucketFillThenSplit(t *testing.T) {
	tree := New[int](Config{BucketSize: 2})
	require.NoError(t, tree.BulkLoad(entries([2]float64{0.0, 0}, [2]float64{100.0, 100})))

	require.Equal(t, Inserted, tree.Insert(Entry[int]{Key: 50.0, Value: 50}))
	require.Equal(t, Inserted, tree.Insert(Entry[int]{Key: 50.5, Value: 55}))
	require.Equal(t, Inserted, tree.Insert(Entry[int]{Key: 50.25, Value: 52}))

	for _, want := range entries(
		[2]float64{0.0, 0}, [2]float64{100.0, 100},
		[2]float64{50.0, 50}, [2]float64{50.5, 55}, [2]float64{50.25, 52},
	) {
		it := tree.Find(want.Key)
		require.False(t, it.IsEnd(), "key %v should be findable", want.Key)
		require.Equal(t, want.Value, it.Value())
	}
}

// S3 - Update vs insert distinction.
func TestUpdateVsInsert(t *testing.T) {
	tree := New[int](Config{})
	require.NoError(t, tree.BulkLoad(entries([2]float64{1.0, 10})))

	require.True(t, tree.Update(Entry[int]{Key: 1.0, Value: 11}))
	require.Equal(t, 11, tree.Find(1.0).Value())

	require.False(t, tree.Update(Entry[int]{Key: 2.0, Value: 20}))
	require.True(t, tree.Find(2.0).IsEnd())
}

// S4 - Remove then reinsert.
func TestRemoveThenReinsert(t *testing.T) {
	tree := New[int](Config{})
	require.NoError(t, tree.BulkLoad(entries([2]float64{1.0, 10}, [2]float64{2.0, 20})))

	require.Equal(t, 1, tree.Remove(1.0))
	require.True(t, tree.Find(1.0).IsEnd())

	require.Equal(t, Inserted, tree.Insert(Entry[int]{Key: 1.0, Value: 99}))
	require.Equal(t, 99, tree.Find(1.0).Value())
}

func TestInsertDuplicateIsNonFatalAndDoesNotMutate(t *testing.T) {
	tree := New[int](Config{})
	require.NoError(t, tree.BulkLoad(entries([2]float64{1.0, 10})))

	require.Equal(t, DuplicateKey, tree.Insert(Entry[int]{Key: 1.0, Value: 999}))
	require.Equal(t, 10, tree.Find(1.0).Value())
}

func TestBulkLoadRejectsUnsortedAndDuplicate(t *testing.T) {
	tree := New[int](Config{})

	err := tree.BulkLoad(entries([2]float64{2.0, 1}, [2]float64{1.0, 2}))
	require.ErrorIs(t, err, ErrUnsorted)

	err = tree.BulkLoad(entries([2]float64{1.0, 1}, [2]float64{1.0, 2}))
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestEmptyIndexOperations(t *testing.T) {
	tree := New[int](Config{})

	require.True(t, tree.Find(1.0).IsEnd())
	require.False(t, tree.Update(Entry[int]{Key: 1.0, Value: 1}))
	require.Equal(t, 0, tree.Remove(1.0))

	require.Equal(t, Inserted, tree.Insert(Entry[int]{Key: 1.0, Value: 1}))
	require.Equal(t, 1, tree.Find(1.0).Value())
}

// Invariant 2: inserts-into-empty then full removal leaves every key
// absent.
func TestInsertsThenRemoveAllLeavesEmpty(t *testing.T) {
	tree := New[int](Config{BucketSize: 4})

	keys := make([]float64, 0, 500)
	for i := 0; i < 500; i++ {
		k := float64(i) * 1.37
		keys = append(keys, k)
		require.Equal(t, Inserted, tree.Insert(Entry[int]{Key: k, Value: i}))
	}

	for i, k := range keys {
		it := tree.Find(k)
		require.False(t, it.IsEnd())
		require.Equal(t, i, it.Value())
	}

	for _, k := range keys {
		require.Equal(t, 1, tree.Remove(k))
	}

	for _, k := range keys {
		require.True(t, tree.Find(k).IsEnd())
	}
}

// Invariant 3: idempotent update.
func TestIdempotentUpdate(t *testing.T) {
	tree := New[int](Config{})
	require.NoError(t, tree.BulkLoad(entries([2]float64{1.0, 10})))

	require.True(t, tree.Update(Entry[int]{Key: 1.0, Value: 42}))
	require.True(t, tree.Update(Entry[int]{Key: 1.0, Value: 42}))
	require.Equal(t, 42, tree.Find(1.0).Value())
}

// Invariant 5 & 6: bucket ordering and model-domain audit, exercised
// across a random workload that forces splits.
func TestBucketOrderingAndModelDomainAudit(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	const n = 2000

	keySet := make(map[float64]int, n)
	for len(keySet) < n {
		keySet[rng.Float64()*1e6] = 0
	}

	keys := make([]float64, 0, n)
	for k := range keySet {
		keys = append(keys, k)
	}

	sort.Float64s(keys)

	data := make([]Entry[int], len(keys))
	for i, k := range keys {
		data[i] = Entry[int]{Key: k, Value: i}
	}

	tree := New[int](Config{BucketSize: 4})
	require.NoError(t, tree.BulkLoad(data))

	require.True(t, auditModelDomain(tree.rootNode()))
	requireBucketsSorted(t, tree.rootNode())

	// Force further splits via scattered inserts, then re-audit.
	for i := 0; i < 500; i++ {
		k := rng.Float64() * 1e6
		if _, ok := keySet[k]; ok {
			continue
		}

		keySet[k] = 1
		tree.Insert(Entry[int]{Key: k, Value: 10000 + i})
	}

	require.True(t, auditModelDomain(tree.rootNode()))
	requireBucketsSorted(t, tree.rootNode())
}

func requireBucketsSorted[V any](t *testing.T, n *node[V]) {
	t.Helper()

	for i := range n.slots {
		s := &n.slots[i]

		switch s.tag {
		case slotBucket:
			for j := 1; j < len(s.bucket.entries); j++ {
				require.Less(t, s.bucket.entries[j-1].Key, s.bucket.entries[j].Key)
			}
		case slotChild:
			requireBucketsSorted(t, s.child)
		}
	}
}

// Invariant 8: index_size is non-decreasing under inserts.
func TestIndexSizeMonotonicUnderInsert(t *testing.T) {
	tree := New[int](Config{BucketSize: 4})
	require.NoError(t, tree.BulkLoad(entries([2]float64{0.0, 0})))

	prev := tree.IndexSize()

	for i := 1; i < 200; i++ {
		tree.Insert(Entry[int]{Key: float64(i), Value: i})
		cur := tree.IndexSize()
		require.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestStatsString(t *testing.T) {
	tree := New[int](Config{})
	require.NoError(t, tree.BulkLoad(entries([2]float64{1.0, 1}, [2]float64{2.0, 2})))

	s := tree.Stats()
	require.Equal(t, 2, s.LiveEntries)
	require.Contains(t, fmt.Sprint(s), "afli.Stats{")
}

