package afli

import (
	"fmt"
	"unsafe"

	"github.com/dustin/go-humanize"
)

// Stats reports byte-accounting for an AFLI tree: model_size and
// index_size figures. Figures are accounting estimates - the size a
// from-scratch serialization would need - not a live process RSS
// measurement.
type Stats struct {
	// ModelBytes is the storage used by Node models (the affine
	// coefficients and slot-array sizing).
	ModelBytes uint64
	// IndexBytes is the storage used by slot arrays, Buckets, and
	// Child entries across the whole tree.
	IndexBytes uint64
	// NodeCount is the number of Nodes in the tree (root included).
	NodeCount int
	// LiveEntries is the number of key-value pairs currently stored.
	LiveEntries int
}

// String renders Stats with human-readable byte counts.
func (s Stats) String() string {
	return fmt.Sprintf(
		"afli.Stats{nodes=%d entries=%d model=%s index=%s}",
		s.NodeCount, s.LiveEntries,
		humanize.Bytes(s.ModelBytes), humanize.Bytes(s.IndexBytes),
	)
}

const modelCoeffBytes = uint64(unsafe.Sizeof(model{}))

func statsOf[V any](n *node[V]) Stats {
	var s Stats

	walkStats(n, &s)

	return s
}

func walkStats[V any](n *node[V], s *Stats) {
	if n == nil {
		return
	}

	s.NodeCount++
	s.ModelBytes += modelCoeffBytes
	s.IndexBytes += uint64(len(n.slots)) * uint64(unsafe.Sizeof(slot[V]{}))
	s.IndexBytes += uint64(len(n.conflicts)) * 8

	for i := range n.slots {
		sl := &n.slots[i]

		switch sl.tag {
		case slotSingle:
			s.LiveEntries++
		case slotBucket:
			s.LiveEntries += sl.bucket.len()
			s.IndexBytes += uint64(cap(sl.bucket.entries)) * uint64(unsafe.Sizeof(Entry[V]{}))
		case slotChild:
			walkStats(sl.child, s)
		}
	}
}
