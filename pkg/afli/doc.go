// Package afli provides an in-memory, adaptive, model-driven ordered
// index for numeric keys.
//
// AFLI stores key-value pairs in a tree of Nodes. Each Node owns a
// small linear model that predicts, for any key in its range, which of
// its fan-out slots that key belongs to. A slot holds either nothing, a
// single entry, a small sorted Bucket of collided entries, or a child
// Node for keys that collided past the bucket's capacity.
//
// # Basic usage
//
//	tree := afli.New[int64](afli.Config{BucketSize: 8, AggregateSize: 0})
//	err := tree.BulkLoad(entries) // entries sorted strictly by Key
//
//	it := tree.Find(42)
//	if !it.IsEnd() {
//	    val := it.Value()
//	}
//
// # Concurrency
//
// AFLI is single-threaded and synchronous: callers must serialize their
// own access. Result iterators hold a copy of the value found and do not
// reflect any subsequent mutation.
package afli
