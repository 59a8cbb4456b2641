package nfl

import (
	"unsafe"

	"github.com/afli-go/afli/pkg/afli"
)

// NFL orchestrates AFLI behind an optional key-flattening transform: it
// decides once (at bulk load, via AutoSwitch) whether the transform is
// worth running, then for every later batch of operations runs the
// transform once over the whole batch and dispatches each operation
// against AFLI by batch position: a two-phase transform-then-dispatch
// call shape.
type NFL[V any] struct {
	tree      *afli.AFLI[V]
	transform Transform
	enabled   bool
	batchSize int

	batch       []afli.Entry[V]
	transformed []float64
}

// New constructs an NFL over cfg, loading transform weights from
// cfg.WeightsPath. batchSize is stored as the expected maximum batch
// length; Transform does not check it and allocates buffers sized to
// each batch it is given.
func New[V any](cfg Config, batchSize int) (*NFL[V], error) {
	w, err := LoadWeights(cfg.WeightsPath)
	if err != nil {
		return nil, err
	}

	return &NFL[V]{
		tree:      afli.New[V](afli.Config{BucketSize: cfg.BucketSize, AggregateSize: cfg.AggregateSize}),
		transform: NewTransform(w),
		batchSize: batchSize,
	}, nil
}

// BulkLoad decides whether to enable the transform via AutoSwitch, then
// builds the underlying AFLI from data - transformed, if enabled, via
// [afli.AFLI.BulkLoadUnordered] since the transform is not guaranteed
// strictly order-preserving; raw otherwise.
func (n *NFL[V]) BulkLoad(data []afli.Entry[V]) error {
	keys := make([]float64, len(data))
	for i, e := range data {
		keys[i] = e.Key
	}

	enabled, tailConflicts := AutoSwitch(n.transform, keys)
	n.enabled = enabled

	if !enabled {
		return n.tree.BulkLoadWithHint(data, tailConflicts)
	}

	transformedKeys := n.transform.EvaluateBatch(keys)

	transformed := make([]afli.Entry[V], len(data))
	for i, e := range data {
		transformed[i] = afli.Entry[V]{Key: transformedKeys[i], Value: e.Value}
	}

	return n.tree.BulkLoadUnordered(transformed, tailConflicts)
}

// Transform stages batch for the following Find/Insert/Update/Remove
// calls, which address it by position. When the transform is enabled
// every key in batch is mapped through it up front; otherwise the raw
// keys are staged unchanged.
func (n *NFL[V]) Transform(batch []afli.Entry[V]) {
	n.batch = batch

	keys := make([]float64, len(batch))
	for i, e := range batch {
		keys[i] = e.Key
	}

	if n.enabled {
		n.transformed = n.transform.EvaluateBatch(keys)
	} else {
		n.transformed = keys
	}
}

// Find looks up the i'th staged key. Value-level outcomes are the same
// whether or not the transform is enabled.
func (n *NFL[V]) Find(i int) afli.ResultIterator[V] {
	return n.tree.Find(n.transformed[i])
}

// Insert adds the i'th staged entry.
func (n *NFL[V]) Insert(i int) afli.Outcome {
	return n.tree.Insert(afli.Entry[V]{Key: n.transformed[i], Value: n.batch[i].Value})
}

// Update replaces the i'th staged entry's value.
func (n *NFL[V]) Update(i int) bool {
	return n.tree.Update(afli.Entry[V]{Key: n.transformed[i], Value: n.batch[i].Value})
}

// Remove deletes the i'th staged key.
func (n *NFL[V]) Remove(i int) int {
	return n.tree.Remove(n.transformed[i])
}

// Enabled reports whether BulkLoad decided to run the transform.
func (n *NFL[V]) Enabled() bool {
	return n.enabled
}

// ModelSize is the tree's model bytes plus the transform weights' bytes.
func (n *NFL[V]) ModelSize() uint64 {
	return n.tree.ModelSize() + weightsSize(n.transform.weights)
}

// IndexSize is the tree's index bytes (the transform carries no
// per-entry storage, so this passes straight through).
func (n *NFL[V]) IndexSize() uint64 {
	return n.tree.IndexSize()
}

func weightsSize(w Weights) uint64 {
	var total uint64

	for _, layer := range w.Layers {
		total += uint64(len(layer.W))*uint64(unsafe.Sizeof(float32(0))) +
			uint64(len(layer.B))*uint64(unsafe.Sizeof(float32(0)))
	}

	return total
}
