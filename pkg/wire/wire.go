package wire

import "github.com/afli-go/afli/pkg/afli"

// Op is a stable operation code, used in traces and in the in-memory
// Request record.
type Op int

const (
	BulkLoad Op = iota
	Query
	Insert
	Update
	Delete
)

// String implements fmt.Stringer.
func (o Op) String() string {
	switch o {
	case BulkLoad:
		return "BulkLoad"
	case Query:
		return "Query"
	case Insert:
		return "Insert"
	case Update:
		return "Update"
	case Delete:
		return "Delete"
	default:
		return "Op(?)"
	}
}

// Record is a single operation plus the KV it carries: a kv pair plus
// an operation tag.
type Record[V any] struct {
	Op Op
	KV afli.Entry[V]
}
