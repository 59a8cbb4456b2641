package wire

import "errors"

// ErrUnrecognizedOp indicates a trace record carried an op tag outside
// {BulkLoad, Query, Insert, Update, Delete}.
var ErrUnrecognizedOp = errors.New("wire: unrecognized op tag")

// Validate reports ErrUnrecognizedOp if o is not one of the five stable
// op codes.
func (o Op) Validate() error {
	switch o {
	case BulkLoad, Query, Insert, Update, Delete:
		return nil
	default:
		return ErrUnrecognizedOp
	}
}
