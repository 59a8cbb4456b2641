package afli

import "errors"

// Error classification.
//
// Implementations MAY wrap these with additional context. Callers MUST
// classify errors using errors.Is.
var (
	// ErrUnsorted indicates bulk-load data was not strictly sorted by key.
	ErrUnsorted = errors.New("afli: bulk load data not sorted")
	// ErrDuplicate indicates bulk-load data contained a repeated key.
	ErrDuplicate = errors.New("afli: bulk load data contains duplicate key")
)
