package kvconfig

import "errors"

// ErrMalformed indicates a recognized key had a value that could not be
// parsed into its expected type: fatal at startup, not recoverable.
var ErrMalformed = errors.New("kvconfig: malformed value")
