package nfl

import "errors"

// Error classification.
var (
	// ErrWeightsLoad indicates the weights blob was missing, truncated,
	// or otherwise unreadable. Fatal at NFL construction.
	ErrWeightsLoad = errors.New("nfl: failed to load transform weights")
)
