// Package kvconfig loads the flat "key=value" configuration text format
// used by AFLI and NFL: one pair per whitespace-separated token, unknown
// keys ignored, malformed values fatal.
//
// It does not know about any particular caller's fields - it tokenizes
// a file into a map[string]string, and leaves typed extraction
// (ints, paths, ...) to small helper methods on the returned [Values].
package kvconfig
