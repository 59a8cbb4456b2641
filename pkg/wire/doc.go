// Package wire defines the stable operation codes and in-memory request
// record shape used to describe a single indexing operation: Query,
// Insert, Update, Delete, BulkLoad, each carrying a KV.
//
// Trace file parsing and generation, and the benchmark harness loop
// that replays a trace against an index, are out of scope - this
// package only gives the record shape a name so a caller wiring
// AFLI/NFL into its own driver has something to decode traces into.
package wire
