// Package registry is the keyed store that the data loaders fill and the
// calculation layer reads.
//
// A Registry moves through three states. It starts Empty, accepts any number
// of Register batches while Registering, and becomes Finalized once its
// dependency graph has been built and an evaluation order resolved. There is
// no way back from Finalized: a session that needs different data builds a
// new Registry.
//
// Register is all-or-nothing. Every key in the batch is checked for
// duplicates (inside the batch and against the store) and every meta key is
// checked against the store plus the batch before anything is inserted, and
// the resulting error names every offender, not just the first one found.
//
// Once Finalized, the returned *Finalized view is immutable and may be read
// from any number of goroutines without further locking.
package registry
