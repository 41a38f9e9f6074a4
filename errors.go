// Package carton provides a minimal document store backed by a single JSON
// file. The file holds one JSON object mapping collection names to arrays of
// records; every record carries a store-assigned UUID under the reserved
// field "id".
//
// Every operation is a full read-modify-write cycle: the backing file is
// re-read as the source of truth, the document is mutated in memory, and the
// complete document is written back via temp-file + rename. No in-memory
// state is cached between operations, so results are always fresh snapshots.
// Whole-file rewrite keeps the file human-readable and externally editable at
// the cost of O(file) work per call, which is the right trade for small
// datasets.
//
// A Store serialises its own operations through an in-process mutex and an
// advisory lock on a sidecar .lock file, so overlapping calls from multiple
// goroutines or processes cannot interleave their read-modify-write cycles.
// This is stronger than the bare contract (which accepts lost updates under
// concurrency) and is documented as such.
package carton

import "errors"

// Sentinel errors for programmatic handling. Callers use errors.Is to
// distinguish recoverable conditions (ErrNotFound) from corruption
// (ErrMalformed, ErrDecompress).
var (
	ErrNotFound         = errors.New("record not found")
	ErrCollectionExists = errors.New("collection already exists")
	ErrInvalidName      = errors.New("collection name cannot be empty")
	ErrClosed           = errors.New("store is closed")
	ErrMalformed        = errors.New("malformed document")
	ErrDecompress       = errors.New("decompression failed")
	ErrUnknownAlgorithm = errors.New("unknown digest algorithm")
	ErrLockTimeout      = errors.New("timed out waiting for file lock")
)
