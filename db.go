// Core store type and lifecycle operations.
//
// Store binds to one backing file and coordinates every operation through
// begin/end: take the in-process mutex, then the cross-process advisory
// lock, run the read-modify-write cycle, release both. The file itself is
// the only durable state — Store holds no document cache.
package carton

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"
)

// Digest algorithm constants.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
)

// Config holds store configuration options.
type Config struct {
	StrictCreate    bool          // CreateCollection on an existing name returns ErrCollectionExists instead of no-op
	DigestAlgorithm int           // 1=xxHash3, 2=FNV1a, 3=Blake2b
	SyncWrites      bool          // fsync the temp file before rename
	Compact         bool          // write compact JSON instead of indented
	LockTimeout     time.Duration // bound on advisory lock acquisition (default 3s)
}

// Store represents an open document store bound to one file path.
type Store struct {
	path   string
	config Config
	lock   *fileLock
	mu     sync.Mutex
	closed bool
}

// Open binds a store to path, creating the file if needed. A newly created
// or empty file is initialised with an empty document; a file with valid
// existing content is left untouched. Opening the same path twice is
// idempotent — the second Open never resets data. Returns the underlying
// I/O error when the path cannot be created or read, or ErrMalformed when
// existing content does not decode as a document.
func Open(path string, config Config) (*Store, error) {
	// Default config values
	if config.DigestAlgorithm == 0 {
		config.DigestAlgorithm = AlgXXHash3
	}
	if config.LockTimeout == 0 {
		config.LockTimeout = 3 * time.Second
	}

	s := &Store{
		path:   path,
		config: config,
		lock:   newFileLock(path+".lock", config.LockTimeout),
	}

	// Bootstrap under the advisory lock so two processes opening the same
	// fresh path cannot both write the initial document.
	if err := s.lock.acquire(); err != nil {
		return nil, err
	}
	defer func() { _ = s.lock.release() }()

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := s.save(Document{}); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	case info.IsDir():
		return nil, fmt.Errorf("open %s: path is a directory", path)
	case info.Size() == 0:
		if err := s.save(Document{}); err != nil {
			return nil, err
		}
	default:
		// Existing content must decode; malformed files surface at Open
		// rather than on the first operation.
		if _, err := s.load(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Close marks the store closed. Subsequent operations return ErrClosed.
// The backing file is left in place; Close never discards data.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// begin serialises an operation: in-process mutex first, then the
// cross-process advisory lock. Callers must pair every successful begin
// with end, normally via defer.
func (s *Store) begin() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if err := s.lock.acquire(); err != nil {
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) end() {
	_ = s.lock.release()
	s.mu.Unlock()
}
