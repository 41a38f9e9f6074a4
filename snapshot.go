// Compressed point-in-time backups.
//
// Snapshot serialises the current document compactly and writes it
// Zstd-compressed to a separate file; Restore decompresses a snapshot,
// validates that it decodes as a document, and persists it as the new
// current state via the normal full-file rewrite. The snapshot format is
// raw zstd frames — no container, no versioning.
package carton

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
)

// Shared encoder/decoder — both are documented as safe for concurrent use.
// Allocated once because zstd encoder/decoder construction is expensive
// relative to compressing a small document.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	zstdDecoder, _ = zstd.NewReader(nil)
)

// Snapshot writes a compressed copy of the current document to path.
// The backing file itself is not modified.
func (s *Store) Snapshot(path string) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	doc, err := s.load()
	if err != nil {
		return err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	compressed := zstdEncoder.EncodeAll(data, nil)
	return os.WriteFile(path, compressed, 0644)
}

// Restore replaces the current document with the one stored in the
// snapshot at path. The snapshot is validated before anything is
// persisted — a snapshot that does not decompress or does not decode as a
// document leaves the store untouched.
func (s *Store) Restore(path string) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	compressed, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	data, err := zstdDecoder.DecodeAll(compressed, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecompress, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return s.save(doc)
}
