// Content digests for the persisted document.
//
// Digest hashes the canonically serialised document (compact encoding, map
// keys in sorted order) to a 16 hex character string. The digest is purely
// derived — it is never stored in the file, so the on-disk format stays a
// plain JSON object. Three algorithms are supported, selectable via
// Config.DigestAlgorithm.
package carton

import (
	"fmt"
	"hash/fnv"

	json "github.com/goccy/go-json"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Digest returns a 16 hex character digest of the current document. Two
// stores over byte-different files holding the same logical document
// produce the same digest; any insert, remove, rename or clear changes it.
func (s *Store) Digest() (string, error) {
	if err := s.begin(); err != nil {
		return "", err
	}
	defer s.end()

	doc, err := s.load()
	if err != nil {
		return "", err
	}

	// Marshal sorts map keys, so the encoding is canonical regardless of
	// how the file on disk happens to be formatted.
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return digest(data, s.config.DigestAlgorithm)
}

// digest hashes data to 16 hex characters using the given algorithm.
func digest(data []byte, alg int) (string, error) {
	switch alg {
	case AlgXXHash3:
		return fmt.Sprintf("%016x", xxh3.Hash(data)), nil
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write(data)
		return fmt.Sprintf("%016x", h.Sum64()), nil
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write(data)
		return fmt.Sprintf("%016x", h.Sum(nil)), nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownAlgorithm, alg)
	}
}
