// Whole-document load path.
//
// Every operation re-reads the backing file rather than trusting any
// in-memory copy, so external edits to the file are picked up on the next
// call. An empty or whitespace-only file decodes as an empty document; this
// mirrors the Open bootstrap and keeps truncated-but-present files usable.
package carton

import (
	"bytes"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// load reads and decodes the entire backing file. Decode failures wrap
// ErrMalformed; I/O failures are returned as-is.
func (s *Store) load() (Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return doc, nil
}
