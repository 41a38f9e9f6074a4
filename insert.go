// Record insertion.
package carton

// Insert appends a record built from payload to the named collection and
// persists the document. The store assigns a fresh UUID under IDField,
// overwriting any caller-supplied value, and returns the stored record
// including its id. A missing collection is auto-created on first insert
// rather than treated as an error, so CreateCollection is optional for
// callers that only ever insert.
func (s *Store) Insert(collection string, payload map[string]any) (Record, error) {
	if collection == "" {
		return nil, ErrInvalidName
	}

	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	rec := newRecord(payload)
	doc[collection] = append(doc[collection], rec)

	if err := s.save(doc); err != nil {
		return nil, err
	}
	return rec, nil
}
