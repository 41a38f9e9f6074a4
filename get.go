// Record retrieval operations.
package carton

// GetAll returns every record in the named collection in insertion order.
// The result is a fresh snapshot decoded from the file — later mutations to
// the store never retroactively change an already-returned slice. An
// unknown collection yields an empty result, not an error.
func (s *Store) GetAll(collection string) ([]Record, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc[collection], nil
}

// GetByID returns the first record in the collection whose id equals id
// (exact string match, linear scan). A miss — unknown collection included —
// returns ErrNotFound; that is the only error a plain miss produces.
func (s *Store) GetByID(collection, id string) (Record, error) {
	records, err := s.GetAll(collection)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if rec.ID() == id {
			return rec, nil
		}
	}
	return nil, ErrNotFound
}
