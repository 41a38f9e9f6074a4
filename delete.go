// Record removal.
package carton

// RemoveByID deletes every record in the collection whose id equals id
// (normally exactly one) and persists the rewritten collection. Order of
// the remaining records is preserved. A miss — unknown id or unknown
// collection — is a deliberate no-op returning nil, so the file is not
// rewritten at all when there is nothing to remove.
func (s *Store) RemoveByID(collection, id string) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	doc, err := s.load()
	if err != nil {
		return err
	}

	records, ok := doc[collection]
	if !ok {
		return nil
	}

	found := false
	for _, rec := range records {
		if rec.ID() == id {
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	kept := make([]Record, 0, len(records)-1)
	for _, rec := range records {
		if rec.ID() != id {
			kept = append(kept, rec)
		}
	}
	doc[collection] = kept

	return s.save(doc)
}
