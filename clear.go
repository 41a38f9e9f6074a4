// Whole-document reset.
package carton

// Clear unconditionally replaces the entire document with an empty mapping
// and persists it. All collections and records are discarded; the
// operation is irreversible.
func (s *Store) Clear() error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	return s.save(Document{})
}
