// Collection enumeration.
package carton

import "slices"

// Collections returns the names of all collections in the document, sorted.
// Map iteration order would otherwise vary between calls even when the file
// has not changed.
func (s *Store) Collections() ([]string, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// Count returns the number of records in the named collection. An unknown
// collection counts as zero, matching GetAll.
func (s *Store) Count(collection string) (int, error) {
	if err := s.begin(); err != nil {
		return 0, err
	}
	defer s.end()

	doc, err := s.load()
	if err != nil {
		return 0, err
	}
	return len(doc[collection]), nil
}
