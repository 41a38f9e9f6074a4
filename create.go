// Explicit collection creation.
package carton

import "fmt"

// CreateCollection adds an empty collection named name and persists the
// document. Creating a name that already exists is a no-op returning nil —
// existing records are never touched. With Config.StrictCreate set, the
// same condition returns ErrCollectionExists instead. The no-op default is
// deliberate: callers may create unconditionally at startup without
// checking for prior state.
func (s *Store) CreateCollection(name string) error {
	if name == "" {
		return ErrInvalidName
	}

	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	doc, err := s.load()
	if err != nil {
		return err
	}

	if _, ok := doc[name]; ok {
		if s.config.StrictCreate {
			return fmt.Errorf("%w: %q", ErrCollectionExists, name)
		}
		return nil
	}

	doc[name] = []Record{}
	return s.save(doc)
}
