// Collection renaming.
package carton

import "fmt"

// Rename moves a collection to a new name, preserving record order. Unlike
// the CreateCollection no-op, a missing source is an error (ErrNotFound)
// and an existing target is an error (ErrCollectionExists) — silently
// merging or dropping records here would lose data.
func (s *Store) Rename(oldName, newName string) error {
	if oldName == "" || newName == "" {
		return ErrInvalidName
	}
	if oldName == newName {
		return nil
	}

	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	doc, err := s.load()
	if err != nil {
		return err
	}

	records, ok := doc[oldName]
	if !ok {
		return fmt.Errorf("%w: collection %q", ErrNotFound, oldName)
	}
	if _, ok := doc[newName]; ok {
		return fmt.Errorf("%w: %q", ErrCollectionExists, newName)
	}

	doc[newName] = records
	delete(doc, oldName)

	return s.save(doc)
}
