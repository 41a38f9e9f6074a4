// Full document enumeration in a single pass.
//
// All loads the document once and yields every record across every
// collection, so callers walking the whole store pay one file read instead
// of the N+1 cost of Collections followed by GetAll per name. The snapshot
// is taken up front — mutations issued while ranging do not affect the
// records already being yielded.
package carton

import (
	"iter"
	"slices"
)

// Entry is a collection–record pair yielded by All.
type Entry struct {
	Collection string
	Record     Record
}

// All yields every record in the store, collections in sorted name order,
// records in insertion order. Callers consume results lazily via range and
// can break early to stop the walk. A load failure is yielded once as the
// error of the first pair.
func (s *Store) All() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		doc, err := s.snapshot()
		if err != nil {
			yield(Entry{}, err)
			return
		}

		names := make([]string, 0, len(doc))
		for name := range doc {
			names = append(names, name)
		}
		slices.Sort(names)

		for _, name := range names {
			for _, rec := range doc[name] {
				if !yield(Entry{Collection: name, Record: rec}, nil) {
					return
				}
			}
		}
	}
}

// snapshot loads the document under the operation locks and releases them
// before returning, so iteration happens against a private copy.
func (s *Store) snapshot() (Document, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	return s.load()
}
