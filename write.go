// Whole-document persistence.
//
// Every mutation serialises the complete document and replaces the file
// contents entirely — never append, never in-place patch. The write goes to
// a sibling .tmp file first and is renamed over the target, so readers
// observe either the old document or the new one, never a torn write.
package carton

import (
	"os"

	json "github.com/goccy/go-json"
)

// save marshals doc and atomically replaces the backing file.
func (s *Store) save(doc Document) error {
	var data []byte
	var err error
	if s.config.Compact {
		data, err = json.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp := s.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if s.config.SyncWrites {
		if err := f.Sync(); err != nil {
			f.Close()
			os.Remove(tmp)
			return err
		}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
