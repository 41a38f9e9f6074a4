// Document and record types.
//
// The persisted format is one JSON object: top-level keys are collection
// names, every top-level value is an array of objects. Decoding into
// Document enforces that shape — a scalar or nested object at the top level
// fails to unmarshal and surfaces as ErrMalformed.
package carton

import (
	"github.com/google/uuid"
)

// IDField is the reserved record field holding the store-assigned
// identifier. It is set at insert time and never mutated afterwards.
const IDField = "id"

// Document is the entire persisted state: collection name to ordered
// record sequence.
type Document map[string][]Record

// Record is a mapping of field names to arbitrary JSON-serializable values
// plus the reserved IDField.
type Record map[string]any

// ID returns the record's assigned identifier, or "" when the field is
// absent or not a string.
func (r Record) ID() string {
	id, _ := r[IDField].(string)
	return id
}

// newID generates a canonical UUID string (128-bit random). Uniqueness
// within a collection relies on the generator's collision resistance;
// no check against existing ids is performed.
func newID() string {
	return uuid.NewString()
}

// newRecord copies the payload into a fresh Record and assigns a new id.
// Any caller-supplied value under IDField is overwritten — ids are owned
// by the store.
func newRecord(payload map[string]any) Record {
	rec := make(Record, len(payload)+1)
	for k, v := range payload {
		rec[k] = v
	}
	rec[IDField] = newID()
	return rec
}
