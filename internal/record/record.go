// Package record holds the row model shared by every extraction source:
// ordered field/value pairs with no fixed schema, plus the coercion helpers
// parsers use to normalize raw cell text.
package record

// Record is one extracted row. Field names map to string values and keep
// the order in which they were first set, so downstream column layouts
// match the order the parser produced.
type Record struct {
	order  []string
	values map[string]string
}

// New returns an empty Record.
func New() *Record {
	return &Record{values: make(map[string]string)}
}

// Set stores value under field. Setting an existing field overwrites its
// value without disturbing field order.
func (r *Record) Set(field, value string) {
	if _, ok := r.values[field]; !ok {
		r.order = append(r.order, field)
	}
	r.values[field] = value
}

// Get returns the value for field, or "" when the field is absent.
func (r *Record) Get(field string) string {
	return r.values[field]
}

// Has reports whether field was set on this record.
func (r *Record) Has(field string) bool {
	_, ok := r.values[field]
	return ok
}

// Fields returns the record's field names in first-set order.
func (r *Record) Fields() []string {
	return r.order
}

// Len returns the number of fields set on the record.
func (r *Record) Len() int {
	return len(r.order)
}

// Set is an ordered collection of records from one extraction. It tracks
// the union of all field names in first-seen order, which becomes the
// column layout on export.
type Set struct {
	records []*Record
	fields  []string
	seen    map[string]struct{}
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Append adds r to the set and folds its fields into the set's field union.
func (s *Set) Append(r *Record) {
	if r == nil {
		return
	}
	s.records = append(s.records, r)
	for _, f := range r.Fields() {
		if _, ok := s.seen[f]; !ok {
			s.seen[f] = struct{}{}
			s.fields = append(s.fields, f)
		}
	}
}

// Records returns the set's records in append order.
func (s *Set) Records() []*Record {
	return s.records
}

// Fields returns the union of field names across all records, ordered by
// first appearance.
func (s *Set) Fields() []string {
	return s.fields
}

// Len returns the number of records in the set.
func (s *Set) Len() int {
	return len(s.records)
}

// Empty reports whether the set holds no records. Empty sets are never
// exported.
func (s *Set) Empty() bool {
	return len(s.records) == 0
}
