package models

// RawRow is one loosely shaped input record: arbitrary keys, arbitrary scalars.
// It never travels past the schema mapper.
type RawRow map[string]any

// Section is one named group of raw rows in input order.
type Section struct {
	// Key is the section name as written in the input.
	Key string `json:"key"`
	// Rows are the records of the section.
	Rows []RawRow `json:"rows"`
}

// Payload is the whole input document with section order preserved.
type Payload struct {
	Sections []Section `json:"sections"`
	// Text is the whole source document as compact JSON, including values
	// the loader did not keep as sections. Empty when the loader keeps
	// everything.
	Text string `json:"-"`
}

// IsEmpty reports whether the payload has no sections.
func (p Payload) IsEmpty() bool {
	return len(p.Sections) == 0
}

// Map returns the payload as a plain key -> rows map.
func (p Payload) Map() map[string][]RawRow {
	out := make(map[string][]RawRow, len(p.Sections))
	for _, s := range p.Sections {
		out[s.Key] = s.Rows
	}
	return out
}

// Row maps canonical column identifiers to values.
type Row map[Column]Value

// Get returns the value of col, or Empty when unset.
func (r Row) Get(col Column) Value {
	return r[col]
}

// Clone returns a shallow copy of r.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
