package core

// Join key columns. Both tables must carry them.
const (
	ColAddressNumber = "Address_Number"
	ColStreet        = "Street"
)

// Record is one CSV row as an ordered mapping from column name to value.
// Field order is the order in which names were first set and is used only
// for stable output; lookups are by name.
type Record struct {
	names  []string
	values map[string]string
}

// NewRecord creates an empty record with room for n fields.
func NewRecord(n int) *Record {
	return &Record{
		names:  make([]string, 0, n),
		values: make(map[string]string, n),
	}
}

// Get returns the value of field name and whether it is present.
func (r *Record) Get(name string) (string, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Value returns the value of field name, or "" if absent.
func (r *Record) Value(name string) string {
	return r.values[name]
}

// Has reports whether the record has a field called name.
func (r *Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Set assigns value to field name, appending name to the field order if new.
func (r *Record) Set(name, value string) {
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = value
}

// Fields returns the field names in order. The slice must not be modified.
func (r *Record) Fields() []string {
	return r.names
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.names)
}

// Merge copies every field of other into r, overwriting fields with the
// same name and appending fields r does not have.
func (r *Record) Merge(other *Record) {
	for _, name := range other.names {
		r.Set(name, other.values[name])
	}
}

// Table is an ordered sequence of records parsed from one CSV file.
type Table struct {
	Name    string    // Source path, used in diagnostics
	Header  []string  // Column names in file order
	Records []*Record // Rows in file order
}

// Columns returns the union of field names across all records, ordered by
// first appearance. A table without records reports its parsed header with
// repeated names removed.
func (t *Table) Columns() []string {
	seen := make(map[string]struct{}, len(t.Header))
	var cols []string
	add := func(names []string) {
		for _, name := range names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			cols = append(cols, name)
		}
	}

	if len(t.Records) == 0 {
		add(t.Header)
		return cols
	}
	for _, rec := range t.Records {
		add(rec.names)
	}
	return cols
}
