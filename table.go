package stockman

// Table is the consolidated, ordered sequence of stock records read
// from one directory. It is built fresh on every consolidation and
// never persisted as such.
type Table struct {
	records []Record
	files   []string
	skipped int
}

// NewTable creates a table directly from records. Consolidation is the
// normal constructor; this one serves callers that already hold
// records, such as tests.
func NewTable(records ...Record) *Table {
	return &Table{records: records}
}

// Records returns the records in consolidation order.
func (t *Table) Records() []Record { return t.records }

// Len returns the number of records in the table.
func (t *Table) Len() int { return len(t.records) }

// Files returns the names of the CSV files that contributed to the
// table, in the order they were read.
func (t *Table) Files() []string { return t.files }

// Skipped returns the number of malformed rows that were dropped
// during consolidation.
func (t *Table) Skipped() int { return t.skipped }

// Search returns every record whose value in field 'f' equals 'value'.
//
// Numeric fields (quantity, price) coerce 'value' to a number and
// compare numerically, so "2.50" matches a price of 2.5; an
// uncoercible value is an error. String fields (name, category)
// compare by exact, case-sensitive equality. An empty result is not an
// error.
func (t *Table) Search(f Field, value string) ([]Record, error) {
	match, err := matcher(f, value)
	if err != nil {
		return nil, err
	}
	var found []Record
	for _, rec := range t.records {
		if match(rec) {
			found = append(found, rec)
		}
	}
	return found, nil
}

// matcher builds the per-record predicate for a field/value query.
func matcher(f Field, value string) (func(Record) bool, error) {
	switch f {
	case FieldName:
		return func(r Record) bool { return r.Name == value }, nil
	case FieldCategory:
		return func(r Record) bool { return r.Category == value }, nil
	case FieldQuantity:
		q, err := ParseQuantity(value)
		if err != nil {
			return nil, err
		}
		return func(r Record) bool { return r.Quantity == q }, nil
	case FieldPrice:
		p, err := ParsePrice(value)
		if err != nil {
			return nil, err
		}
		return func(r Record) bool { return r.Price.Equal(p) }, nil
	default:
		return nil, ErrUnknownColumn
	}
}
