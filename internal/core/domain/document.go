package domain

// Row maps a column name to its cell value
type Row map[string]string

// Document is the row-oriented in-memory form of a CSV file. Column order is
// kept explicitly so that encode(decode(d)) preserves the header line.
type Document struct {
	Columns []string
	Rows    []Row
}

// Headers returns a copy of the column names in header order
func (d Document) Headers() []string {
	headers := make([]string, len(d.Columns))
	copy(headers, d.Columns)
	return headers
}
