// Package model contains domain models passed between layers.
package model

// PlayerRecord is one imported spreadsheet row. Text fields are "" when the
// cell is blank; numeric fields are nil when blank or unparseable.
type PlayerRecord struct {
	Name          string   `json:"name"`
	Position      string   `json:"position"`
	Club          string   `json:"club"`
	Photo         string   `json:"photo,omitempty"`
	Age           *float64 `json:"age"`
	Qualification *float64 `json:"qualification"`
	// Metrics holds the comparison metrics present in the sheet.
	Metrics map[string]*float64 `json:"metrics,omitempty"`
	// Cells holds the raw text of every column, keyed by header.
	Cells map[string]string `json:"cells"`
}

// Metric returns the value of a comparison metric and whether it is set.
func (p PlayerRecord) Metric(name string) (float64, bool) {
	v, ok := p.Metrics[name]
	if !ok || v == nil {
		return 0, false
	}
	return *v, true
}

// Dataset is the immutable set of rows loaded for a session.
type Dataset struct {
	Source  string
	Columns []string
	Rows    []PlayerRecord

	columns map[string]struct{}
}

// NewDataset builds a Dataset and indexes its columns.
func NewDataset(source string, columns []string, rows []PlayerRecord) *Dataset {
	idx := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		idx[c] = struct{}{}
	}
	return &Dataset{Source: source, Columns: columns, Rows: rows, columns: idx}
}

// EmptyDataset returns a dataset without columns or rows.
func EmptyDataset(source string) *Dataset {
	return NewDataset(source, nil, nil)
}

// Has reports whether column exists in the dataset. Every column-dependent
// operation checks it before reading a field.
func (d *Dataset) Has(column string) bool {
	if d == nil {
		return false
	}
	_, ok := d.columns[column]
	return ok
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// Photos maps player names to the first non-empty photo URL seen for them.
// It is empty when either the name or the photo column is missing.
func (d *Dataset) Photos() map[string]string {
	photos := make(map[string]string)
	if !d.Has(ColumnName) || !d.Has(ColumnPhoto) {
		return photos
	}
	for _, r := range d.Rows {
		if r.Name == "" || r.Photo == "" {
			continue
		}
		if _, ok := photos[r.Name]; !ok {
			photos[r.Name] = r.Photo
		}
	}
	return photos
}
