package spreadsheet

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/okian/scout/internal/domain/model"
)

// buildDataset turns raw rows into a Dataset. The first row is the header;
// fully blank rows are dropped.
func buildDataset(source string, rows [][]string) (*model.Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = normalizeHeader(h)
	}

	// Repeated or blank headers keep the first occurrence only.
	var columns []string
	index := make(map[string]int, len(header))
	for i, h := range header {
		if h == "" {
			continue
		}
		if _, dup := index[h]; dup {
			continue
		}
		index[h] = i
		columns = append(columns, h)
	}
	if len(columns) == 0 {
		return nil, ErrNoHeader
	}

	records := make([]model.PlayerRecord, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		if isBlank(raw) {
			continue
		}
		records = append(records, buildRecord(raw, index))
	}
	return model.NewDataset(source, columns, records), nil
}

func buildRecord(raw []string, index map[string]int) model.PlayerRecord {
	cell := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(raw) {
			return ""
		}
		return strings.TrimSpace(raw[i])
	}

	rec := model.PlayerRecord{
		Name:          cell(model.ColumnName),
		Position:      cell(model.ColumnPosition),
		Club:          cell(model.ColumnTeam),
		Photo:         cell(model.ColumnPhoto),
		Age:           parseNumber(cell(model.ColumnAge)),
		Qualification: parseNumber(cell(model.ColumnQualification)),
		Cells:         make(map[string]string, len(index)),
	}
	for col := range index {
		rec.Cells[col] = cell(col)
	}
	for _, m := range model.Metrics {
		if _, ok := index[m]; !ok {
			continue
		}
		if rec.Metrics == nil {
			rec.Metrics = make(map[string]*float64, len(model.Metrics))
		}
		rec.Metrics[m] = parseNumber(cell(m))
	}
	return rec
}

// parseNumber returns nil for blank or non-numeric text. A decimal comma is
// accepted.
func parseNumber(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// normalizeHeader composes accents so "POSICIÓN" matches however the file
// encoded it.
func normalizeHeader(h string) string {
	return norm.NFC.String(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
