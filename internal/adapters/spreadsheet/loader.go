// Package spreadsheet loads player datasets from XLSX and CSV files.
package spreadsheet

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/okian/scout/internal/domain/model"
)

// Loader reads a dataset from a file.
type Loader interface {
	Load(ctx context.Context, path string) (*model.Dataset, error)
}

// FileLoader reads the first sheet of an .xlsx workbook or a .csv file.
// The first row is the header.
type FileLoader struct{}

var _ Loader = FileLoader{}

// Load reads path. Any failure is reported as model.ErrDataSource.
func (FileLoader) Load(ctx context.Context, path string) (*model.Dataset, error) {
	const op = "spreadsheet.load"
	if err := ctx.Err(); err != nil {
		return nil, model.WrapKind(op, model.ErrDataSource, err)
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readXLSX(path)
	case ".csv":
		rows, err = readCSV(path)
	default:
		err = eris.Wrapf(ErrUnsupportedFormat, "spreadsheet: %s", path)
	}
	if err != nil {
		return nil, model.WrapKind(op, model.ErrDataSource, err)
	}

	ds, err := buildDataset(path, rows)
	if err != nil {
		return nil, model.WrapKind(op, model.ErrDataSource, eris.Wrapf(err, "spreadsheet: %s", path))
	}
	return ds, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "xlsx: open %s", path)
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Wrapf(ErrNoSheet, "xlsx: %s", path)
	}

	sheet := f.Sheets[0]
	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "csv: open %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // allow ragged rows
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrapf(err, "csv: read %s", path)
	}
	return rows, nil
}
