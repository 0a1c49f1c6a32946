package spreadsheet

import "errors"

// Sentinel kinds for dataset loading errors. They are always wrapped in
// model.ErrDataSource.
var (
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrNoSheet           = errors.New("workbook has no sheets")
	ErrNoHeader          = errors.New("sheet has no header row")
)
