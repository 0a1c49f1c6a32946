// Package report exports filtered players to a PDF document.
package report

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/rotisserie/eris"

	"github.com/okian/scout/internal/domain/model"
)

// Placeholders used when a row has no position or club.
const (
	NoPosition = "Sin posición"
	NoClub     = "Sin club"
)

const (
	fontFamily = "Arial"
	fontSize   = 10
	lineHeight = 10
)

// Line formats one report row as "<name> - <position> en <club>".
func Line(r model.PlayerRecord) string {
	pos, club := r.Position, r.Club
	if pos == "" {
		pos = NoPosition
	}
	if club == "" {
		club = NoClub
	}
	return r.Name + " - " + pos + " en " + club
}

// Write renders rows as an A4 PDF with one line per row. Pages break
// automatically.
func Write(w io.Writer, rows []model.PlayerRecord) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	pdf.SetFont(fontFamily, "", fontSize)
	// The core fonts are cp1252; translate so accented names survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, r := range rows {
		pdf.CellFormat(0, lineHeight, tr(Line(r)), "", 1, "L", false, 0, "")
	}
	if err := pdf.Error(); err != nil {
		return eris.Wrap(err, "report: render pdf")
	}
	return eris.Wrap(pdf.Output(w), "report: write pdf")
}

// ExportPDF writes the report for rows to path, replacing any previous file.
// The file is written to a temporary sibling first so a failed export never
// leaves a truncated report behind.
func ExportPDF(rows []model.PlayerRecord, path string) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return eris.Wrapf(err, "report: create dir %s", dir)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".report-*.pdf")
	if err != nil {
		return eris.Wrap(err, "report: create temp file")
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, rows); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return eris.Wrap(err, "report: close temp file")
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return eris.Wrapf(err, "report: rename to %s", path)
	}
	return nil
}
