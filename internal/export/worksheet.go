package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abhisek/mathdrill/internal/notebook"
	"github.com/abhisek/mathdrill/internal/similar"
)

// WorksheetConfig controls the PDF layout.
type WorksheetConfig struct {
	PageSize   string
	MarginsMM  float64
	FontFamily string
	Title      string
}

// DefaultWorksheetConfig returns an A4 layout.
func DefaultWorksheetConfig() WorksheetConfig {
	return WorksheetConfig{
		PageSize:   "A4",
		MarginsMM:  15,
		FontFamily: "Helvetica",
		Title:      "mistake review",
	}
}

// WorksheetItem is one problem on the sheet.
type WorksheetItem struct {
	Expression string
	Answer     int
}

// WorksheetItems lists the unmastered records of recs. With withSimilar
// each record is followed by a derived variant at the given level;
// records whose expression cannot be parsed get no variant.
func WorksheetItems(recs []notebook.Record, d *similar.Deriver, level int, withSimilar bool) []WorksheetItem {
	var items []WorksheetItem
	for _, rec := range recs {
		if rec.Mastered {
			continue
		}
		items = append(items, WorksheetItem{Expression: rec.Expression, Answer: rec.CorrectAnswer})
		if !withSimilar || d == nil {
			continue
		}
		if q, ok := d.Derive(rec, level); ok {
			items = append(items, WorksheetItem{Expression: q.Expression(), Answer: q.CorrectAnswer})
		}
	}
	return items
}

// WriteWorksheet renders items as a problem page followed by an answer
// key and writes the PDF to w.
func WriteWorksheet(w io.Writer, cfg WorksheetConfig, items []WorksheetItem, now time.Time) error {
	pdf := fpdf.New("P", "mm", cfg.PageSize, "")
	pdf.SetMargins(cfg.MarginsMM, cfg.MarginsMM, cfg.MarginsMM)
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)

	// Core fonts are cp1252; × and ÷ exist there.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	title := cases.Title(language.English).String(cfg.Title)
	pdf.SetTitle(title, true)

	pdf.AddPage()
	pdf.SetFont(cfg.FontFamily, "B", 22)
	pdf.CellFormat(0, 15, tr(title), "", 1, "C", false, 0, "")
	pdf.SetFont(cfg.FontFamily, "", 11)
	pdf.CellFormat(0, 8, now.Format("January 2, 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont(cfg.FontFamily, "", 14)
	if len(items) == 0 {
		pdf.MultiCell(0, 8, "Nothing to review. Every mistake is mastered!", "", "L", false)
	}
	for i, it := range items {
		pdf.MultiCell(0, 10, tr(fmt.Sprintf("%d.  %s      Answer: _____", i+1, it.Expression)), "", "L", false)
	}

	pdf.AddPage()
	pdf.SetFont(cfg.FontFamily, "B", 22)
	pdf.CellFormat(0, 15, tr(title+" Answer Key"), "", 1, "C", false, 0, "")
	pdf.Ln(6)
	pdf.SetFont(cfg.FontFamily, "", 14)
	for i, it := range items {
		pdf.MultiCell(0, 8, tr(fmt.Sprintf("%d.  %s   (%d)", i+1, it.Expression, it.Answer)), "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render worksheet: %w", err)
	}
	return nil
}

// WriteWorksheetFile writes the worksheet to dir under WorksheetFileName
// and returns the path.
func WriteWorksheetFile(dir string, cfg WorksheetConfig, items []WorksheetItem, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, WorksheetFileName(now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteWorksheet(f, cfg, items, now); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
