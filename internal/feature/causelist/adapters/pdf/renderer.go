// Package pdf renders cause lists as A4 PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"ecourts_backend/internal/feature/causelist/domain/entity"
	"ecourts_backend/internal/feature/causelist/usecase"
)

const (
	margin     = 12.7 // half an inch
	rowHeight  = 6.0
	maxParties = 35
	ellipsis   = "..."

	defaultMaxRows = 25
)

var (
	headers   = []string{"S.No.", "Case Number", "Parties Name", "Purpose/Stage", "Time"}
	colWidths = []float64{13.8, 41.4, 69, 41.4, 18.4}
)

// Options tunes the renderer.
type Options struct {
	// MaxRows caps the table. Zero means 25.
	MaxRows int
	// Uncompressed leaves page streams readable.
	Uncompressed bool
}

// Renderer lays out cause list documents as A4 PDFs.
type Renderer struct {
	opts Options
}

var _ usecase.Renderer = (*Renderer)(nil)

// NewRenderer creates a Renderer.
func NewRenderer(opts Options) *Renderer {
	if opts.MaxRows <= 0 {
		opts.MaxRows = defaultMaxRows
	}
	return &Renderer{opts: opts}
}

// Render lays out doc. The output depends only on doc and the options.
func (r *Renderer) Render(doc entity.Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin+8)
	pdf.SetCompression(!r.opts.Uncompressed)
	pdf.SetCreationDate(doc.GeneratedAt)
	pdf.SetModificationDate(doc.GeneratedAt)
	pdf.SetCatalogSort(true)
	pdf.SetTitle("Cause List - "+doc.JudgeName, true)
	pdf.AliasNbPages("")

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	multiPage := false
	pdf.SetAcceptPageBreakFunc(func() bool {
		multiPage = true
		return true
	})
	pdf.SetFooterFunc(func() {
		if !multiPage {
			return
		}
		pdf.SetY(-margin - 4)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 4, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	writeHeader(pdf, tr, doc)

	rows := doc.Rows
	if len(rows) > r.opts.MaxRows {
		rows = rows[:r.opts.MaxRows]
	}
	if len(rows) == 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 20, "NO CASES LISTED FOR THIS DATE", "", 1, "C", false, 0, "")
	} else {
		writeTable(pdf, tr, rows)
	}

	writeFooter(pdf, doc.GeneratedAt)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(pdf *fpdf.Fpdf, tr func(string) string, doc entity.Document) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 7, "DELHI DISTRICT COURTS", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, "NEW DELHI", "", 1, "C", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 7, "CAUSE LIST", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, tr("Court: "+doc.JudgeName), "", 1, "L", false, 0, "")
	if doc.CourtRoom != "" {
		pdf.CellFormat(0, 6, tr(doc.CourtRoom), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, "Date: "+doc.Date.Format("02-01-2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func writeTableHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(0, 0, 0)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(0, 0, 0)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], rowHeight+1, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func writeTable(pdf *fpdf.Fpdf, tr func(string) string, rows []entity.DocketRow) {
	writeTableHeader(pdf)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for i, row := range rows {
		if i%2 == 0 {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(211, 211, 211)
		}
		cells := []string{
			row.SrNo,
			row.CaseNumber,
			usecase.Truncate(row.Parties, maxParties),
			row.Stage,
			row.Time,
		}
		for c, text := range cells {
			align := "L"
			if c == 0 {
				align = "C"
			}
			pdf.CellFormat(colWidths[c], rowHeight, fit(pdf, tr(text), colWidths[c]-2), "1", 0, align, true, 0, "")
		}
		pdf.Ln(-1)
	}
}

func writeFooter(pdf *fpdf.Fpdf, generatedAt time.Time) {
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 4, "Generated on: "+generatedAt.Format("02-01-2006")+" at "+generatedAt.Format("15:04:05"), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 4, "This is a computer generated cause list", "", 1, "C", false, 0, "")
}

// fit shortens text until it is at most width wide in the current font.
// text is already in the single-byte font encoding.
func fit(pdf *fpdf.Fpdf, text string, width float64) string {
	if pdf.GetStringWidth(text) <= width {
		return text
	}
	for len(text) > 0 && pdf.GetStringWidth(text+ellipsis) > width {
		text = text[:len(text)-1]
	}
	return text + ellipsis
}
