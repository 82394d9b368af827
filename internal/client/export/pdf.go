package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Page geometry in points.
const (
	pageWidth  = 595.28
	pageHeight = 841.89
	margin     = 36.0
	lineHeight = 16.0
	titleSize  = 18.0
	textSize   = 10.0
	ruleGap    = 6.0
	font       = "Helvetica"
)

// columnX holds each column's offset from the left margin.
var columnX = []float64{0, 160, 280, 340, 440, 510}

// EncodePDF writes an A4 portrait table. The header is repeated on every
// page and a new page starts when less than two line heights remain.
func EncodePDF(w io.Writer, t Table) error {
	pdf := renderPDF(t)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

type pdfWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	t   Table
	y   float64
}

func renderPDF(t Table) *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetTitle(t.Title, true)
	pdf.SetCreationDate(t.GeneratedAt)

	pw := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), t: t}
	pw.newPage()

	limit := pageHeight - margin - 2*lineHeight
	for _, row := range t.Rows {
		if pw.y > limit {
			pw.newPage()
		}
		pw.row(row)
		pw.y += lineHeight
	}
	return pdf
}

func (w *pdfWriter) newPage() {
	w.pdf.AddPage()
	w.y = margin + titleSize

	w.pdf.SetFont(font, "B", titleSize)
	w.text(margin, w.t.Title)
	w.y += lineHeight + ruleGap

	w.pdf.SetFont(font, "", textSize)
	w.text(margin, "Date: "+w.t.Date())
	w.y += lineHeight
	w.text(margin, w.t.FilterSummary)
	w.y += lineHeight
	w.text(margin, fmt.Sprintf("Guests (%d)", len(w.t.Rows)))
	w.y += lineHeight

	w.pdf.SetFont(font, "B", textSize)
	w.row(w.t.Columns)
	w.pdf.SetFont(font, "", textSize)
	w.y += ruleGap

	w.pdf.SetDrawColor(178, 178, 178)
	w.pdf.SetLineWidth(0.5)
	w.pdf.Line(margin, w.y, pageWidth-margin, w.y)
	w.y += lineHeight
}

func (w *pdfWriter) row(cells []string) {
	for i, c := range cells {
		if i >= len(columnX) {
			break
		}
		s := w.tr(c)
		// The last two columns hold short fixed labels.
		if i < len(columnX)-2 {
			s = w.fit(s, columnX[i+1]-columnX[i]-4)
		}
		w.pdf.Text(margin+columnX[i], w.y, s)
	}
}

func (w *pdfWriter) text(x float64, s string) {
	w.pdf.Text(x, w.y, w.tr(s))
}

// fit shortens an already translated single-byte string to width.
func (w *pdfWriter) fit(s string, width float64) string {
	if w.pdf.GetStringWidth(s) <= width {
		return s
	}
	const ellipsis = "..."
	for len(s) > 0 && w.pdf.GetStringWidth(s+ellipsis) > width {
		s = s[:len(s)-1]
	}
	return s + ellipsis
}
