package export

import (
	"bytes"
	"context"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"resume-builder/internal/render"
)

// NativeStrategy builds the PDF directly from the print-oriented document
// tree. No rasterization: vector text, selectable and searchable, smallest
// file size. Preferred whenever the remote service is unavailable.
type NativeStrategy struct{}

func NewNativeStrategy() *NativeStrategy { return &NativeStrategy{} }

func (s *NativeStrategy) Name() string { return "native" }

func (s *NativeStrategy) Available(job *Job) bool { return job.Document != nil }

func (s *NativeStrategy) Export(ctx context.Context, job *Job) ([]byte, error) {
	data, err := WritePDF(job.Document)
	if err != nil {
		return nil, NewExportError(ErrCodeRenderFailed, "native PDF generation failed", err)
	}
	return data, nil
}

// WritePDF lays the document out on A4 pages. Content and ordering follow
// the document tree exactly; styling is a plain single-column rendition of
// the template's palette, which is allowed to differ from the on-screen
// arrangement.
func WritePDF(doc *render.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(doc.Header.Name, true)
	pdf.SetMargins(16, 14, 16)
	pdf.SetAutoPageBreak(true, 16)
	pdf.AddPage()

	ar, ag, ab := render.HexRGB(doc.Theme.Accent)

	writeHeader(pdf, tr, doc.Header, ar, ag, ab)
	for _, sec := range doc.Sections() {
		writeSection(pdf, tr, sec, ar, ag, ab)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeader(pdf *gofpdf.Fpdf, tr func(string) string, h render.Header, ar, ag, ab int) {
	if h.Name != "" {
		pdf.SetFont("Helvetica", "B", 22)
		pdf.SetTextColor(ar, ag, ab)
		pdf.CellFormat(0, 10, tr(h.Name), "", 1, "L", false, 0, "")
	}
	if len(h.Contacts) > 0 {
		values := make([]string, 0, len(h.Contacts))
		for _, c := range h.Contacts {
			values = append(values, c.Value)
		}
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr(strings.Join(values, "  •  ")), "", "L", false)
	}
	pdf.SetDrawColor(ar, ag, ab)
	pdf.SetLineWidth(0.6)
	y := pdf.GetY() + 1.5
	pdf.Line(16, y, 194, y)
	pdf.Ln(5)
}

func writeSection(pdf *gofpdf.Fpdf, tr func(string) string, sec render.Section, ar, ag, ab int) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(ar, ag, ab)
	pdf.CellFormat(0, 8, tr(sec.Title), "", 1, "L", false, 0, "")

	if sec.Text != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(51, 51, 51)
		pdf.MultiCell(0, 5, tr(sec.Text), "", "L", false)
		pdf.Ln(1)
	}

	if len(sec.Chips) > 0 {
		pdf.SetFont("Helvetica", "", 9.5)
		pdf.SetTextColor(51, 51, 51)
		pdf.MultiCell(0, 5, tr(strings.Join(sec.Chips, "  •  ")), "", "L", false)
		pdf.Ln(1)
	}

	for _, e := range sec.Entries {
		writeEntry(pdf, tr, e, ar, ag, ab)
	}
	pdf.Ln(2)
}

func writeEntry(pdf *gofpdf.Fpdf, tr func(string) string, e render.Entry, ar, ag, ab int) {
	if e.Primary != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(35, 35, 35)
		pdf.CellFormat(0, 6, tr(e.Primary), "", 1, "L", false, 0, "")
	}
	if e.Secondary != "" {
		pdf.SetFont("Helvetica", "", 9.5)
		pdf.SetTextColor(ar, ag, ab)
		pdf.CellFormat(0, 5, tr(e.Secondary), "", 1, "L", false, 0, "")
	}
	if e.Meta != "" {
		pdf.SetFont("Helvetica", "", 8.5)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 4.5, tr(e.Meta), "", 1, "L", false, 0, "")
	}
	if e.URL != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(ar, ag, ab)
		pdf.CellFormat(0, 4.5, tr(e.URLLabel), "", 1, "L", false, 0, "")
	}
	if e.Body != "" {
		pdf.SetFont("Helvetica", "", 9.5)
		pdf.SetTextColor(51, 51, 51)
		pdf.MultiCell(0, 4.8, tr(e.Body), "", "L", false)
	}
	if len(e.Bullets) > 0 {
		pdf.SetFont("Helvetica", "", 9.5)
		pdf.SetTextColor(51, 51, 51)
		for _, b := range e.Bullets {
			pdf.MultiCell(0, 4.8, tr("•  "+b), "", "L", false)
		}
	}
	if len(e.Chips) > 0 {
		pdf.SetFont("Helvetica", "", 8.5)
		pdf.SetTextColor(ar, ag, ab)
		pdf.MultiCell(0, 4.5, tr(strings.Join(e.Chips, "  •  ")), "", "L", false)
	}
	pdf.Ln(2)
}
