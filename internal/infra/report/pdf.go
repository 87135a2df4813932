package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/legallens/backend/internal/domain/analysis"
)

// PDFRenderer implements the Renderer port with fpdf. Rendering is a pure
// function of the record; only the textual content matters for idempotence
// since fpdf embeds a creation date in the document header.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer { return &PDFRenderer{} }

func (r *PDFRenderer) Render(rec *analysis.Record) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr("Legal Document Analysis Report"), "", 1, "C", false, 0, "")
	pdf.SetDrawColor(60, 60, 60)
	pdf.Line(10, pdf.GetY()+2, 200, pdf.GetY()+2)
	pdf.Ln(8)

	writeSection(pdf, tr, "Document Summary", rec.DocumentSummary)

	sectionHeader(pdf, tr, "Legal Terms Glossary")
	if len(rec.LegalTerms) == 0 {
		bodyText(pdf, tr, "None identified.")
	} else {
		for i, t := range rec.LegalTerms {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d. %s", i+1, t.Term)), "", "L", false)
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(t.Definition), "", "L", false)
			if t.Source != "" {
				pdf.SetFont("Helvetica", "I", 9)
				pdf.MultiCell(0, 5, tr("Source: "+t.Source), "", "L", false)
			}
			pdf.Ln(2)
		}
	}
	pdf.Ln(4)

	writeSection(pdf, tr, "Risk Analysis", rec.RiskAnalysis)

	sectionHeader(pdf, tr, "Applicable Laws")
	if len(rec.ApplicableLaws) == 0 {
		bodyText(pdf, tr, "None identified.")
	} else {
		for _, l := range rec.ApplicableLaws {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.MultiCell(0, 6, tr(l.Law), "", "L", false)
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(l.Description), "", "L", false)
			pdf.Ln(2)
		}
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "I", 8)
	footer := "Generated by LegalLens"
	if ts, ok := rec.Metadata[analysis.MetaTimestamp].(string); ok {
		footer += " | Analyzed: " + ts
	}
	if conf, ok := rec.Metadata[analysis.MetaConfidence].(float64); ok {
		footer += fmt.Sprintf(" | Confidence: %.2f", conf)
	}
	pdf.MultiCell(0, 5, tr(footer), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func sectionHeader(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(0, 9, tr(title), "", 1, "L", true, 0, "")
	pdf.Ln(2)
}

func bodyText(pdf *fpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Helvetica", "", 10)
	if text == "" {
		text = "None identified."
	}
	pdf.MultiCell(0, 5, tr(text), "", "L", false)
}

func writeSection(pdf *fpdf.Fpdf, tr func(string) string, title, text string) {
	sectionHeader(pdf, tr, title)
	bodyText(pdf, tr, text)
	pdf.Ln(4)
}
