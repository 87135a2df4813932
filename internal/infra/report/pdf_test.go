package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legallens/backend/internal/domain/analysis"
	"github.com/legallens/backend/internal/infra/fixture"
)

func sampleRecord() *analysis.Record {
	return &analysis.Record{
		DocumentSummary: "A loan agreement for Rs. 50,00,000 between a bank and a borrower.",
		LegalTerms: []analysis.LegalTerm{
			{Term: "Collateral", Definition: "Property pledged as security for the loan.", Source: "legal_dictionary"},
			{Term: "Default", Definition: "Failure to meet a repayment obligation.", Source: "ai_generated"},
		},
		RiskAnalysis: "OVERALL RISK LEVEL: MEDIUM\nThe interest rate clause allows revision without notice.",
		ApplicableLaws: []analysis.ApplicableLaw{
			{Law: "Indian Contract Act, 1872", Description: "Governs formation and enforcement of the agreement."},
		},
		Metadata: analysis.Metadata{
			analysis.MetaTimestamp:  "2026-08-25T12:00:00Z",
			analysis.MetaConfidence: 0.93,
		},
	}
}

func TestRenderProducesPDF(t *testing.T) {
	content, err := NewPDFRenderer().Render(sampleRecord())
	require.NoError(t, err)
	require.NotEmpty(t, content)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestRenderHandlesEmptyLists(t *testing.T) {
	rec := &analysis.Record{
		DocumentSummary: "Short summary.",
		Metadata:        analysis.Metadata{},
	}
	content, err := NewPDFRenderer().Render(rec)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestRenderHandlesUnicodeText(t *testing.T) {
	rec := sampleRecord()
	rec.DocumentSummary = "கடன் உறுதி பத்திரம் - Pollachi"
	content, err := NewPDFRenderer().Render(rec)
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}

func TestStaticReportsOpen(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rental_result.pdf"), []byte("%PDF-1.4 rental"), 0o644))

	s := NewStaticReports(dir)
	kind, content, err := s.Open("Residential Rental Agreement - Pollachi")
	require.NoError(t, err)
	assert.Equal(t, string(fixture.KindRental), kind)
	assert.Equal(t, "%PDF-1.4 rental", string(content))
}

func TestStaticReportsMissingFile(t *testing.T) {
	s := NewStaticReports(t.TempDir())
	kind, content, err := s.Open("Business Loan Agreement")
	assert.Error(t, err)
	assert.Equal(t, string(fixture.KindLoan), kind)
	assert.Nil(t, content)
}
