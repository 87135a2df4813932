package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPayload = `{
  "document_summary": "A rental agreement between a landlord and tenant.",
  "legal_terms": [
    {"term": "Lessor", "definition": "The party granting the lease."},
    {"term": "", "definition": "dropped"},
    {"term": "Lessee", "definition": ""}
  ],
  "risk_analysis": "OVERALL RISK LEVEL: MEDIUM\nSome findings.",
  "applicable_laws": [
    {"law": "Transfer of Property Act, 1882", "description": "Governs leases."},
    {"law": "", "description": "dropped"}
  ],
  "document_type": "Rental Agreement",
  "confidence": 0.93
}`

func TestParseRecordValid(t *testing.T) {
	rec, docType, confidence, err := ParseRecord(validPayload)
	require.NoError(t, err)

	assert.Equal(t, "A rental agreement between a landlord and tenant.", rec.DocumentSummary)
	assert.Equal(t, "Rental Agreement", docType)
	assert.InDelta(t, 0.93, confidence, 0.0001)

	// Empty terms and laws are dropped; order is preserved.
	require.Len(t, rec.LegalTerms, 2)
	assert.Equal(t, "Lessor", rec.LegalTerms[0].Term)
	assert.Equal(t, "Lessee", rec.LegalTerms[1].Term)
	require.Len(t, rec.ApplicableLaws, 1)
	assert.Equal(t, "Transfer of Property Act, 1882", rec.ApplicableLaws[0].Law)

	// Metadata is the provider's job.
	assert.Empty(t, rec.Metadata)
}

func TestParseRecordStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validPayload + "\n```"
	rec, _, _, err := ParseRecord(fenced)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.DocumentSummary)
}

func TestParseRecordRejectsMalformedJSON(t *testing.T) {
	_, _, _, err := ParseRecord("this is not json")
	assert.Error(t, err)
}

func TestParseRecordRequiresSummary(t *testing.T) {
	_, _, _, err := ParseRecord(`{"document_summary": "  ", "confidence": 0.5}`)
	assert.Error(t, err)
}

func TestParseRecordClampsConfidence(t *testing.T) {
	_, _, confidence, err := ParseRecord(`{"document_summary": "s", "confidence": 7.5}`)
	require.NoError(t, err)
	assert.Equal(t, 1.0, confidence)

	_, _, confidence, err = ParseRecord(`{"document_summary": "s", "confidence": -3}`)
	require.NoError(t, err)
	assert.Equal(t, 0.0, confidence)
}
