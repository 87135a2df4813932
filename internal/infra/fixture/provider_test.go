package fixture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		title string
		want  Kind
	}{
		{"Residential Rental Agreement - Pollachi", KindRental},
		{"House Rent Deed", KindRental},
		{"Internship Confidentiality Agreement - Global Tech", KindInternship},
		{"Employee NDA", KindInternship},
		{"கடன் உறுதி பத்திரம் - பொள்ளாச்சி", KindTamil},
		{"kadan pathiram", KindTamil},
		{"Tamil loan deed", KindTamil},
		{"Business Loan Agreement - ICICI Bank", KindLoan},
		{"", KindLoan},
		{"Some unrelated document", KindLoan},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.title), "title %q", tc.title)
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	a, err := p.Analyze(ctx, "ignored text", "rental agreement")
	require.NoError(t, err)
	b, err := p.Analyze(ctx, "different text", "rental agreement")
	require.NoError(t, err)

	assert.Equal(t, a.DocumentSummary, b.DocumentSummary)
	assert.Equal(t, a.LegalTerms, b.LegalTerms)
}

func TestAnalyzeReturnsIndependentCopies(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	a, err := p.Analyze(ctx, "", "loan")
	require.NoError(t, err)
	a.Metadata["storage_key"] = "mutated"
	a.DocumentSummary = "mutated"
	if len(a.LegalTerms) > 0 {
		a.LegalTerms[0].Definition = "mutated"
	}

	b, err := p.Analyze(ctx, "", "loan")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", b.DocumentSummary)
	assert.NotContains(t, b.Metadata, "storage_key")
	if len(b.LegalTerms) > 0 {
		assert.NotEqual(t, "mutated", b.LegalTerms[0].Definition)
	}
}

func TestRecordsAreComplete(t *testing.T) {
	for _, kind := range []Kind{KindLoan, KindRental, KindInternship, KindTamil} {
		rec := Record(kind)
		require.NotNil(t, rec, "kind %s", kind)
		assert.NotEmpty(t, rec.DocumentSummary, "kind %s", kind)
		assert.NotEmpty(t, rec.LegalTerms, "kind %s", kind)
		assert.NotEmpty(t, rec.RiskAnalysis, "kind %s", kind)
		assert.NotEmpty(t, rec.ApplicableLaws, "kind %s", kind)
		assert.NotEmpty(t, rec.Metadata, "kind %s", kind)
	}
}

func TestCatalogTitlesMapToTheirKinds(t *testing.T) {
	wants := map[string]Kind{
		"demo_loan_doc_001":       KindLoan,
		"demo_rental_doc_002":     KindRental,
		"demo_internship_doc_003": KindInternship,
		"demo_tamil_doc_004":      KindTamil,
	}
	for _, doc := range Catalog() {
		assert.Equal(t, wants[doc.ID], Classify(doc.Title), "doc %s", doc.ID)
	}
}
