package fixture

import (
	"context"
	"strings"

	"github.com/legallens/backend/internal/domain/analysis"
)

// Kind classifies a document title into one of the fixed demo documents.
type Kind string

const (
	KindLoan       Kind = "loan"
	KindRental     Kind = "rental"
	KindInternship Kind = "internship"
	KindTamil      Kind = "tamil"
)

// Classify picks the demo record for a document title. Substring match on a
// few keywords; the loan agreement is the default. Deterministic: the same
// title always selects the same record.
func Classify(title string) Kind {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "rental") || strings.Contains(t, "rent"):
		return KindRental
	case strings.Contains(t, "internship") || strings.Contains(t, "nda") || strings.Contains(t, "confidentiality"):
		return KindInternship
	case strings.Contains(t, "kadan") || strings.Contains(t, "tamil") || strings.Contains(title, "கடன்"):
		return KindTamil
	default:
		return KindLoan
	}
}

// Provider serves canned analysis records for the demo account without
// touching any external service. Records are immutable; Analyze returns a
// copy so callers can decorate metadata freely.
type Provider struct{}

func NewProvider() *Provider { return &Provider{} }

func (p *Provider) Analyze(_ context.Context, _ string, title string) (*analysis.Record, error) {
	return records[Classify(title)].Clone(), nil
}

// Record exposes the raw fixture for a kind; used by tests and the demo
// catalog.
func Record(kind Kind) *analysis.Record { return records[kind] }
