package analysis

import "context"

// Provider produces an analysis record for extracted document text.
// Implementations: the live LLM-backed provider and the demo fixture
// provider. The orchestration layer selects one per request and is
// otherwise unaware of the distinction.
type Provider interface {
	Analyze(ctx context.Context, text, title string) (*Record, error)
}
