package report

import "github.com/legallens/backend/internal/domain/analysis"

// Renderer converts an analysis record into a formatted document byte
// stream. Pure function of its input; repeated calls over the same record
// produce identical textual content.
type Renderer interface {
	Render(rec *analysis.Record) ([]byte, error)
}
