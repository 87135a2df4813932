package results

import (
	"context"

	"github.com/legallens/backend/internal/domain/analysis"
)

// Store is the keyed, retention-bounded cache bridging "analyze" and
// "render report". Put flushes to durable storage before returning and
// propagates flush failures. MostRecent returns nil when the user has no
// stored analysis.
type Store interface {
	Put(ctx context.Context, userEmail string, rec *analysis.Record, sourceText string) (string, error)
	MostRecent(ctx context.Context, userEmail string) (*StoredAnalysis, error)
	Flush() error
}
