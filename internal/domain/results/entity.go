package results

import (
	"fmt"
	"time"

	"github.com/legallens/backend/internal/domain/analysis"
)

// StoredAnalysis wraps an analysis record with provenance: owning user,
// original extracted text, and creation time. Seq is a process-wide
// monotonic sequence number, so two writes for the same user within the
// same wall-clock second cannot collide.
type StoredAnalysis struct {
	UserEmail  string           `json:"user_email"`
	Seq        uint64           `json:"seq"`
	CreatedAt  time.Time        `json:"created_at"`
	Record     *analysis.Record `json:"full_analysis"`
	SourceText string           `json:"extracted_text"`
}

// Key is the string form under which the entry is stored. Zero-padding the
// sequence keeps keys for a user in lexicographic insert order.
func (s *StoredAnalysis) Key() string {
	return fmt.Sprintf("%s_%d_%06d", s.UserEmail, s.CreatedAt.Unix(), s.Seq)
}
