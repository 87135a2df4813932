package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/legallens/backend/internal/infra/fixture"
)

var staticFiles = map[fixture.Kind]string{
	fixture.KindLoan:       "loan_result.pdf",
	fixture.KindRental:     "rental_result.pdf",
	fixture.KindInternship: "result_intern.pdf",
	fixture.KindTamil:      "result_kadan.pdf",
}

// StaticReports serves pre-rendered PDFs for the demo account. The renderer
// is bypassed entirely; the file is selected by the same title keyword
// heuristic the fixture provider uses.
type StaticReports struct {
	Dir string
}

func NewStaticReports(dir string) *StaticReports { return &StaticReports{Dir: dir} }

// Open returns the demo PDF for a document title along with the kind used
// to select it.
func (s *StaticReports) Open(title string) (string, []byte, error) {
	kind := fixture.Classify(title)
	path := filepath.Join(s.Dir, staticFiles[kind])
	content, err := os.ReadFile(path)
	if err != nil {
		return string(kind), nil, fmt.Errorf("demo report %s unavailable: %w", staticFiles[kind], err)
	}
	return string(kind), content, nil
}
