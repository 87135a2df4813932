package extraction

// Outcome tags the extraction result. Absence of text and unsupported
// formats are reportable outcomes, not errors; callers branch on Outcome
// instead of inspecting the text for magic strings.
type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeNoText      Outcome = "no_text"
	OutcomeUnsupported Outcome = "unsupported"
	OutcomeFailed      Outcome = "failed"
)

// Result of extracting text from an uploaded document. For non-OK outcomes
// Text carries a human-readable description and Confidence is zero.
type Result struct {
	Text       string  `json:"text"`
	Pages      int     `json:"pages"`
	Confidence float64 `json:"confidence"`
	MediaType  string  `json:"media_type"`
	Method     string  `json:"method"` // "pdf-text" | "image-ocr" | "image-vision"
	Outcome    Outcome `json:"outcome"`
}

// OK reports whether usable text was extracted.
func (r Result) OK() bool { return r.Outcome == OutcomeOK }
