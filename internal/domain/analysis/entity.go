package analysis

// Metadata keys present on every record.
const (
	MetaTimestamp      = "analysis_timestamp"
	MetaAnalysisType   = "analysis_type"
	MetaDocumentType   = "document_type"
	MetaTextLength     = "original_text_length"
	MetaConfidence     = "confidence_score"
	MetaStorageKey     = "storage_key"
)

// LegalTerm is one glossary entry. Source records which path produced the
// definition (canonical dictionary row, the model, or a fixture).
type LegalTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Source     string `json:"source"`
}

// ApplicableLaw is one statute citation with a plain-language description.
type ApplicableLaw struct {
	Law         string `json:"law"`
	Description string `json:"description"`
}

// Metadata is a flat string-to-scalar map. It always carries an RFC-3339
// timestamp under MetaTimestamp and a confidence score in [0,1] under
// MetaConfidence.
type Metadata map[string]any

// Record is the normalized output of a document analysis. LegalTerms and
// ApplicableLaws keep generation order; display order matters and there is
// no natural sort key.
type Record struct {
	DocumentSummary string          `json:"document_summary"`
	LegalTerms      []LegalTerm     `json:"legal_terms"`
	RiskAnalysis    string          `json:"risk_analysis"`
	ApplicableLaws  []ApplicableLaw `json:"applicable_laws"`
	Metadata        Metadata        `json:"processing_metadata"`
}

// Clone returns a deep copy so callers can decorate metadata without
// mutating shared records (fixtures are package-level values).
func (r *Record) Clone() *Record {
	out := &Record{
		DocumentSummary: r.DocumentSummary,
		RiskAnalysis:    r.RiskAnalysis,
	}
	out.LegalTerms = append([]LegalTerm(nil), r.LegalTerms...)
	out.ApplicableLaws = append([]ApplicableLaw(nil), r.ApplicableLaws...)
	out.Metadata = make(Metadata, len(r.Metadata))
	for k, v := range r.Metadata {
		out.Metadata[k] = v
	}
	return out
}
