package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/legallens/backend/internal/domain/analysis"
)

// AnalysisSystemPrompt provides strict directions and schema for JSON output.
func AnalysisSystemPrompt() string {
	return `You are a senior legal analyst who explains documents to non-lawyers. You must produce one valid JSON object only (no markdown, no commentary) that follows the schema below. Do not include code fences.

Requirements:
- Output must be a single JSON object.
- document_summary: plain-language summary of the document in 2-4 paragraphs.
- legal_terms: complex legal terms actually present in the document, each with a short plain-language definition. Keep the order in which terms appear.
- risk_analysis: a narrative starting with "OVERALL RISK LEVEL:" followed by sectioned findings and recommendations.
- applicable_laws: statutes or regulations that govern this document, each with a one-sentence description of why it applies.
- document_type: a short label such as "Rental Agreement" or "Loan Agreement".
- confidence: your confidence in the analysis as a number between 0 and 1.

Schema (example with empty values):
{
  "document_summary": "<string>",
  "legal_terms": [
    {"term": "<string>", "definition": "<string>"}
  ],
  "risk_analysis": "<string>",
  "applicable_laws": [
    {"law": "<string>", "description": "<string>"}
  ],
  "document_type": "<string>",
  "confidence": 0.0
}`
}

// AnalysisUserPrompt builds the user message around the extracted text.
func AnalysisUserPrompt(text, title string) string {
	if title == "" {
		title = "Legal Document"
	}
	return fmt.Sprintf("Analyze the following legal document titled %q and respond with the JSON per schema.\n\n%s", title, text)
}

// ImageTextPrompt instructs the vision model to transcribe, not interpret.
func ImageTextPrompt() string {
	return "Extract all readable text from this document image. Preserve the reading order and line breaks. Return only the extracted text with no commentary."
}

// TermDefinitionPrompt asks for a single standalone definition.
func TermDefinitionPrompt(term string) string {
	return fmt.Sprintf("Provide a one or two sentence plain-language definition of the legal term %q as used in Indian law. Return only the definition.", term)
}

type analysisPayload struct {
	DocumentSummary string `json:"document_summary"`
	LegalTerms      []struct {
		Term       string `json:"term"`
		Definition string `json:"definition"`
	} `json:"legal_terms"`
	RiskAnalysis   string `json:"risk_analysis"`
	ApplicableLaws []struct {
		Law         string `json:"law"`
		Description string `json:"description"`
	} `json:"applicable_laws"`
	DocumentType string  `json:"document_type"`
	Confidence   float64 `json:"confidence"`
}

// ParseRecord converts the model's raw JSON payload into a Record. Term and
// law order is preserved as generated. The record carries no metadata yet;
// the provider fills that in.
func ParseRecord(raw string) (*analysis.Record, string, float64, error) {
	raw = strings.TrimSpace(raw)
	// Some models wrap the JSON in fences despite instructions.
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var p analysisPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, "", 0, fmt.Errorf("unmarshal analysis payload: %w", err)
	}
	if strings.TrimSpace(p.DocumentSummary) == "" {
		return nil, "", 0, fmt.Errorf("analysis payload missing document_summary")
	}

	rec := &analysis.Record{
		DocumentSummary: p.DocumentSummary,
		RiskAnalysis:    p.RiskAnalysis,
	}
	for _, t := range p.LegalTerms {
		if strings.TrimSpace(t.Term) == "" {
			continue
		}
		rec.LegalTerms = append(rec.LegalTerms, analysis.LegalTerm{Term: t.Term, Definition: t.Definition})
	}
	for _, l := range p.ApplicableLaws {
		if strings.TrimSpace(l.Law) == "" {
			continue
		}
		rec.ApplicableLaws = append(rec.ApplicableLaws, analysis.ApplicableLaw{Law: l.Law, Description: l.Description})
	}

	conf := p.Confidence
	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}
	return rec, p.DocumentType, conf, nil
}
