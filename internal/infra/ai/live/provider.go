package live

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/legallens/backend/internal/application"
	"github.com/legallens/backend/internal/domain/analysis"
	"github.com/legallens/backend/internal/domain/dictionary"
	"github.com/legallens/backend/internal/infra/ai/prompt"
)

// AIClient is the slice of the OpenAI client the live provider needs.
type AIClient interface {
	AnalyzeDocument(ctx context.Context, text, title string) (string, error)
	DefineTerm(ctx context.Context, term string) (string, error)
}

// Provider is the real analysis chain: one LLM round trip for the
// structured analysis, then per-term resolution against the canonical
// dictionary with an LLM fallback.
type Provider struct {
	AI     AIClient
	Terms  dictionary.Repository // optional; nil skips canonical lookups
	Clock  application.Clock
	Logger *zap.Logger
}

func NewProvider(ai AIClient, terms dictionary.Repository, clock application.Clock, logger *zap.Logger) *Provider {
	if clock == nil {
		clock = application.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{AI: ai, Terms: terms, Clock: clock, Logger: logger}
}

func (p *Provider) Analyze(ctx context.Context, text, title string) (*analysis.Record, error) {
	raw, err := p.AI.AnalyzeDocument(ctx, text, title)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", analysis.ErrAnalysisFailed, err)
	}

	rec, docType, confidence, err := prompt.ParseRecord(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", analysis.ErrAnalysisFailed, err)
	}

	p.resolveTerms(ctx, rec)

	if docType == "" {
		docType = "Legal Document"
	}
	if confidence == 0 {
		confidence = 0.9
	}
	rec.Metadata = analysis.Metadata{
		analysis.MetaTimestamp:    p.Clock.Now().UTC().Format(time.RFC3339),
		analysis.MetaAnalysisType: "comprehensive_legal_analysis",
		analysis.MetaDocumentType: docType,
		analysis.MetaTextLength:   len(text),
		analysis.MetaConfidence:   confidence,
	}

	p.Logger.Info("live analysis complete",
		zap.String("document_type", docType),
		zap.Int("terms", len(rec.LegalTerms)),
		zap.Int("laws", len(rec.ApplicableLaws)),
		zap.Float64("confidence", confidence))
	return rec, nil
}

// resolveTerms prefers canonical dictionary definitions and records the
// producing path in each term's Source field. Lookup failures degrade to
// the model's own definition; they never fail the analysis.
func (p *Provider) resolveTerms(ctx context.Context, rec *analysis.Record) {
	for i := range rec.LegalTerms {
		term := &rec.LegalTerms[i]

		if p.Terms != nil {
			def, err := p.Terms.Lookup(ctx, term.Term)
			if err != nil {
				p.Logger.Warn("dictionary lookup failed", zap.String("term", term.Term), zap.Error(err))
			} else if def != nil {
				term.Definition = def.Meaning
				if def.Source != "" {
					term.Source = def.Source
				} else {
					term.Source = "legal_dictionary"
				}
				continue
			}
		}

		if term.Definition == "" {
			def, err := p.AI.DefineTerm(ctx, term.Term)
			if err != nil {
				p.Logger.Warn("term definition fallback failed", zap.String("term", term.Term), zap.Error(err))
				term.Definition = "No definition available."
			} else {
				term.Definition = def
			}
		}
		term.Source = "ai_generated"
	}
}
