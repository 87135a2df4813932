package documents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/legallens/backend/internal/application"
	"github.com/legallens/backend/internal/domain/analysis"
	"github.com/legallens/backend/internal/domain/extraction"
	"github.com/legallens/backend/internal/domain/report"
	"github.com/legallens/backend/internal/domain/results"
)

const defaultCallTimeout = 60 * time.Second

// DemoReports serves the pre-rendered PDFs for the demo account.
type DemoReports interface {
	Open(title string) (kind string, content []byte, err error)
}

// UploadStore archives original uploads; optional.
type UploadStore interface {
	UploadBytes(ctx context.Context, content []byte, key, contentType string) (string, error)
}

// SummaryMirror mirrors per-user summaries to a document database and
// serves them back for lightweight listings; optional.
type SummaryMirror interface {
	Save(ctx context.Context, sa *results.StoredAnalysis, title string) error
	LatestByUser(ctx context.Context, userEmail string) (map[string]any, error)
}

// Service implements the document-to-report use cases.
// Thread-safe; per-request state lives on the stack.
type Service struct {
	Live      analysis.Provider
	Fixture   analysis.Provider
	Extractor extraction.Extractor
	Results   results.Store
	Renderer  report.Renderer
	Static    DemoReports
	Uploads   UploadStore   // optional
	Summaries SummaryMirror // optional
	Clock     application.Clock
	Logger    *zap.Logger

	DemoEmail   string
	CallTimeout time.Duration
}

//
// ==== USE CASES ====
//

type AnalyzeTextCommand struct {
	UserEmail     string
	DocumentTitle string
	ExtractedText string
}

type AnalyzeFileCommand struct {
	UserEmail     string
	DocumentTitle string
	Filename      string
	DeclaredType  string
	Content       []byte
}

type RenderDocumentCommand struct {
	UserEmail     string
	DocumentID    string
	DocumentTitle string
	ExtractedText string // optional; used when no stored analysis exists
}

type AnalysisResult struct {
	Record     *analysis.Record   `json:"record"`
	StorageKey string             `json:"storage_key"`
	Extraction *extraction.Result `json:"extraction,omitempty"`
}

type RenderedReport struct {
	Filename string
	Content  []byte
}

// AnalyzeText runs the analysis pipeline over already-extracted text and
// stores the result for later report generation.
func (s *Service) AnalyzeText(ctx context.Context, cmd AnalyzeTextCommand) (*AnalysisResult, error) {
	if strings.TrimSpace(cmd.ExtractedText) == "" {
		return nil, extraction.ErrEmptyDocument
	}
	rec, err := s.analyze(ctx, cmd.UserEmail, cmd.ExtractedText, cmd.DocumentTitle)
	if err != nil {
		return nil, err
	}
	return s.store(ctx, cmd.UserEmail, cmd.DocumentTitle, rec, cmd.ExtractedText)
}

// AnalyzeFile extracts text from an uploaded document and then analyzes it.
// Empty or failed extraction rejects the request before any analyzer or
// store call happens.
func (s *Service) AnalyzeFile(ctx context.Context, cmd AnalyzeFileCommand) (*AnalysisResult, error) {
	extCtx, cancel := s.callContext(ctx)
	res, err := s.Extractor.Extract(extCtx, cmd.Content, cmd.DeclaredType, cmd.Filename)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("extract document: %w", err)
	}
	if !res.OK() || strings.TrimSpace(res.Text) == "" {
		s.Logger.Info("upload rejected: no extractable text",
			zap.String("user", cmd.UserEmail),
			zap.String("outcome", string(res.Outcome)))
		return nil, fmt.Errorf("%w: %s", extraction.ErrEmptyDocument, res.Text)
	}

	s.archiveUpload(ctx, cmd)

	rec, err := s.analyze(ctx, cmd.UserEmail, res.Text, cmd.DocumentTitle)
	if err != nil {
		return nil, err
	}
	out, err := s.store(ctx, cmd.UserEmail, cmd.DocumentTitle, rec, res.Text)
	if err != nil {
		return nil, err
	}
	out.Extraction = &res
	return out, nil
}

// RenderReport produces a PDF for a user: the demo account gets its static
// file; otherwise the most recent stored analysis is rendered, falling back
// to a fresh analysis when the caller supplied text.
func (s *Service) RenderReport(ctx context.Context, cmd RenderDocumentCommand) (*RenderedReport, error) {
	if s.isDemo(cmd.UserEmail) {
		kind, content, err := s.Static.Open(cmd.DocumentTitle)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("demo_%s_analysis_%s.pdf", kind, sanitizeEmail(cmd.UserEmail))
		return &RenderedReport{Filename: name, Content: content}, nil
	}

	var rec *analysis.Record
	stored, err := s.Results.MostRecent(ctx, cmd.UserEmail)
	if err != nil {
		return nil, fmt.Errorf("load stored analysis: %w", err)
	}
	switch {
	case stored != nil:
		s.Logger.Info("rendering stored analysis",
			zap.String("user", cmd.UserEmail),
			zap.String("key", stored.Key()))
		rec = stored.Record
	case strings.TrimSpace(cmd.ExtractedText) != "":
		out, err := s.AnalyzeText(ctx, AnalyzeTextCommand{
			UserEmail:     cmd.UserEmail,
			DocumentTitle: cmd.DocumentTitle,
			ExtractedText: cmd.ExtractedText,
		})
		if err != nil {
			return nil, err
		}
		rec = out.Record
	default:
		return nil, fmt.Errorf("%w: analyze a document first, then request the report again", results.ErrNoStoredAnalysis)
	}

	content, err := s.Renderer.Render(rec)
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return &RenderedReport{Filename: reportFilename(cmd.DocumentTitle), Content: content}, nil
}

// RenderRecord renders an explicit analysis record supplied by the caller.
func (s *Service) RenderRecord(_ context.Context, rec *analysis.Record, filename string) (*RenderedReport, error) {
	content, err := s.Renderer.Render(rec)
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	if filename == "" {
		filename = "legal_analysis_report.pdf"
	}
	return &RenderedReport{Filename: filename, Content: content}, nil
}

// LatestSummary returns the newest mirrored summary for a user, or nil when
// no mirror is configured or the user has none.
func (s *Service) LatestSummary(ctx context.Context, userEmail string) (map[string]any, error) {
	if s.Summaries == nil {
		return nil, nil
	}
	ctx2, cancel := s.callContext(ctx)
	defer cancel()
	doc, err := s.Summaries.LatestByUser(ctx2, userEmail)
	if err != nil {
		return nil, fmt.Errorf("load summary: %w", err)
	}
	return doc, nil
}

// IsDemo reports whether the user is the reserved demo account.
func (s *Service) IsDemo(userEmail string) bool { return s.isDemo(userEmail) }

//
// ==== internals ====
//

// analyze selects the provider once per request; the rest of the flow is
// unaware which variant ran.
func (s *Service) analyze(ctx context.Context, userEmail, text, title string) (*analysis.Record, error) {
	if s.isDemo(userEmail) {
		s.Logger.Info("demo account: serving fixture analysis",
			zap.String("user", userEmail), zap.String("title", title))
		return s.Fixture.Analyze(ctx, text, title)
	}

	ctx2, cancel := s.callContext(ctx)
	defer cancel()
	rec, err := s.Live.Analyze(ctx2, text, title)
	if err != nil {
		if ctx2.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w: analysis timed out", analysis.ErrUpstreamUnavailable)
		}
		return nil, err
	}
	return rec, nil
}

func (s *Service) store(ctx context.Context, userEmail, title string, rec *analysis.Record, sourceText string) (*AnalysisResult, error) {
	key, err := s.Results.Put(ctx, userEmail, rec, sourceText)
	if err != nil {
		return nil, fmt.Errorf("store analysis: %w", err)
	}

	if s.Summaries != nil && !s.isDemo(userEmail) {
		s.mirrorSummary(ctx, userEmail, title, rec, sourceText, key)
	}

	// The response carries the storage key; the stored record stays clean.
	out := rec.Clone()
	out.Metadata[analysis.MetaStorageKey] = key
	return &AnalysisResult{Record: out, StorageKey: key}, nil
}

func (s *Service) mirrorSummary(ctx context.Context, userEmail, title string, rec *analysis.Record, sourceText, key string) {
	stored, err := s.Results.MostRecent(ctx, userEmail)
	if err != nil || stored == nil || stored.Key() != key {
		stored = &results.StoredAnalysis{UserEmail: userEmail, CreatedAt: s.now(), Record: rec, SourceText: sourceText}
	}
	ctx2, cancel := s.callContext(ctx)
	defer cancel()
	if err := s.Summaries.Save(ctx2, stored, title); err != nil {
		s.Logger.Warn("summary mirror write failed", zap.String("user", userEmail), zap.Error(err))
	}
}

func (s *Service) archiveUpload(ctx context.Context, cmd AnalyzeFileCommand) {
	if s.Uploads == nil {
		return
	}
	key := fmt.Sprintf("documents/%s/%s/%s", cmd.UserEmail, uuid.New().String(), cmd.Filename)
	ctx2, cancel := s.callContext(ctx)
	defer cancel()
	if url, err := s.Uploads.UploadBytes(ctx2, cmd.Content, key, cmd.DeclaredType); err != nil {
		s.Logger.Warn("upload archive failed", zap.String("key", key), zap.Error(err))
	} else {
		s.Logger.Info("upload archived", zap.String("url", url))
	}
}

func (s *Service) isDemo(userEmail string) bool {
	return s.DemoEmail != "" && strings.EqualFold(strings.TrimSpace(userEmail), s.DemoEmail)
}

func (s *Service) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.CallTimeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func (s *Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now()
	}
	return time.Now()
}

func sanitizeEmail(email string) string {
	email = strings.ReplaceAll(email, "@", "_")
	return strings.ReplaceAll(email, ".", "_")
}

func reportFilename(title string) string {
	base := "legal_document"
	if t := strings.TrimSpace(title); t != "" {
		t = strings.ToLower(strings.ReplaceAll(t, " ", "_"))
		if len(t) > 30 {
			t = t[:30]
		}
		base = t
	}
	return fmt.Sprintf("comprehensive_analysis_%s.pdf", base)
}
