package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	appdocs "github.com/legallens/backend/internal/application/documents"
	"github.com/legallens/backend/internal/domain/analysis"
	"github.com/legallens/backend/internal/domain/extraction"
	"github.com/legallens/backend/internal/domain/results"
	"github.com/legallens/backend/internal/infra/fixture"
	"github.com/legallens/backend/internal/middleware"
)

const defaultMaxUploadBytes = 32 << 20

type Router struct {
	docsSvc   *appdocs.Service
	logger    *zap.Logger
	health    http.HandlerFunc
	maxUpload int64
}

func NewRouter(docsSvc *appdocs.Service, logger *zap.Logger, health http.HandlerFunc, maxUploadBytes int64) http.Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	r := &Router{docsSvc: docsSvc, logger: logger, health: health, maxUpload: maxUploadBytes}
	mux := chi.NewRouter()

	mux.Get("/health", r.health)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Post("/comprehensive-analysis", r.wrap(r.handleComprehensiveAnalysis))
	mux.Post("/analyze-document-file", r.wrap(r.handleAnalyzeDocumentFile))
	mux.Post("/generate-pdf-report", r.wrap(r.handleGeneratePDFReport))
	mux.Post("/generate-pdf-from-document", r.wrap(r.handleGeneratePDFFromDocument))
	mux.Get("/demo-documents", r.wrap(r.handleDemoDocuments))
	mux.Get("/analysis-summaries/latest", r.wrap(r.handleLatestSummary))

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			r.logger.Warn("request failed",
				zap.String("path", req.URL.Path),
				zap.Error(err))
			writeError(w, err)
		}
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, extraction.ErrEmptyDocument),
		errors.Is(err, results.ErrNoStoredAnalysis),
		errors.Is(err, errBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, analysis.ErrQuotaExceeded):
		status = http.StatusTooManyRequests
	case errors.Is(err, analysis.ErrAnalysisFailed):
		status = http.StatusBadGateway
	case errors.Is(err, analysis.ErrUpstreamUnavailable):
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// errBadRequest marks validation failures so wrap maps them to 400.
var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

type analysisResponse struct {
	Success         bool                     `json:"success"`
	DocumentSummary string                   `json:"document_summary"`
	LegalTerms      []analysis.LegalTerm     `json:"legal_terms"`
	RiskAnalysis    string                   `json:"risk_analysis"`
	ApplicableLaws  []analysis.ApplicableLaw `json:"applicable_laws"`
	Metadata        analysis.Metadata        `json:"processing_metadata"`
	Extraction      *extraction.Result       `json:"extraction,omitempty"`
}

func toAnalysisResponse(res *appdocs.AnalysisResult) analysisResponse {
	return analysisResponse{
		Success:         true,
		DocumentSummary: res.Record.DocumentSummary,
		LegalTerms:      res.Record.LegalTerms,
		RiskAnalysis:    res.Record.RiskAnalysis,
		ApplicableLaws:  res.Record.ApplicableLaws,
		Metadata:        res.Record.Metadata,
		Extraction:      res.Extraction,
	}
}

// POST /comprehensive-analysis
// Body: {"extracted_text": "...", "user_email": "...", "document_title": "..."}
func (r *Router) handleComprehensiveAnalysis(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		ExtractedText string `json:"extracted_text"`
		UserEmail     string `json:"user_email"`
		DocumentTitle string `json:"document_title"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid JSON body: %v", err)
	}
	if err := middleware.ValidateEmail(body.UserEmail); err != nil {
		return badRequest("%v", err)
	}
	if err := middleware.ValidateDocumentTitle(body.DocumentTitle); err != nil {
		return badRequest("%v", err)
	}

	res, err := r.docsSvc.AnalyzeText(req.Context(), appdocs.AnalyzeTextCommand{
		UserEmail:     body.UserEmail,
		DocumentTitle: body.DocumentTitle,
		ExtractedText: body.ExtractedText,
	})
	if err != nil {
		middleware.IncrementAnalysesFailed()
		return err
	}
	middleware.IncrementAnalyses()

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(toAnalysisResponse(res))
}

// POST /analyze-document-file
// Multipart form: file, user_email, document_title
func (r *Router) handleAnalyzeDocumentFile(w http.ResponseWriter, req *http.Request) error {
	if err := req.ParseMultipartForm(r.maxUpload); err != nil {
		return badRequest("invalid multipart form: %v", err)
	}
	userEmail := req.FormValue("user_email")
	title := req.FormValue("document_title")
	if err := middleware.ValidateEmail(userEmail); err != nil {
		return badRequest("%v", err)
	}
	if err := middleware.ValidateDocumentTitle(title); err != nil {
		return badRequest("%v", err)
	}

	file, header, err := req.FormFile("file")
	if err != nil {
		return badRequest("file is required: %v", err)
	}
	defer file.Close()

	if err := middleware.ValidateUploadSize(header.Size, r.maxUpload); err != nil {
		return badRequest("%v", err)
	}
	content, err := io.ReadAll(io.LimitReader(file, r.maxUpload+1))
	if err != nil {
		return fmt.Errorf("read upload: %w", err)
	}

	res, err := r.docsSvc.AnalyzeFile(req.Context(), appdocs.AnalyzeFileCommand{
		UserEmail:     userEmail,
		DocumentTitle: title,
		Filename:      middleware.SanitizeFilename(header.Filename),
		DeclaredType:  header.Header.Get("Content-Type"),
		Content:       content,
	})
	if err != nil {
		middleware.IncrementAnalysesFailed()
		return err
	}
	middleware.IncrementAnalyses()

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(toAnalysisResponse(res))
}

// POST /generate-pdf-report
// Body: {"analysis_data": {...}, "filename": "report.pdf"}
func (r *Router) handleGeneratePDFReport(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		AnalysisData *analysis.Record `json:"analysis_data"`
		Filename     string           `json:"filename"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid JSON body: %v", err)
	}
	if body.AnalysisData == nil || body.AnalysisData.DocumentSummary == "" {
		return badRequest("analysis_data with a document_summary is required")
	}

	rep, err := r.docsSvc.RenderRecord(req.Context(), body.AnalysisData, middleware.SanitizeFilename(body.Filename))
	if err != nil {
		return err
	}
	middleware.IncrementReports()
	return streamPDF(w, rep)
}

// POST /generate-pdf-from-document
// Body: {"document_id": "...", "document_title": "...", "user_email": "...", "extracted_text": "..."}
func (r *Router) handleGeneratePDFFromDocument(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		DocumentID    string `json:"document_id"`
		DocumentTitle string `json:"document_title"`
		UserEmail     string `json:"user_email"`
		ExtractedText string `json:"extracted_text"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid JSON body: %v", err)
	}
	if err := middleware.ValidateEmail(body.UserEmail); err != nil {
		return badRequest("%v", err)
	}

	rep, err := r.docsSvc.RenderReport(req.Context(), appdocs.RenderDocumentCommand{
		UserEmail:     body.UserEmail,
		DocumentID:    body.DocumentID,
		DocumentTitle: body.DocumentTitle,
		ExtractedText: body.ExtractedText,
	})
	if err != nil {
		return err
	}
	middleware.IncrementReports()
	return streamPDF(w, rep)
}

// GET /demo-documents?user_email=
// The fixed catalog is only visible to the demo account; everyone else gets
// an empty list so the frontend renders its normal upload flow.
func (r *Router) handleDemoDocuments(w http.ResponseWriter, req *http.Request) error {
	userEmail := req.URL.Query().Get("user_email")

	docs := []fixture.DemoDocument{}
	if r.docsSvc.IsDemo(userEmail) {
		docs = fixture.Catalog()
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(map[string]any{
		"documents": docs,
		"count":     len(docs),
	})
}

// GET /analysis-summaries/latest?user_email=
// Serves the newest mirrored summary for a user; "summary" is null when the
// mirror is disabled or the user has none.
func (r *Router) handleLatestSummary(w http.ResponseWriter, req *http.Request) error {
	userEmail := req.URL.Query().Get("user_email")
	if err := middleware.ValidateEmail(userEmail); err != nil {
		return badRequest("%v", err)
	}

	doc, err := r.docsSvc.LatestSummary(req.Context(), userEmail)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(map[string]any{"summary": doc})
}

func streamPDF(w http.ResponseWriter, rep *appdocs.RenderedReport) error {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rep.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(rep.Content)))
	_, err := w.Write(rep.Content)
	return err
}
