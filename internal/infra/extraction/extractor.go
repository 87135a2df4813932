package extraction

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	domain "github.com/legallens/backend/internal/domain/extraction"
)

const pdfConfidence = 0.95

// Service implements the Extractor port: magic-byte sniffing, native PDF
// text extraction, and image text via the injected strategy.
type Service struct {
	Images   domain.ImageStrategy
	DebugDir string // when set, extracted text is mirrored to a file
	Logger   *zap.Logger
}

func NewService(images domain.ImageStrategy, debugDir string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{Images: images, DebugDir: debugDir, Logger: logger}
}

func (s *Service) Extract(ctx context.Context, content []byte, declaredType, filename string) (domain.Result, error) {
	mediaType := Sniff(content, declaredType)
	s.Logger.Info("extracting document",
		zap.String("filename", filename),
		zap.String("declared_type", declaredType),
		zap.String("detected_type", mediaType),
		zap.Int("size", len(content)))

	var res domain.Result
	switch {
	case mediaType == "application/pdf":
		res = s.extractPDF(content)
	case strings.HasPrefix(mediaType, "image/"):
		res = s.extractImage(ctx, content, mediaType)
	default:
		res = domain.Result{
			Text:      fmt.Sprintf("Unsupported file type: %s (declared: %s)", mediaType, declaredType),
			MediaType: mediaType,
			Outcome:   domain.OutcomeUnsupported,
		}
	}
	res.MediaType = mediaType

	if s.DebugDir != "" && res.OK() {
		s.writeDebugCopy(res.Text)
	}
	return res, nil
}

func (s *Service) extractPDF(content []byte) (res domain.Result) {
	res.Method = "pdf-text"
	// The pdf package panics on some malformed files; treat that as a
	// recoverable extraction failure rather than crashing the request.
	defer func() {
		if r := recover(); r != nil {
			s.Logger.Warn("pdf reader panic", zap.Any("cause", r))
			res = domain.Result{
				Text:    fmt.Sprintf("Error extracting text from PDF: %v", r),
				Method:  "pdf-text",
				Outcome: domain.OutcomeFailed,
			}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		res.Text = fmt.Sprintf("Error extracting text from PDF: %v", err)
		res.Outcome = domain.OutcomeFailed
		return res
	}

	var pages []string
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			s.Logger.Warn("page text extraction failed", zap.Int("page", i), zap.Error(err))
			continue
		}
		if strings.TrimSpace(text) != "" {
			pages = append(pages, fmt.Sprintf("=== Page %d ===\n%s", i, text))
		}
	}

	res.Pages = total
	if len(pages) == 0 {
		res.Text = "No text could be extracted from this PDF. The document may contain only images or scanned content."
		res.Outcome = domain.OutcomeNoText
		return res
	}
	res.Text = strings.Join(pages, "\n\n")
	res.Confidence = pdfConfidence
	res.Outcome = domain.OutcomeOK
	return res
}

func (s *Service) extractImage(ctx context.Context, content []byte, mediaType string) domain.Result {
	if s.Images == nil {
		return domain.Result{
			Text:    "No image text strategy configured.",
			Outcome: domain.OutcomeFailed,
		}
	}
	method := "image-" + s.Images.Name()

	text, err := s.Images.ExtractText(ctx, content, mediaType)
	if err != nil {
		s.Logger.Error("image text extraction failed", zap.String("strategy", s.Images.Name()), zap.Error(err))
		return domain.Result{
			Text:    fmt.Sprintf("Error extracting text from image: %v", err),
			Method:  method,
			Outcome: domain.OutcomeFailed,
		}
	}
	if strings.TrimSpace(text) == "" {
		return domain.Result{
			Text:    "No text could be extracted from this image. The image may not contain readable text.",
			Pages:   1,
			Method:  method,
			Outcome: domain.OutcomeNoText,
		}
	}
	return domain.Result{
		Text:       text,
		Pages:      1,
		Confidence: 0.85,
		Method:     method,
		Outcome:    domain.OutcomeOK,
	}
}

func (s *Service) writeDebugCopy(text string) {
	name := fmt.Sprintf("extracted_text_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(s.DebugDir, name)
	if err := os.MkdirAll(s.DebugDir, 0o755); err != nil {
		s.Logger.Warn("debug dir create failed", zap.Error(err))
		return
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		s.Logger.Warn("debug copy write failed", zap.String("path", path), zap.Error(err))
	}
}
