package extraction

import "context"

// Extractor turns raw document bytes into plain text. The declared media
// type is a hint only; implementations sniff the real type from magic bytes.
type Extractor interface {
	Extract(ctx context.Context, content []byte, declaredType, filename string) (Result, error)
}

// ImageStrategy extracts text from a single image. Implementations: a local
// OCR engine and a vision-capable LLM call, selected by configuration.
type ImageStrategy interface {
	ExtractText(ctx context.Context, content []byte, mediaType string) (string, error)
	Name() string
}
