package openai

import "context"

// VisionStrategy adapts the client's vision call to the extraction
// ImageStrategy port, as the configurable alternative to local OCR.
type VisionStrategy struct {
	Client *Client
}

func (v *VisionStrategy) Name() string { return "vision" }

func (v *VisionStrategy) ExtractText(ctx context.Context, content []byte, mediaType string) (string, error) {
	return v.Client.ExtractImageText(ctx, content, mediaType)
}
