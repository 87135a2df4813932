package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/legallens/backend/internal/domain/extraction"
)

type fakeImageStrategy struct {
	text string
	err  error
}

func (f *fakeImageStrategy) ExtractText(context.Context, []byte, string) (string, error) {
	return f.text, f.err
}

func (f *fakeImageStrategy) Name() string { return "fake" }

var jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}

func TestExtractImageUsesStrategy(t *testing.T) {
	svc := NewService(&fakeImageStrategy{text: "text from image"}, "", nil)

	res, err := svc.Extract(context.Background(), jpegHeader, "application/octet-stream", "scan.jpg")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeOK, res.Outcome)
	assert.Equal(t, "text from image", res.Text)
	assert.Equal(t, "image/jpeg", res.MediaType)
	assert.Equal(t, "image-fake", res.Method)
	assert.Equal(t, 1, res.Pages)
}

func TestExtractImageEmptyTextIsNoText(t *testing.T) {
	svc := NewService(&fakeImageStrategy{text: "   "}, "", nil)

	res, err := svc.Extract(context.Background(), jpegHeader, "", "scan.jpg")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNoText, res.Outcome)
	assert.False(t, res.OK())
}

func TestExtractImageStrategyFailure(t *testing.T) {
	svc := NewService(&fakeImageStrategy{err: errors.New("ocr binary missing")}, "", nil)

	res, err := svc.Extract(context.Background(), jpegHeader, "", "scan.jpg")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFailed, res.Outcome)
	assert.Contains(t, res.Text, "ocr binary missing")
}

func TestExtractUnsupportedType(t *testing.T) {
	svc := NewService(&fakeImageStrategy{}, "", nil)

	res, err := svc.Extract(context.Background(), []byte("plain text body"), "text/plain", "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeUnsupported, res.Outcome)
	assert.Equal(t, "text/plain", res.MediaType)
}

func TestExtractMalformedPDFFailsGracefully(t *testing.T) {
	svc := NewService(nil, "", nil)

	res, err := svc.Extract(context.Background(), []byte("%PDF-1.4 truncated garbage"), "", "broken.pdf")
	require.NoError(t, err)
	assert.NotEqual(t, domain.OutcomeOK, res.Outcome)
	assert.Equal(t, "application/pdf", res.MediaType)
	assert.Equal(t, "pdf-text", res.Method)
}
