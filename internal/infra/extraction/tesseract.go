package extraction

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const minOCRDimension = 1000

// TesseractStrategy extracts image text by shelling out to the tesseract
// binary, with imaging-based pre-processing to improve yield on small or
// low-contrast scans.
type TesseractStrategy struct {
	Binary  string // defaults to "tesseract"
	Lang    string // defaults to "eng"
	WorkDir string // defaults to os.TempDir()
	Logger  *zap.Logger
}

func NewTesseractStrategy(binary, lang, workDir string, logger *zap.Logger) *TesseractStrategy {
	if binary == "" {
		binary = "tesseract"
	}
	if lang == "" {
		lang = "eng"
	}
	if workDir == "" {
		workDir = os.TempDir()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TesseractStrategy{Binary: binary, Lang: lang, WorkDir: workDir, Logger: logger}
}

func (t *TesseractStrategy) Name() string { return "ocr" }

func (t *TesseractStrategy) ExtractText(ctx context.Context, content []byte, mediaType string) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	img = preprocessForOCR(img)

	inPath := filepath.Join(t.WorkDir, fmt.Sprintf("ocr-%s.png", uuid.New().String()))
	if err := imaging.Save(img, inPath); err != nil {
		return "", fmt.Errorf("write ocr input: %w", err)
	}
	defer os.Remove(inPath)

	// PSM 1: automatic page segmentation with orientation detection.
	text, err := t.run(ctx, inPath, "1")
	if err != nil {
		return "", err
	}

	// Concatenated output usually means the segmentation guess was wrong;
	// retry assuming a single uniform block of text.
	if text != "" && IsConcatenated(text) {
		t.Logger.Info("ocr output looks concatenated, retrying with psm 6")
		if retry, rerr := t.run(ctx, inPath, "6"); rerr == nil && retry != "" {
			text = retry
		}
	}
	if text != "" && IsConcatenated(text) {
		text = FixSpacing(text)
	}
	return text, nil
}

func (t *TesseractStrategy) run(ctx context.Context, inPath, psm string) (string, error) {
	outBase := strings.TrimSuffix(inPath, ".png") + "-" + psm
	cmd := exec.CommandContext(ctx, t.Binary, inPath, outBase,
		"-l", t.Lang, "--oem", "3", "--psm", psm)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("tesseract run error: %v, output=%s", err, string(out))
	}
	outPath := outBase + ".txt"
	defer os.Remove(outPath)

	data, err := os.ReadFile(outPath)
	if err != nil {
		return "", fmt.Errorf("read tesseract output: %w", err)
	}
	return string(data), nil
}

// preprocessForOCR upscales small images, flattens color, raises contrast
// and sharpens edges before handing the image to tesseract.
func preprocessForOCR(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() < minOCRDimension || b.Dy() < minOCRDimension {
		img = imaging.Resize(img, b.Dx()*2, 0, imaging.Lanczos)
	}
	img = imaging.Grayscale(img)
	img = imaging.AdjustContrast(img, 50)
	img = imaging.Sharpen(img, 1.0)
	return img
}
