package adjust

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"path/filepath"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/lumen-gallery/lumen-backend/internal/domain/valueobject"
	"github.com/lumen-gallery/lumen-backend/internal/media/derivative"
)

// Final encode is always quality 95, regardless of the input's quality.
const finalEncodeQuality = 95

const fallbackRenderSize = 1600

// RenderResult is the outcome of one render invocation. Fallback marks a
// labeled placeholder produced after an internal failure; the caller records
// the photo as failed in that case.
type RenderResult struct {
	Bytes    []byte
	Width    int
	Height   int
	Fallback bool
	Reason   string
}

// Renderer resolves a base image from original bytes and applies the
// adjustment pipeline to it. The original is never modified.
type Renderer struct {
	raw    derivative.RawDecoder
	logger *zap.Logger
}

func NewRenderer(raw derivative.RawDecoder, logger *zap.Logger) *Renderer {
	return &Renderer{raw: raw, logger: logger}
}

// Render applies validated settings to the photo's base image and encodes the
// final output. It never returns an error: any failure inside the pipeline
// degrades to a labeled placeholder summarizing the requested settings.
func (r *Renderer) Render(src []byte, filename string, isRaw bool, s valueobject.ProcessingSettings) (result RenderResult) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("adjustment pipeline panicked, degrading to fallback render",
				zap.String("filename", filename),
				zap.Any("panic", rec),
			)
			result = r.fallbackRender(filename, s, fmt.Sprintf("pipeline panic: %v", rec))
		}
	}()

	base, reason := r.baseImage(src, filename, isRaw)
	if base == nil {
		return r.fallbackRender(filename, s, reason)
	}

	adjusted := imaging.Clone(base)
	if !s.IsIdentity() {
		adjusted = Apply(base, s)
	}

	data, err := encodeFinal(adjusted)
	if err != nil {
		r.logger.Error("final encode failed, degrading to fallback render",
			zap.String("filename", filename),
			zap.Error(err),
		)
		return r.fallbackRender(filename, s, "final encode failed")
	}

	b := adjusted.Bounds()
	return RenderResult{Bytes: data, Width: b.Dx(), Height: b.Dy()}
}

func (r *Renderer) baseImage(src []byte, filename string, isRaw bool) (image.Image, string) {
	if isRaw {
		preview, err := r.raw.EmbeddedPreview(src)
		if err == nil {
			return preview, ""
		}
		// No preview and no demosaicing: adjust the deterministic stand-in
		// so the operation still yields a visible, labeled result.
		return derivative.RenderPlaceholder(fallbackRenderSize, fallbackRenderSize*2/3,
			[]string{"RAW PREVIEW UNAVAILABLE", filepath.Base(filename)}), ""
	}

	img, err := imaging.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, "base image decode failed"
	}
	return img, ""
}

// fallbackRender produces the labeled placeholder that summarizes the
// requested settings when the pipeline itself failed.
func (r *Renderer) fallbackRender(filename string, s valueobject.ProcessingSettings, reason string) RenderResult {
	lines := []string{
		"PROCESSING FAILED",
		filepath.Base(filename),
		fmt.Sprintf("exposure %+.1f contrast %+.0f", s.Exposure, s.Contrast),
		fmt.Sprintf("temp %.0fK tint %+.0f", s.Temperature, s.Tint),
		fmt.Sprintf("sat %+.0f vib %+.0f clarity %+.0f", s.Saturation, s.Vibrance, s.Clarity),
	}
	img := derivative.RenderPlaceholder(fallbackRenderSize, fallbackRenderSize*2/3, lines)

	data, err := encodeFinal(img)
	if err != nil {
		data = nil
	}
	b := img.Bounds()
	return RenderResult{Bytes: data, Width: b.Dx(), Height: b.Dy(), Fallback: true, Reason: reason}
}

func encodeFinal(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: finalEncodeQuality}); err != nil {
		return nil, fmt.Errorf("encoding jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
