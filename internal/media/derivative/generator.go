// Package derivative renders resolution-specific variants of an uploaded
// image: thumbnail, web, high-res, and the RAW preview. Generation never
// fails outright; when a source cannot be decoded the generator substitutes a
// deterministic placeholder so no variant is ever completely absent.
package derivative

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"path/filepath"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/lumen-gallery/lumen-backend/internal/domain/entity"
)

// Spec is the target envelope for one variant kind: maximum bounding box and
// fixed encode quality. Fit mode is contain, never upscale.
type Spec struct {
	MaxDimension int
	Quality      int
}

var specs = map[entity.VariantKind]Spec{
	entity.VariantThumbnail: {MaxDimension: 400, Quality: 80},
	entity.VariantWeb:       {MaxDimension: 1200, Quality: 85},
	entity.VariantHighRes:   {MaxDimension: 2400, Quality: 90},
	entity.VariantPreview:   {MaxDimension: 2048, Quality: 90},
}

// SpecFor returns the envelope for a variant kind.
func SpecFor(kind entity.VariantKind) (Spec, bool) {
	s, ok := specs[kind]
	return s, ok
}

// Result is the outcome of generating one variant. Fallback marks output that
// came from a placeholder render rather than the real source; Reason says why.
type Result struct {
	Bytes    []byte
	Width    int
	Height   int
	Fallback bool
	Reason   string
}

// RawDecoder resolves a renderable base image from a RAW container, without
// demosaicing.
type RawDecoder interface {
	EmbeddedPreview(data []byte) (image.Image, error)
}

type Generator struct {
	raw    RawDecoder
	logger *zap.Logger
}

func NewGenerator(raw RawDecoder, logger *zap.Logger) *Generator {
	return &Generator{raw: raw, logger: logger}
}

// Generate produces one variant from source bytes. Kinds are independent: a
// failure here affects only this variant, and the caller decides what a
// fallback means for the photo's overall status.
func (g *Generator) Generate(src []byte, filename string, isRaw bool, kind entity.VariantKind) Result {
	spec, ok := specs[kind]
	if !ok {
		spec = specs[entity.VariantWeb]
	}

	base, reason := g.baseImage(src, filename, isRaw, spec)

	fitted := fitWithin(base, spec.MaxDimension)
	data, err := encodeJPEG(fitted, spec.Quality)
	if err != nil {
		g.logger.Warn("derivative encode failed, substituting placeholder",
			zap.String("filename", filename),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return g.placeholderResult(spec, filename, "encode failed")
	}

	bounds := fitted.Bounds()
	return Result{
		Bytes:    data,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Fallback: reason != "",
		Reason:   reason,
	}
}

// baseImage resolves the renderable source. Priority: embedded preview for
// RAW, full decode for standard images, then the labeled synthetic stand-in.
// The reason string is empty only for a genuine decode.
func (g *Generator) baseImage(src []byte, filename string, isRaw bool, spec Spec) (image.Image, string) {
	if isRaw {
		preview, err := g.raw.EmbeddedPreview(src)
		if err == nil {
			return preview, ""
		}
		g.logger.Debug("no usable embedded preview, rendering synthetic stand-in",
			zap.String("filename", filename),
			zap.Error(err),
		)
		return syntheticRawImage(spec.MaxDimension, filename), "no embedded preview"
	}

	img, err := imaging.Decode(bytes.NewReader(src))
	if err != nil {
		g.logger.Warn("source decode failed, substituting placeholder",
			zap.String("filename", filename),
			zap.Error(err),
		)
		return RenderPlaceholder(spec.MaxDimension, spec.MaxDimension*2/3,
			[]string{"UNREADABLE IMAGE", filepath.Base(filename)}), "decode failed"
	}
	return img, ""
}

func (g *Generator) placeholderResult(spec Spec, filename, reason string) Result {
	img := RenderPlaceholder(spec.MaxDimension, spec.MaxDimension*2/3,
		[]string{"UNAVAILABLE", filepath.Base(filename)})
	data, err := encodeJPEG(img, spec.Quality)
	if err != nil {
		// Placeholder encode cannot realistically fail; keep the variant
		// present with an empty body rather than dropping it.
		data = nil
	}
	b := img.Bounds()
	return Result{Bytes: data, Width: b.Dx(), Height: b.Dy(), Fallback: true, Reason: reason}
}

// syntheticRawImage is the deterministic stand-in for a RAW file with no
// extractable preview. True sensor demosaicing is out of scope; the render is
// labeled so it is never mistaken for a real decode.
func syntheticRawImage(maxDim int, filename string) image.Image {
	return RenderPlaceholder(maxDim, maxDim*2/3, []string{
		"RAW PREVIEW UNAVAILABLE",
		filepath.Base(filename),
		fmt.Sprintf("rendered %dpx stand-in", maxDim),
	})
}

// fitWithin scales the image down to fit the bounding box, preserving aspect
// ratio. Sources already inside the envelope pass through untouched; nothing
// is ever upscaled.
func fitWithin(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxDim && b.Dy() <= maxDim {
		return img
	}
	return imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encoding jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
