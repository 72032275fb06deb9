// Package metadata pulls capture metadata out of uploaded files. Extraction
// is best-effort: any internal failure yields a partial or empty value and a
// log line, never an error to the caller.
package metadata

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/rwcarlsen/goexif/exif"
	"go.uber.org/zap"

	"github.com/lumen-gallery/lumen-backend/internal/domain/valueobject"
)

type Extractor struct {
	logger *zap.Logger
}

func NewExtractor(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract reads capture metadata from file bytes. RAW inputs go through the
// EXIF tag allow-list; standard images surface container-level information
// plus decoded pixel dimensions. Width and height stay 0 when unavailable.
func (e *Extractor) Extract(data []byte, filename string, isRaw bool) valueobject.CaptureMetadata {
	if isRaw {
		return e.extractRaw(data, filename)
	}
	return e.extractStandard(data, filename)
}

// Tags read from RAW containers. Unknown tags are ignored.
var allowedTags = []struct {
	field exif.FieldName
	set   func(*valueobject.CaptureMetadata, string)
}{
	{exif.Make, func(m *valueobject.CaptureMetadata, v string) { m.CameraMake = v }},
	{exif.Model, func(m *valueobject.CaptureMetadata, v string) { m.CameraModel = v }},
	{exif.LensModel, func(m *valueobject.CaptureMetadata, v string) { m.LensModel = v }},
	{exif.DateTimeOriginal, func(m *valueobject.CaptureMetadata, v string) { m.CapturedAt = v }},
	{exif.ISOSpeedRatings, func(m *valueobject.CaptureMetadata, v string) { m.ISO = v }},
	{exif.FNumber, func(m *valueobject.CaptureMetadata, v string) { m.Aperture = v }},
	{exif.ExposureTime, func(m *valueobject.CaptureMetadata, v string) { m.ExposureTime = v }},
	{exif.FocalLength, func(m *valueobject.CaptureMetadata, v string) { m.FocalLength = v }},
	{exif.WhiteBalance, func(m *valueobject.CaptureMetadata, v string) { m.WhiteBalance = v }},
	{exif.ColorSpace, func(m *valueobject.CaptureMetadata, v string) { m.ColorSpace = v }},
	{exif.Orientation, func(m *valueobject.CaptureMetadata, v string) { m.Orientation = v }},
	{exif.Software, func(m *valueobject.CaptureMetadata, v string) { m.Software = v }},
	{exif.Artist, func(m *valueobject.CaptureMetadata, v string) { m.Artist = v }},
	{exif.Copyright, func(m *valueobject.CaptureMetadata, v string) { m.Copyright = v }},
}

func (e *Extractor) extractRaw(data []byte, filename string) valueobject.CaptureMetadata {
	var meta valueobject.CaptureMetadata

	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		e.logger.Debug("exif decode failed, returning empty metadata",
			zap.String("filename", filename),
			zap.Error(err),
		)
		return meta
	}

	for _, t := range allowedTags {
		if v := tagValue(x, t.field); v != "" {
			t.set(&meta, v)
		}
	}

	meta.Width = tagInt(x, exif.PixelXDimension)
	meta.Height = tagInt(x, exif.PixelYDimension)
	if meta.Width == 0 {
		meta.Width = tagInt(x, exif.ImageWidth)
	}
	if meta.Height == 0 {
		meta.Height = tagInt(x, exif.ImageLength)
	}

	return meta
}

func (e *Extractor) extractStandard(data []byte, filename string) valueobject.CaptureMetadata {
	var meta valueobject.CaptureMetadata

	cfg, formatName, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		e.logger.Debug("image config decode failed, returning empty metadata",
			zap.String("filename", filename),
			zap.Error(err),
		)
		return meta
	}

	meta.Format = formatName
	meta.Width = cfg.Width
	meta.Height = cfg.Height
	meta.HasAlpha = modelHasAlpha(cfg.ColorModel)

	return meta
}

func modelHasAlpha(model color.Model) bool {
	switch model {
	case color.RGBAModel, color.RGBA64Model, color.NRGBAModel, color.NRGBA64Model, color.AlphaModel, color.Alpha16Model:
		return true
	}
	return false
}

func tagValue(x *exif.Exif, field exif.FieldName) string {
	tag, err := x.Get(field)
	if err != nil {
		return ""
	}
	if s, err := tag.StringVal(); err == nil {
		return s
	}
	if i, err := tag.Int(0); err == nil {
		return fmt.Sprintf("%d", i)
	}
	if num, den, err := tag.Rat2(0); err == nil && den != 0 {
		return fmt.Sprintf("%d/%d", num, den)
	}
	return ""
}

func tagInt(x *exif.Exif, field exif.FieldName) int {
	tag, err := x.Get(field)
	if err != nil {
		return 0
	}
	v, err := tag.Int(0)
	if err != nil {
		return 0
	}
	return v
}
