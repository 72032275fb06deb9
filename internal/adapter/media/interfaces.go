// Package media declares the pipeline services the usecases consume. The
// implementations live under internal/media; the interfaces exist so usecase
// tests can mock them.
package media

import (
	"github.com/lumen-gallery/lumen-backend/internal/domain/entity"
	"github.com/lumen-gallery/lumen-backend/internal/domain/valueobject"
	"github.com/lumen-gallery/lumen-backend/internal/media/adjust"
	"github.com/lumen-gallery/lumen-backend/internal/media/derivative"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/media_mocks.go -package=mocks

// MetadataExtractor reads capture metadata from file bytes, best-effort.
type MetadataExtractor interface {
	Extract(data []byte, filename string, isRaw bool) valueobject.CaptureMetadata
}

// DerivativeGenerator renders one resolution-specific variant.
type DerivativeGenerator interface {
	Generate(src []byte, filename string, isRaw bool, kind entity.VariantKind) derivative.Result
}

// AdjustmentRenderer applies a settings snapshot to a photo's base image.
type AdjustmentRenderer interface {
	Render(src []byte, filename string, isRaw bool, settings valueobject.ProcessingSettings) adjust.RenderResult
}
