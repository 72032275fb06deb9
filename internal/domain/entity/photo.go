package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProcessingStatus string

const (
	StatusPending    ProcessingStatus = "pending"
	StatusProcessing ProcessingStatus = "processing"
	StatusCompleted  ProcessingStatus = "completed"
	StatusFailed     ProcessingStatus = "failed"
)

type VariantKind string

const (
	VariantOriginal  VariantKind = "original"
	VariantThumbnail VariantKind = "thumbnail"
	VariantWeb       VariantKind = "web"
	VariantHighRes   VariantKind = "highRes"
	VariantPreview   VariantKind = "preview"
)

type Photo struct {
	ID               uuid.UUID
	CollectionID     uuid.UUID
	ParentPhotoID    *uuid.UUID
	OriginalFilename string
	Filename         string
	IsRaw            bool
	RawFormat        string
	Width            int
	Height           int
	Variants         map[VariantKind]string
	ProcessingStatus ProcessingStatus
	Metadata         map[string]any
	OrderIndex       int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewPhoto(collectionID uuid.UUID, originalFilename, filename string, isRaw bool, rawFormat string) *Photo {
	now := time.Now().UTC()
	return &Photo{
		ID:               uuid.New(),
		CollectionID:     collectionID,
		OriginalFilename: originalFilename,
		Filename:         filename,
		IsRaw:            isRaw,
		RawFormat:        rawFormat,
		Variants:         make(map[VariantKind]string),
		ProcessingStatus: StatusPending,
		Metadata:         make(map[string]any),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// SetVariant records the stable URL of one rendition. The original variant is
// written exactly once, before the record is persisted.
func (p *Photo) SetVariant(kind VariantKind, url string) {
	if p.Variants == nil {
		p.Variants = make(map[VariantKind]string)
	}
	p.Variants[kind] = url
}

// Variant returns the recorded URL for a rendition, empty when the rendition
// was never produced.
func (p *Photo) Variant(kind VariantKind) string {
	return p.Variants[kind]
}

// MergeMetadata adds entries without removing existing ones. The metadata bag
// is additive over the photo's lifetime.
func (p *Photo) MergeMetadata(extra map[string]any) {
	if p.Metadata == nil {
		p.Metadata = make(map[string]any)
	}
	for k, v := range extra {
		p.Metadata[k] = v
	}
}
