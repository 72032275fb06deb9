package response

import (
	"time"

	"github.com/lumen-gallery/lumen-backend/internal/domain/entity"
)

type PhotoResponse struct {
	ID               string            `json:"id"`
	CollectionID     string            `json:"collection_id"`
	ParentPhotoID    string            `json:"parent_photo_id,omitempty"`
	OriginalFilename string            `json:"original_filename"`
	Filename         string            `json:"filename"`
	IsRaw            bool              `json:"is_raw"`
	RawFormat        string            `json:"raw_format,omitempty"`
	Width            int               `json:"width"`
	Height           int               `json:"height"`
	Variants         map[string]string `json:"variants"`
	ProcessingStatus string            `json:"processing_status"`
	Metadata         map[string]any    `json:"metadata,omitempty"`
	OrderIndex       int               `json:"order_index"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func PhotoFromEntity(photo *entity.Photo) PhotoResponse {
	variants := make(map[string]string, len(photo.Variants))
	for kind, url := range photo.Variants {
		variants[string(kind)] = url
	}

	resp := PhotoResponse{
		ID:               photo.ID.String(),
		CollectionID:     photo.CollectionID.String(),
		OriginalFilename: photo.OriginalFilename,
		Filename:         photo.Filename,
		IsRaw:            photo.IsRaw,
		RawFormat:        photo.RawFormat,
		Width:            photo.Width,
		Height:           photo.Height,
		Variants:         variants,
		ProcessingStatus: string(photo.ProcessingStatus),
		Metadata:         photo.Metadata,
		OrderIndex:       photo.OrderIndex,
		CreatedAt:        photo.CreatedAt,
		UpdatedAt:        photo.UpdatedAt,
	}
	if photo.ParentPhotoID != nil {
		resp.ParentPhotoID = photo.ParentPhotoID.String()
	}
	return resp
}
