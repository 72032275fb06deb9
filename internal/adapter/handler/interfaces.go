package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/lumen-gallery/lumen-backend/internal/domain/entity"
	"github.com/lumen-gallery/lumen-backend/internal/usecase/ingest"
	"github.com/lumen-gallery/lumen-backend/internal/usecase/process"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type IngestService interface {
	Upload(ctx context.Context, input ingest.UploadInput) (*entity.Photo, error)
	Get(ctx context.Context, ownerID, photoID uuid.UUID) (*entity.Photo, error)
	Delete(ctx context.Context, ownerID, photoID uuid.UUID) error
}

type ProcessService interface {
	Process(ctx context.Context, input process.ProcessInput) (*process.ProcessResult, error)
}
