package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/lumen-gallery/lumen-backend/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type PhotoRepository interface {
	Create(ctx context.Context, photo *entity.Photo) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error)
	ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]entity.Photo, error)
	CountByCollection(ctx context.Context, collectionID uuid.UUID) (int, error)
	Update(ctx context.Context, photo *entity.Photo) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CollectionRepository interface {
	Create(ctx context.Context, collection *entity.Collection) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error)
	UpdateSummary(ctx context.Context, id uuid.UUID, photoCount int, coverPhotoID *uuid.UUID) error
}
