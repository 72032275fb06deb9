// Package ingest implements the per-upload workflow: classify, persist the
// original, extract metadata, generate derivatives, persist the photo record,
// and update the owning collection's summary.
package ingest

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lumen-gallery/lumen-backend/internal/adapter/media"
	"github.com/lumen-gallery/lumen-backend/internal/adapter/repository"
	"github.com/lumen-gallery/lumen-backend/internal/adapter/storage"
	"github.com/lumen-gallery/lumen-backend/internal/domain"
	"github.com/lumen-gallery/lumen-backend/internal/domain/entity"
	"github.com/lumen-gallery/lumen-backend/internal/media/format"
)

type Service struct {
	photoRepo      repository.PhotoRepository
	collectionRepo repository.CollectionRepository
	store          storage.VariantStore
	extractor      media.MetadataExtractor
	generator      media.DerivativeGenerator
	logger         *zap.Logger
}

func NewService(
	photoRepo repository.PhotoRepository,
	collectionRepo repository.CollectionRepository,
	store storage.VariantStore,
	extractor media.MetadataExtractor,
	generator media.DerivativeGenerator,
	logger *zap.Logger,
) *Service {
	return &Service{
		photoRepo:      photoRepo,
		collectionRepo: collectionRepo,
		store:          store,
		extractor:      extractor,
		generator:      generator,
		logger:         logger,
	}
}

type UploadInput struct {
	OwnerID      uuid.UUID
	CollectionID uuid.UUID
	File         io.Reader
	Filename     string
	Size         int64
}

// Upload runs the full ingestion sequence. Once the original bytes are
// durably stored, derivative and metadata failures degrade gracefully: the
// photo record is still created and returned, with fallback details recorded
// in its metadata.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*entity.Photo, error) {
	collection, err := s.collectionRepo.GetByID(ctx, input.CollectionID)
	if err != nil {
		return nil, err
	}
	if collection.OwnerID != input.OwnerID {
		return nil, domain.ErrForbidden
	}

	kind := format.Classify(input.Filename)
	if kind == format.KindUnsupported {
		return nil, domain.ErrUnsupportedFormat
	}
	isRaw := kind == format.KindRaw

	data, err := io.ReadAll(input.File)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(input.Filename))
	filename := uuid.New().String() + ext

	if err := s.store.Provision(ctx, input.CollectionID); err != nil {
		return nil, fmt.Errorf("provisioning storage: %w", err)
	}

	originalURL, err := s.store.Save(ctx, input.CollectionID, storage.CategoryOriginal, filename, data)
	if err != nil {
		return nil, fmt.Errorf("storing original: %w", err)
	}

	photo := entity.NewPhoto(input.CollectionID, input.Filename, filename, isRaw, format.RawFormat(input.Filename))
	photo.SetVariant(entity.VariantOriginal, originalURL)

	meta := s.extractor.Extract(data, input.Filename, isRaw)
	photo.Width = meta.Width
	photo.Height = meta.Height
	photo.MergeMetadata(meta.Map())

	s.generateVariants(ctx, photo, data, input.Filename, isRaw)
	photo.ProcessingStatus = entity.StatusCompleted

	count, err := s.photoRepo.CountByCollection(ctx, input.CollectionID)
	if err != nil {
		s.rollbackOriginal(ctx, input.CollectionID, filename)
		return nil, fmt.Errorf("counting photos: %w", err)
	}
	// Concurrent uploads into one collection can race here and produce
	// duplicate order indices. Ordering is a display hint, not a uniqueness
	// invariant.
	photo.OrderIndex = count + 1

	if err := s.photoRepo.Create(ctx, photo); err != nil {
		s.rollbackOriginal(ctx, input.CollectionID, filename)
		return nil, fmt.Errorf("creating photo record: %w", err)
	}

	cover := collection.CoverPhotoID
	if !collection.HasCover() {
		cover = &photo.ID
	}
	if err := s.collectionRepo.UpdateSummary(ctx, collection.ID, count+1, cover); err != nil {
		// The photo record is durable; the summary is a projection that can
		// be reconciled later.
		s.logger.Warn("collection summary update failed",
			zap.String("collection_id", collection.ID.String()),
			zap.Error(err),
		)
	}

	return photo, nil
}

// variantKinds lists the derivative kinds generated per upload. Kinds are
// independent: one falling back never blocks the others.
func variantKinds(isRaw bool) []entity.VariantKind {
	kinds := []entity.VariantKind{entity.VariantThumbnail, entity.VariantWeb, entity.VariantHighRes}
	if isRaw {
		kinds = append(kinds, entity.VariantPreview)
	}
	return kinds
}

func (s *Service) generateVariants(ctx context.Context, photo *entity.Photo, data []byte, originalName string, isRaw bool) {
	fallbacks := make(map[string]any)

	for _, kind := range variantKinds(isRaw) {
		res := s.generator.Generate(data, originalName, isRaw, kind)
		if len(res.Bytes) == 0 {
			fallbacks[string(kind)] = "empty render"
			continue
		}

		url, err := s.store.Save(ctx, photo.CollectionID, storage.CategoryFor(kind), storage.VariantFilename(kind, photo.Filename), res.Bytes)
		if err != nil {
			s.logger.Warn("variant write failed",
				zap.String("photo_id", photo.ID.String()),
				zap.String("kind", string(kind)),
				zap.Error(err),
			)
			fallbacks[string(kind)] = "write failed"
			continue
		}

		photo.SetVariant(kind, url)
		if res.Fallback {
			fallbacks[string(kind)] = res.Reason
		}
	}

	if len(fallbacks) > 0 {
		photo.MergeMetadata(map[string]any{"derivativeFallbacks": fallbacks})
	}
}

func (s *Service) rollbackOriginal(ctx context.Context, collectionID uuid.UUID, filename string) {
	if err := s.store.DeletePhoto(ctx, collectionID, filename); err != nil {
		s.logger.Error("rollback of stored original failed",
			zap.String("collection_id", collectionID.String()),
			zap.String("filename", filename),
			zap.Error(err),
		)
	}
}

// Get returns a photo after verifying collection ownership.
func (s *Service) Get(ctx context.Context, ownerID, photoID uuid.UUID) (*entity.Photo, error) {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return nil, err
	}

	collection, err := s.collectionRepo.GetByID(ctx, photo.CollectionID)
	if err != nil {
		return nil, err
	}
	if collection.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}

	return photo, nil
}

// Delete removes the photo record and every stored file derived from it,
// then rolls the collection summary forward. Files that are already missing
// are tolerated.
func (s *Service) Delete(ctx context.Context, ownerID, photoID uuid.UUID) error {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return err
	}

	collection, err := s.collectionRepo.GetByID(ctx, photo.CollectionID)
	if err != nil {
		return err
	}
	if collection.OwnerID != ownerID {
		return domain.ErrForbidden
	}

	if err := s.photoRepo.Delete(ctx, photoID); err != nil {
		return fmt.Errorf("deleting photo record: %w", err)
	}

	if err := s.store.DeletePhoto(ctx, photo.CollectionID, photo.Filename); err != nil {
		return fmt.Errorf("deleting photo files: %w", err)
	}

	count, err := s.photoRepo.CountByCollection(ctx, photo.CollectionID)
	if err != nil {
		s.logger.Warn("post-delete photo count failed", zap.Error(err))
		return nil
	}

	cover := collection.CoverPhotoID
	if cover != nil && *cover == photo.ID {
		cover = nil
	}
	if err := s.collectionRepo.UpdateSummary(ctx, collection.ID, count, cover); err != nil {
		s.logger.Warn("collection summary update failed",
			zap.String("collection_id", collection.ID.String()),
			zap.Error(err),
		)
	}

	return nil
}
