// Package process implements the adjustment workflow: validate a settings
// snapshot, re-render the photo's base image through the adjustment pipeline,
// and persist the result either onto the photo itself or as a new child photo.
package process

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lumen-gallery/lumen-backend/internal/adapter/media"
	"github.com/lumen-gallery/lumen-backend/internal/adapter/repository"
	"github.com/lumen-gallery/lumen-backend/internal/adapter/storage"
	"github.com/lumen-gallery/lumen-backend/internal/domain"
	"github.com/lumen-gallery/lumen-backend/internal/domain/entity"
	"github.com/lumen-gallery/lumen-backend/internal/domain/valueobject"
)

const processedPrefix = "processed_"

type Service struct {
	photoRepo      repository.PhotoRepository
	collectionRepo repository.CollectionRepository
	store          storage.VariantStore
	renderer       media.AdjustmentRenderer
	generator      media.DerivativeGenerator
	logger         *zap.Logger
}

func NewService(
	photoRepo repository.PhotoRepository,
	collectionRepo repository.CollectionRepository,
	store storage.VariantStore,
	renderer media.AdjustmentRenderer,
	generator media.DerivativeGenerator,
	logger *zap.Logger,
) *Service {
	return &Service{
		photoRepo:      photoRepo,
		collectionRepo: collectionRepo,
		store:          store,
		renderer:       renderer,
		generator:      generator,
		logger:         logger,
	}
}

type ProcessInput struct {
	OwnerID   uuid.UUID
	PhotoID   uuid.UUID
	Settings  valueobject.ProcessingSettings
	Preset    string
	SaveAsNew bool
}

type ProcessResult struct {
	// Photo carries the outcome: the adjusted photo itself, or the newly
	// created child when SaveAsNew was requested.
	Photo        *entity.Photo
	ProcessedURL string
	Settings     valueobject.ProcessingSettings
	SavedAsNew   bool
}

// Process applies an adjustment snapshot to a photo. Settings are validated
// before any state changes; from there the photo moves processing -> completed
// or processing -> failed, and a processed derivative is written either way
// (the failure path writes a labeled stand-in).
func (s *Service) Process(ctx context.Context, input ProcessInput) (*ProcessResult, error) {
	photo, err := s.photoRepo.GetByID(ctx, input.PhotoID)
	if err != nil {
		return nil, err
	}

	collection, err := s.collectionRepo.GetByID(ctx, photo.CollectionID)
	if err != nil {
		return nil, err
	}
	if collection.OwnerID != input.OwnerID {
		return nil, domain.ErrForbidden
	}

	settings := input.Settings
	if input.Preset != "" {
		preset, ok := Preset(input.Preset)
		if !ok {
			return nil, fmt.Errorf("%w: unknown preset %q", domain.ErrInvalidSettings, input.Preset)
		}
		settings = preset
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSettings, err)
	}

	photo.ProcessingStatus = entity.StatusProcessing
	photo.UpdatedAt = time.Now()
	if err := s.photoRepo.Update(ctx, photo); err != nil {
		return nil, fmt.Errorf("marking photo processing: %w", err)
	}

	original, err := s.store.Read(ctx, photo.CollectionID, storage.CategoryOriginal, photo.Filename)
	if err != nil {
		s.markFailed(ctx, photo, "original file unavailable")
		return nil, fmt.Errorf("%w: %v", domain.ErrOriginalUnavailable, err)
	}

	rendered := s.renderer.Render(original, photo.Filename, photo.IsRaw, settings)

	target := photo
	if input.SaveAsNew && !rendered.Fallback {
		target = s.childOf(photo, rendered.Width, rendered.Height)
	}

	processedName := processedPrefix + storage.BaseName(target.Filename) + ".jpg"
	processedURL, err := s.store.Save(ctx, photo.CollectionID, storage.CategoryProcessed, processedName, rendered.Bytes)
	if err != nil {
		s.markFailed(ctx, photo, "processed write failed")
		return nil, fmt.Errorf("storing processed render: %w", err)
	}

	if rendered.Fallback {
		s.markFailed(ctx, photo, rendered.Reason)
		return &ProcessResult{Photo: photo, ProcessedURL: processedURL, Settings: settings}, nil
	}

	target.Width = rendered.Width
	target.Height = rendered.Height
	target.SetVariant(entity.VariantPreview, processedURL)
	s.refreshDisplayVariants(ctx, target, rendered.Bytes)
	appendHistory(target, settings, processedURL)
	target.ProcessingStatus = entity.StatusCompleted
	target.UpdatedAt = time.Now()

	if input.SaveAsNew {
		if err := s.createChild(ctx, collection, photo, target); err != nil {
			s.markFailed(ctx, photo, "saving adjusted copy failed")
			return nil, err
		}
	} else {
		if err := s.photoRepo.Update(ctx, target); err != nil {
			return nil, fmt.Errorf("persisting processed photo: %w", err)
		}
	}

	return &ProcessResult{
		Photo:        target,
		ProcessedURL: processedURL,
		Settings:     settings,
		SavedAsNew:   input.SaveAsNew,
	}, nil
}

// childOf builds the save-as-new photo. The child shares the parent's stored
// original (no byte copy) but gets its own filename for derivatives.
func (s *Service) childOf(parent *entity.Photo, width, height int) *entity.Photo {
	ext := strings.ToLower(filepath.Ext(parent.Filename))
	child := entity.NewPhoto(parent.CollectionID, parent.OriginalFilename, uuid.New().String()+ext, parent.IsRaw, parent.RawFormat)
	child.ParentPhotoID = &parent.ID
	child.Width = width
	child.Height = height
	child.SetVariant(entity.VariantOriginal, parent.Variant(entity.VariantOriginal))
	return child
}

// refreshDisplayVariants regenerates the web and high-res derivatives from the
// rendered JPEG so the gallery serves the adjusted look. Stored names are
// deterministic, so for an in-place edit the existing files are overwritten and
// the URLs stay stable. Failures degrade: the processed render itself is
// already durable.
func (s *Service) refreshDisplayVariants(ctx context.Context, target *entity.Photo, rendered []byte) {
	for _, kind := range []entity.VariantKind{entity.VariantWeb, entity.VariantHighRes} {
		res := s.generator.Generate(rendered, target.Filename, false, kind)
		if len(res.Bytes) == 0 || res.Fallback {
			s.logger.Warn("display variant refresh failed",
				zap.String("photo_id", target.ID.String()),
				zap.String("kind", string(kind)),
				zap.String("reason", res.Reason),
			)
			continue
		}
		url, err := s.store.Save(ctx, target.CollectionID, storage.CategoryFor(kind), storage.VariantFilename(kind, target.Filename), res.Bytes)
		if err != nil {
			s.logger.Warn("display variant write failed",
				zap.String("photo_id", target.ID.String()),
				zap.String("kind", string(kind)),
				zap.Error(err),
			)
			continue
		}
		target.SetVariant(kind, url)
	}
}

func (s *Service) createChild(ctx context.Context, collection *entity.Collection, parent, child *entity.Photo) error {
	count, err := s.photoRepo.CountByCollection(ctx, collection.ID)
	if err != nil {
		return fmt.Errorf("counting photos: %w", err)
	}
	child.OrderIndex = count + 1

	if err := s.photoRepo.Create(ctx, child); err != nil {
		return fmt.Errorf("creating adjusted copy: %w", err)
	}

	// The parent was moved to processing earlier; the edit landed on the
	// child, so the parent record is untouched and goes back to completed.
	parent.ProcessingStatus = entity.StatusCompleted
	parent.UpdatedAt = time.Now()
	if err := s.photoRepo.Update(ctx, parent); err != nil {
		s.logger.Warn("restoring parent status failed",
			zap.String("photo_id", parent.ID.String()),
			zap.Error(err),
		)
	}

	cover := collection.CoverPhotoID
	if !collection.HasCover() {
		cover = &child.ID
	}
	if err := s.collectionRepo.UpdateSummary(ctx, collection.ID, count+1, cover); err != nil {
		s.logger.Warn("collection summary update failed",
			zap.String("collection_id", collection.ID.String()),
			zap.Error(err),
		)
	}

	return nil
}

func appendHistory(photo *entity.Photo, settings valueobject.ProcessingSettings, url string) {
	entry := map[string]any{
		"settings":   settings.Map(),
		"renderedAt": time.Now().UTC().Format(time.RFC3339),
		"output":     url,
	}

	history, _ := photo.Metadata["processingHistory"].([]any)
	photo.MergeMetadata(map[string]any{"processingHistory": append(history, entry)})
}

func (s *Service) markFailed(ctx context.Context, photo *entity.Photo, reason string) {
	photo.ProcessingStatus = entity.StatusFailed
	photo.UpdatedAt = time.Now()
	photo.MergeMetadata(map[string]any{
		"processingError":    reason,
		"processingFailedAt": time.Now().UTC().Format(time.RFC3339),
	})
	if err := s.photoRepo.Update(ctx, photo); err != nil {
		s.logger.Error("recording processing failure failed",
			zap.String("photo_id", photo.ID.String()),
			zap.Error(err),
		)
	}
}
