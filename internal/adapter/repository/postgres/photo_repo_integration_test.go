package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-gallery/lumen-backend/internal/adapter/repository/postgres"
	"github.com/lumen-gallery/lumen-backend/internal/domain"
	"github.com/lumen-gallery/lumen-backend/internal/domain/entity"
)

func createTestCollection(t *testing.T, db *TestDB) *entity.Collection {
	t.Helper()
	repo := postgres.NewCollectionRepo(db.Pool)
	ctx := context.Background()

	now := time.Now().UTC()
	collection := &entity.Collection{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Name:      "Wedding Shoot",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, collection))
	return collection
}

func newTestPhoto(collectionID uuid.UUID) *entity.Photo {
	photo := entity.NewPhoto(collectionID, "IMG_0001.CR2", "abc123.cr2", true, "cr2")
	photo.Width = 6000
	photo.Height = 4000
	photo.SetVariant(entity.VariantOriginal, "/files/x/original/abc123.cr2")
	photo.SetVariant(entity.VariantThumbnail, "/files/x/thumbnails/thumb_abc123.jpg")
	photo.ProcessingStatus = entity.StatusCompleted
	photo.MergeMetadata(map[string]any{"cameraMake": "Canon", "iso": "400"})
	photo.OrderIndex = 1
	return photo
}

func TestIntegrationPhotoRepo_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewPhotoRepo(db.Pool)
	ctx := context.Background()

	t.Run("round-trips a photo with variants and metadata", func(t *testing.T) {
		db.Truncate(t, "photos", "collections")
		collection := createTestCollection(t, db)

		photo := newTestPhoto(collection.ID)
		require.NoError(t, repo.Create(ctx, photo))

		found, err := repo.GetByID(ctx, photo.ID)
		require.NoError(t, err)
		assert.Equal(t, photo.ID, found.ID)
		assert.True(t, found.IsRaw)
		assert.Equal(t, "cr2", found.RawFormat)
		assert.Equal(t, 6000, found.Width)
		assert.Equal(t, "/files/x/original/abc123.cr2", found.Variants[entity.VariantOriginal])
		assert.Equal(t, "Canon", found.Metadata["cameraMake"])
		assert.Equal(t, entity.StatusCompleted, found.ProcessingStatus)
	})

	t.Run("returns not found error", func(t *testing.T) {
		db.Truncate(t, "photos", "collections")

		found, err := repo.GetByID(ctx, uuid.New())
		assert.Nil(t, found)
		assert.ErrorIs(t, err, domain.ErrPhotoNotFound)
	})
}

func TestIntegrationPhotoRepo_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewPhotoRepo(db.Pool)
	ctx := context.Background()

	t.Run("persists status, variants and metadata changes", func(t *testing.T) {
		db.Truncate(t, "photos", "collections")
		collection := createTestCollection(t, db)

		photo := newTestPhoto(collection.ID)
		require.NoError(t, repo.Create(ctx, photo))

		photo.ProcessingStatus = entity.StatusFailed
		photo.SetVariant(entity.VariantWeb, "/files/x/web/web_abc123.jpg")
		photo.MergeMetadata(map[string]any{"processingError": "boom"})
		photo.UpdatedAt = time.Now().UTC()
		require.NoError(t, repo.Update(ctx, photo))

		found, err := repo.GetByID(ctx, photo.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusFailed, found.ProcessingStatus)
		assert.Equal(t, "/files/x/web/web_abc123.jpg", found.Variants[entity.VariantWeb])
		assert.Equal(t, "boom", found.Metadata["processingError"])
		assert.Equal(t, "Canon", found.Metadata["cameraMake"], "metadata is additive")
	})

	t.Run("returns not found for missing photo", func(t *testing.T) {
		db.Truncate(t, "photos", "collections")

		missing := newTestPhoto(uuid.New())
		err := repo.Update(ctx, missing)
		assert.ErrorIs(t, err, domain.ErrPhotoNotFound)
	})
}

func TestIntegrationPhotoRepo_ListAndCount(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewPhotoRepo(db.Pool)
	ctx := context.Background()

	db.Truncate(t, "photos", "collections")
	collection := createTestCollection(t, db)

	for i := 1; i <= 3; i++ {
		photo := entity.NewPhoto(collection.ID, "a.jpg", uuid.New().String()+".jpg", false, "")
		photo.SetVariant(entity.VariantOriginal, "/files/o")
		photo.OrderIndex = i
		require.NoError(t, repo.Create(ctx, photo))
	}

	photos, err := repo.ListByCollection(ctx, collection.ID)
	require.NoError(t, err)
	require.Len(t, photos, 3)
	assert.Equal(t, 1, photos[0].OrderIndex)
	assert.Equal(t, 3, photos[2].OrderIndex)

	count, err := repo.CountByCollection(ctx, collection.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestIntegrationPhotoRepo_ParentLineage(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewPhotoRepo(db.Pool)
	ctx := context.Background()

	db.Truncate(t, "photos", "collections")
	collection := createTestCollection(t, db)

	parent := newTestPhoto(collection.ID)
	require.NoError(t, repo.Create(ctx, parent))

	child := entity.NewPhoto(collection.ID, parent.OriginalFilename, "def456.cr2", true, "cr2")
	child.ParentPhotoID = &parent.ID
	child.SetVariant(entity.VariantOriginal, parent.Variants[entity.VariantOriginal])
	require.NoError(t, repo.Create(ctx, child))

	found, err := repo.GetByID(ctx, child.ID)
	require.NoError(t, err)
	require.NotNil(t, found.ParentPhotoID)
	assert.Equal(t, parent.ID, *found.ParentPhotoID)
}

func TestIntegrationPhotoRepo_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewPhotoRepo(db.Pool)
	ctx := context.Background()

	db.Truncate(t, "photos", "collections")
	collection := createTestCollection(t, db)

	photo := newTestPhoto(collection.ID)
	require.NoError(t, repo.Create(ctx, photo))
	require.NoError(t, repo.Delete(ctx, photo.ID))

	_, err := repo.GetByID(ctx, photo.ID)
	assert.ErrorIs(t, err, domain.ErrPhotoNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, photo.ID), domain.ErrPhotoNotFound)
}
