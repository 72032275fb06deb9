package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumen-gallery/lumen-backend/internal/domain"
	"github.com/lumen-gallery/lumen-backend/internal/domain/entity"
)

type CollectionRepo struct {
	pool *pgxpool.Pool
}

func NewCollectionRepo(pool *pgxpool.Pool) *CollectionRepo {
	return &CollectionRepo{pool: pool}
}

func (r *CollectionRepo) Create(ctx context.Context, collection *entity.Collection) error {
	query := `
		INSERT INTO collections (id, owner_id, name, photo_count, cover_photo_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		collection.ID, collection.OwnerID, collection.Name,
		collection.PhotoCount, collection.CoverPhotoID,
		collection.CreatedAt, collection.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting collection: %w", err)
	}
	return nil
}

func (r *CollectionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error) {
	query := `
		SELECT id, owner_id, name, photo_count, cover_photo_id, created_at, updated_at
		FROM collections
		WHERE id = $1
	`
	var collection entity.Collection
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&collection.ID, &collection.OwnerID, &collection.Name,
		&collection.PhotoCount, &collection.CoverPhotoID,
		&collection.CreatedAt, &collection.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("querying collection: %w", err)
	}
	return &collection, nil
}

func (r *CollectionRepo) UpdateSummary(ctx context.Context, id uuid.UUID, photoCount int, coverPhotoID *uuid.UUID) error {
	query := `
		UPDATE collections
		SET photo_count = $2, cover_photo_id = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query, id, photoCount, coverPhotoID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("updating collection summary: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrCollectionNotFound
	}
	return nil
}
