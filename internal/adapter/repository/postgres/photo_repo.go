package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumen-gallery/lumen-backend/internal/domain"
	"github.com/lumen-gallery/lumen-backend/internal/domain/entity"
)

type PhotoRepo struct {
	pool *pgxpool.Pool
}

func NewPhotoRepo(pool *pgxpool.Pool) *PhotoRepo {
	return &PhotoRepo{pool: pool}
}

const photoColumns = `
	id, collection_id, parent_photo_id, original_filename, filename,
	is_raw, raw_format, width, height, variants, processing_status,
	metadata, order_index, created_at, updated_at
`

func (r *PhotoRepo) Create(ctx context.Context, photo *entity.Photo) error {
	query := `
		INSERT INTO photos (` + photoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.pool.Exec(ctx, query,
		photo.ID, photo.CollectionID, photo.ParentPhotoID,
		photo.OriginalFilename, photo.Filename,
		photo.IsRaw, photo.RawFormat, photo.Width, photo.Height,
		photo.Variants, photo.ProcessingStatus,
		photo.Metadata, photo.OrderIndex, photo.CreatedAt, photo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting photo: %w", err)
	}
	return nil
}

func (r *PhotoRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE id = $1`

	photo, err := scanPhoto(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("querying photo: %w", err)
	}
	return photo, nil
}

func (r *PhotoRepo) ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]entity.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE collection_id = $1 ORDER BY order_index ASC, created_at ASC`

	rows, err := r.pool.Query(ctx, query, collectionID)
	if err != nil {
		return nil, fmt.Errorf("querying photos: %w", err)
	}
	defer rows.Close()

	var photos []entity.Photo
	for rows.Next() {
		photo, err := scanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning photo: %w", err)
		}
		photos = append(photos, *photo)
	}

	return photos, rows.Err()
}

func (r *PhotoRepo) CountByCollection(ctx context.Context, collectionID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM photos WHERE collection_id = $1`, collectionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting photos: %w", err)
	}
	return count, nil
}

func (r *PhotoRepo) Update(ctx context.Context, photo *entity.Photo) error {
	query := `
		UPDATE photos
		SET width = $2, height = $3, variants = $4, processing_status = $5,
		    metadata = $6, updated_at = $7
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		photo.ID, photo.Width, photo.Height, photo.Variants,
		photo.ProcessingStatus, photo.Metadata, photo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating photo: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

func (r *PhotoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting photo: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

func scanPhoto(row pgx.Row) (*entity.Photo, error) {
	var photo entity.Photo
	err := row.Scan(
		&photo.ID, &photo.CollectionID, &photo.ParentPhotoID,
		&photo.OriginalFilename, &photo.Filename,
		&photo.IsRaw, &photo.RawFormat, &photo.Width, &photo.Height,
		&photo.Variants, &photo.ProcessingStatus,
		&photo.Metadata, &photo.OrderIndex, &photo.CreatedAt, &photo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &photo, nil
}
