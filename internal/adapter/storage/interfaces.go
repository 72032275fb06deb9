package storage

import (
	"context"

	"github.com/google/uuid"
)

// Category is one subdirectory of the deterministic per-collection layout:
// {root}/{collectionId}/{category}/{prefix_}{filename}.
type Category string

const (
	CategoryOriginal   Category = "original"
	CategoryThumbnails Category = "thumbnails"
	CategoryWeb        Category = "web"
	CategoryHighRes    Category = "high-res"
	CategoryProcessed  Category = "processed"
)

// Categories lists every layout subdirectory, in provisioning order.
func Categories() []Category {
	return []Category{CategoryOriginal, CategoryThumbnails, CategoryWeb, CategoryHighRes, CategoryProcessed}
}

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// VariantStore persists original and derivative files under the deterministic
// layout and hands back stable URLs. Implementations exist for the local
// filesystem and S3-compatible object stores.
type VariantStore interface {
	// Provision creates the collection's subdirectories. It is idempotent
	// and must run before the first write for a collection.
	Provision(ctx context.Context, collectionID uuid.UUID) error

	// Save writes one file and returns its stable URL.
	Save(ctx context.Context, collectionID uuid.UUID, category Category, filename string, data []byte) (string, error)

	// Read returns the bytes of one stored file.
	Read(ctx context.Context, collectionID uuid.UUID, category Category, filename string) ([]byte, error)

	// DeletePhoto removes every file derived from the photo's stored
	// filename across all categories, tolerating files that are already
	// gone, then makes a best-effort attempt to remove now-empty
	// subdirectories.
	DeletePhoto(ctx context.Context, collectionID uuid.UUID, filename string) error
}
