package storage

import (
	"path/filepath"
	"strings"

	"github.com/lumen-gallery/lumen-backend/internal/domain/entity"
)

var variantPrefixes = map[entity.VariantKind]string{
	entity.VariantThumbnail: "thumb_",
	entity.VariantWeb:       "web_",
	entity.VariantHighRes:   "high_",
	entity.VariantPreview:   "preview_",
}

var variantCategories = map[entity.VariantKind]Category{
	entity.VariantOriginal:  CategoryOriginal,
	entity.VariantThumbnail: CategoryThumbnails,
	entity.VariantWeb:       CategoryWeb,
	entity.VariantHighRes:   CategoryHighRes,
	entity.VariantPreview:   CategoryProcessed,
}

// VariantFilename derives the deterministic stored name of a derivative from
// the photo's generated filename. Derivatives are always JPEG regardless of
// the original's container.
func VariantFilename(kind entity.VariantKind, storedFilename string) string {
	if kind == entity.VariantOriginal {
		return storedFilename
	}
	base := strings.TrimSuffix(storedFilename, filepath.Ext(storedFilename))
	return variantPrefixes[kind] + base + ".jpg"
}

// CategoryFor maps a variant kind to its layout subdirectory.
func CategoryFor(kind entity.VariantKind) Category {
	return variantCategories[kind]
}

// BaseName strips the extension from a stored filename; every file derived
// from a photo contains this base, which is what deletion matches on.
func BaseName(storedFilename string) string {
	return strings.TrimSuffix(storedFilename, filepath.Ext(storedFilename))
}
