package entity

import (
	"time"

	"github.com/google/uuid"
)

// Collection is the external projection the ingestion flow updates as a side
// effect: photo count and the first-photo cover pointer. Collection CRUD lives
// with the collection-management collaborator.
type Collection struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	PhotoCount   int
	CoverPhotoID *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (c *Collection) HasCover() bool {
	return c.CoverPhotoID != nil
}
