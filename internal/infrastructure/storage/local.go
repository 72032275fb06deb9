package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	adapter "github.com/lumen-gallery/lumen-backend/internal/adapter/storage"
)

// LocalStore persists originals and derivatives on the local filesystem under
// {root}/{collectionId}/{category}/{filename} and serves them through the
// router's static file route.
type LocalStore struct {
	root      string
	publicURL string
}

func NewLocalStore(root, publicURL string) *LocalStore {
	return &LocalStore{
		root:      root,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

func (s *LocalStore) Provision(_ context.Context, collectionID uuid.UUID) error {
	for _, cat := range adapter.Categories() {
		dir := filepath.Join(s.root, collectionID.String(), string(cat))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("provisioning %s: %w", dir, err)
		}
	}
	return nil
}

func (s *LocalStore) Save(_ context.Context, collectionID uuid.UUID, category adapter.Category, filename string, data []byte) (string, error) {
	dir := filepath.Join(s.root, collectionID.String(), string(category))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}

	return s.url(collectionID, category, filename), nil
}

func (s *LocalStore) Read(_ context.Context, collectionID uuid.UUID, category adapter.Category, filename string) ([]byte, error) {
	path := filepath.Join(s.root, collectionID.String(), string(category), filename)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

func (s *LocalStore) DeletePhoto(_ context.Context, collectionID uuid.UUID, filename string) error {
	base := adapter.BaseName(filename)
	collectionDir := filepath.Join(s.root, collectionID.String())

	for _, cat := range adapter.Categories() {
		dir := filepath.Join(collectionDir, string(cat))
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("listing %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.Contains(e.Name(), base) {
				continue
			}
			if err := os.Remove(filepath.Join(dir, e.Name())); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("removing %s: %w", e.Name(), err)
			}
		}
		// Empty-directory cleanup is best-effort; Remove fails on non-empty
		// directories and that is fine.
		_ = os.Remove(dir)
	}
	_ = os.Remove(collectionDir)

	return nil
}

func (s *LocalStore) url(collectionID uuid.UUID, category adapter.Category, filename string) string {
	return fmt.Sprintf("%s/%s/%s/%s", s.publicURL, collectionID, category, filename)
}
