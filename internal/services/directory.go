package services

import (
	"context"
	"fmt"

	"speakerdirectory/internal/domain"
)

type directoryService struct {
	store domain.DirectoryStore
}

// NewDirectoryService creates the read-only snapshot service backing GET /data.
func NewDirectoryService(store domain.DirectoryStore) domain.DirectoryService {
	return &directoryService{store: store}
}

func (s *directoryService) Snapshot(ctx context.Context) (*domain.Document, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return doc, nil
}
