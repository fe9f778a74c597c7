package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"speakerdirectory/internal/domain"
)

type store struct {
	path string
}

// NewStore returns a DirectoryStore backed by a single JSON file. Every Load
// reads and parses the whole file; every Save rewrites it. There is no file
// locking: overlapping load/save windows race and the last writer wins,
// which is the documented store contract.
func NewStore(path string) domain.DirectoryStore {
	return &store{path: path}
}

func (s *store) Load(ctx context.Context) (*domain.Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrReadFailed, s.path, err)
	}
	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrReadFailed, s.path, err)
	}
	doc.Normalize()
	return &doc, nil
}

func (s *store) Save(ctx context.Context, doc *domain.Document) error {
	doc.Normalize()
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal document: %v", domain.ErrWriteFailed, err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrWriteFailed, s.path, err)
	}
	return nil
}
