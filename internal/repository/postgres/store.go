package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"speakerdirectory/internal/domain"
)

// documentKey is the fixed primary key of the single directory row.
const documentKey = "directory"

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type store struct {
	db *sql.DB
}

// NewStore returns a DirectoryStore that keeps the whole document as one
// JSONB row. Save is a full-overwrite upsert, so the store has the same
// last-writer-wins behavior as the file driver; the database adds
// durability, not concurrency control.
func NewStore(db *sql.DB) domain.DirectoryStore {
	return &store{db: db}
}

func (s *store) Load(ctx context.Context) (*domain.Document, error) {
	query, args, err := builder.
		Select("doc").
		From("directory_documents").
		Where(sq.Eq{"id": documentKey}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build query: %v", domain.ErrReadFailed, err)
	}

	var raw []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: directory document missing", domain.ErrReadFailed)
		}
		return nil, fmt.Errorf("%w: query document: %v", domain.ErrReadFailed, err)
	}

	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse document: %v", domain.ErrReadFailed, err)
	}
	doc.Normalize()
	return &doc, nil
}

func (s *store) Save(ctx context.Context, doc *domain.Document) error {
	doc.Normalize()
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: marshal document: %v", domain.ErrWriteFailed, err)
	}

	query, args, err := builder.
		Insert("directory_documents").
		Columns("id", "doc").
		Values(documentKey, raw).
		Suffix("ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build query: %v", domain.ErrWriteFailed, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: upsert document: %v", domain.ErrWriteFailed, err)
	}
	return nil
}
