package domain

import "context"

// Document is the whole persisted aggregate: two top-level collections with
// no schema versioning. The store exclusively owns it; services never cache
// beyond a single request.
// swagger:model Document
type Document struct {
	Speakers    []Speaker    `json:"speakers"`
	Nominations []Nomination `json:"nominations"`
}

// Normalize replaces nil collections with empty slices so the document
// always serializes as two arrays.
func (d *Document) Normalize() {
	if d.Speakers == nil {
		d.Speakers = []Speaker{}
	}
	if d.Nominations == nil {
		d.Nominations = []Nomination{}
	}
}

// DirectoryStore is the repository port for the single document. Every
// mutation is a full Load, an in-memory transform, and a full Save. There
// is deliberately no locking: two overlapping load/save windows race and
// the last writer wins. Implementations must preserve that (lack of)
// guarantee rather than adding mutual exclusion.
type DirectoryStore interface {
	// Load reads the whole document. Failures wrap ErrReadFailed.
	Load(ctx context.Context) (*Document, error)
	// Save overwrites the whole document. Failures wrap ErrWriteFailed.
	Save(ctx context.Context, doc *Document) error
}

// DirectoryService exposes the read-only snapshot the UI renders from.
type DirectoryService interface {
	Snapshot(ctx context.Context) (*Document, error)
}
