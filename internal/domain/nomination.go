package domain

import "context"

// Nomination is a pending, unapproved proposal to add a speaker. Topics and
// formats are kept as the raw comma-joined strings the public form submits;
// they are only split into sequences when a nomination is approved. A
// nomination is never mutated in place: it is either approved (converted to
// a speaker and removed) or rejected (removed).
// swagger:model Nomination
type Nomination struct {
	ID              string      `json:"id"`
	Type            SpeakerType `json:"type"`
	Fee             FeeCategory `json:"fee"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Chapter         string      `json:"chapter"`
	Topics          string      `json:"topics"`
	Formats         string      `json:"formats"`
	RateCurrency    string      `json:"rate_currency"`
	RateMin         string      `json:"rate_min"`
	RateMax         string      `json:"rate_max"`
	RateUnit        string      `json:"rate_unit"`
	RateNotes       string      `json:"rate_notes"`
	NominatedAt     string      `json:"nominated_at"`
	ReferrerName    string      `json:"referrer_name"`
	ReferrerChapter string      `json:"referrer_chapter"`
}

// NominationInput carries the public submission fields; id and nominated_at
// are assigned server-side.
type NominationInput struct {
	Type            SpeakerType `json:"type"`
	Fee             FeeCategory `json:"fee"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Chapter         string      `json:"chapter"`
	Topics          string      `json:"topics"`
	Formats         string      `json:"formats"`
	RateCurrency    string      `json:"rate_currency"`
	RateMin         string      `json:"rate_min"`
	RateMax         string      `json:"rate_max"`
	RateUnit        string      `json:"rate_unit"`
	RateNotes       string      `json:"rate_notes"`
	ReferrerName    string      `json:"referrer_name"`
	ReferrerChapter string      `json:"referrer_chapter"`
}

// NominationService defines the nomination lifecycle operations.
type NominationService interface {
	// Create validates name and email, assigns an id and timestamp, appends
	// to the nominations collection, and returns the created record.
	Create(ctx context.Context, input NominationInput) (*Nomination, error)
	// Approve synthesizes a speaker from the nomination, appends it, removes
	// the nomination, and persists both in a single document write.
	Approve(ctx context.Context, nominationID string) (*Speaker, error)
	// Reject removes the nomination with no further effect.
	Reject(ctx context.Context, nominationID string) error
}
