package domain

import "context"

// SpeakerType distinguishes member speakers from external professionals.
type SpeakerType string

const (
	SpeakerTypeMember       SpeakerType = "Member"
	SpeakerTypeProfessional SpeakerType = "Professional"
)

// FeeCategory governs whether a rate disclosure is required for a speaker.
type FeeCategory string

const (
	FeeNone       FeeCategory = "No Fee"
	FeeExpenses   FeeCategory = "Expenses Only"
	FeeMemberPaid FeeCategory = "Member-Paid"
	FeeProPaid    FeeCategory = "Pro-Paid"
)

// RequiresRateDisclosure reports whether speakers in this fee category must
// disclose their chapter rate.
func (f FeeCategory) RequiresRateDisclosure() bool {
	return f == FeeMemberPaid || f == FeeProPaid
}

// Rating is derived state: Count must always equal len(Reviews) and Avg the
// arithmetic mean of their ratings (0 when there are none, never NaN). It is
// recomputed on every review insertion and never edited directly.
type Rating struct {
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}

// Review is a rating plus comment submitted against a speaker. Immutable
// once created; the date is stamped server-side at insertion.
// swagger:model Review
type Review struct {
	By             string `json:"by"`
	Date           string `json:"date"`
	Rating         int    `json:"rating"`
	Comment        string `json:"comment"`
	RaterChapterID string `json:"rater_chapter_id"`
	EventName      string `json:"event_name,omitempty"`
	EventDate      string `json:"event_date,omitempty"`
	Format         string `json:"format,omitempty"` // talk|workshop|panel
}

// Links holds a speaker's optional external URLs.
type Links struct {
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
	Video    string `json:"video"`
}

// Contact holds a speaker's contact details.
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Insight is a published article or talk recording linked from a profile.
type Insight struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Link    string `json:"link"`
	Summary string `json:"summary"`
}

// EventHistoryEntry records a past engagement at a chapter.
type EventHistoryEntry struct {
	Chapter string `json:"chapter"`
	Date    string `json:"date"`
}

// Speaker is an approved directory entry available for booking.
// swagger:model Speaker
type Speaker struct {
	ID           string              `json:"id"`
	Type         SpeakerType         `json:"type"`
	Fee          FeeCategory         `json:"fee"`
	Name         string              `json:"name"`
	Chapter      string              `json:"chapter"`
	City         string              `json:"city"`
	Country      string              `json:"country"`
	Topics       []string            `json:"topics"`
	Formats      []string            `json:"formats"`
	Languages    []string            `json:"languages"`
	Rating       Rating              `json:"rating"`
	LastVerified string              `json:"last_verified"`
	Bio          string              `json:"bio"`
	Links        Links               `json:"links"`
	Contact      Contact             `json:"contact"`
	Reviews      []Review            `json:"reviews"` // newest first
	Insights     []Insight           `json:"insights"`
	EventHistory []EventHistoryEntry `json:"event_history"`
	PhotoURL     string              `json:"photo_url"`
	FeeMin       *float64            `json:"fee_min,omitempty"`
	FeeMax       *float64            `json:"fee_max,omitempty"`
	Currency     string              `json:"currency,omitempty"`
	HasSpecial   bool                `json:"has_special_rate,omitempty"`
	RateNotes    string              `json:"rate_notes,omitempty"`
}

// RecomputeRating restores the rating invariant from the current reviews.
func (s *Speaker) RecomputeRating() {
	s.Rating.Count = len(s.Reviews)
	if s.Rating.Count == 0 {
		s.Rating.Avg = 0
		return
	}
	var sum int
	for _, r := range s.Reviews {
		sum += r.Rating
	}
	s.Rating.Avg = float64(sum) / float64(s.Rating.Count)
}

// SpeakerService defines the directory operations over approved speakers.
type SpeakerService interface {
	// List returns all speakers verbatim; no pagination or server-side filtering.
	List(ctx context.Context) ([]Speaker, error)
	// ReplaceAll replaces the whole speakers collection. Nominations are untouched.
	ReplaceAll(ctx context.Context, speakers []Speaker) error
	// Update fully replaces the record matching speaker.ID. No partial-patch semantics.
	Update(ctx context.Context, speaker Speaker) (*Speaker, error)
	// Delete removes the speaker with the given id; ErrNotFound when absent.
	Delete(ctx context.Context, id string) error
	// AddReview stamps the review date, prepends it, recomputes the rating,
	// persists, and returns the updated speaker.
	AddReview(ctx context.Context, speakerID string, review Review) (*Speaker, error)
}
