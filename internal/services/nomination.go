package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"speakerdirectory/internal/domain"
)

type nominationService struct {
	store      domain.DirectoryStore
	notifier   domain.NotificationService
	adminEmail string
	logger     *slog.Logger
}

// NewNominationService creates a NominationService over the given store.
// adminEmail receives the new-nomination notice; notifications are
// best-effort and never fail the mutation.
func NewNominationService(store domain.DirectoryStore, notifier domain.NotificationService, adminEmail string, logger *slog.Logger) domain.NominationService {
	return &nominationService{
		store:      store,
		notifier:   notifier,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

func (s *nominationService) Create(ctx context.Context, input domain.NominationInput) (*domain.Nomination, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, fmt.Errorf("%w: name and email are required", domain.ErrInvalidInput)
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	nom := domain.Nomination{
		ID:              newID("nom"),
		Type:            input.Type,
		Fee:             input.Fee,
		Name:            input.Name,
		Email:           input.Email,
		Chapter:         input.Chapter,
		Topics:          input.Topics,
		Formats:         input.Formats,
		RateCurrency:    input.RateCurrency,
		RateMin:         input.RateMin,
		RateMax:         input.RateMax,
		RateUnit:        input.RateUnit,
		RateNotes:       input.RateNotes,
		NominatedAt:     time.Now().UTC().Format(time.RFC3339),
		ReferrerName:    input.ReferrerName,
		ReferrerChapter: input.ReferrerChapter,
	}
	doc.Nominations = append(doc.Nominations, nom)

	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}

	if s.notifier != nil && s.adminEmail != "" {
		data := &domain.NominationReceivedEmailData{
			AdminEmail:   s.adminEmail,
			NomineeName:  nom.Name,
			NomineeEmail: nom.Email,
			Chapter:      nom.Chapter,
			Topics:       nom.Topics,
			ReferrerName: nom.ReferrerName,
		}
		if err := s.notifier.SendNominationReceived(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "nomination notice email failed", "nomination_id", nom.ID, "err", err)
		}
	}

	return &nom, nil
}

func (s *nominationService) Approve(ctx context.Context, nominationID string) (*domain.Speaker, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	idx := findNomination(doc.Nominations, nominationID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: nomination %s", domain.ErrNotFound, nominationID)
	}
	nom := doc.Nominations[idx]

	speaker := speakerFromNomination(nom)
	doc.Speakers = append(doc.Speakers, speaker)
	doc.Nominations = append(doc.Nominations[:idx], doc.Nominations[idx+1:]...)

	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}

	if s.notifier != nil {
		data := &domain.SpeakerApprovedEmailData{
			Email:     speaker.Contact.Email,
			Name:      speaker.Name,
			SpeakerID: speaker.ID,
		}
		if err := s.notifier.SendSpeakerApproved(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "approval email failed", "speaker_id", speaker.ID, "err", err)
		}
	}

	return &speaker, nil
}

func (s *nominationService) Reject(ctx context.Context, nominationID string) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	idx := findNomination(doc.Nominations, nominationID)
	if idx < 0 {
		return fmt.Errorf("%w: nomination %s", domain.ErrNotFound, nominationID)
	}
	doc.Nominations = append(doc.Nominations[:idx], doc.Nominations[idx+1:]...)

	if err := s.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// speakerFromNomination synthesizes a fresh directory entry. Comma-joined
// topic and format strings become trimmed token sequences; rate strings
// that don't parse as numbers are dropped; everything the form doesn't
// collect starts empty.
func speakerFromNomination(nom domain.Nomination) domain.Speaker {
	return domain.Speaker{
		ID:           newID("sp"),
		Type:         nom.Type,
		Fee:          nom.Fee,
		Name:         nom.Name,
		Chapter:      nom.Chapter,
		City:         "",
		Country:      "",
		Topics:       splitAndTrim(nom.Topics),
		Formats:      splitAndTrim(nom.Formats),
		Languages:    []string{},
		Rating:       domain.Rating{Avg: 0, Count: 0},
		LastVerified: time.Now().UTC().Format("2006-01-02"),
		Contact:      domain.Contact{Email: nom.Email},
		Reviews:      []domain.Review{},
		Insights:     []domain.Insight{},
		EventHistory: []domain.EventHistoryEntry{},
		FeeMin:       parseRate(nom.RateMin),
		FeeMax:       parseRate(nom.RateMax),
		Currency:     nom.RateCurrency,
		RateNotes:    nom.RateNotes,
	}
}

func findNomination(noms []domain.Nomination, id string) int {
	for i, n := range noms {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// splitAndTrim turns a comma-joined form string into trimmed tokens. An
// empty or blank input yields an empty slice, not [""].
func splitAndTrim(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	tokens := strings.Split(s, ",")
	for i, t := range tokens {
		tokens[i] = strings.TrimSpace(t)
	}
	return tokens
}

func parseRate(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v == 0 {
		return nil
	}
	return &v
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
