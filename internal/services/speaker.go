package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"speakerdirectory/internal/domain"
)

type speakerService struct {
	store domain.DirectoryStore
}

// NewSpeakerService creates a SpeakerService over the given store.
func NewSpeakerService(store domain.DirectoryStore) domain.SpeakerService {
	return &speakerService{store: store}
}

func (s *speakerService) List(ctx context.Context) ([]domain.Speaker, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return doc.Speakers, nil
}

func (s *speakerService) ReplaceAll(ctx context.Context, speakers []domain.Speaker) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	if speakers == nil {
		speakers = []domain.Speaker{}
	}
	doc.Speakers = speakers

	if err := s.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func (s *speakerService) Update(ctx context.Context, speaker domain.Speaker) (*domain.Speaker, error) {
	if strings.TrimSpace(speaker.ID) == "" {
		return nil, fmt.Errorf("%w: speaker id is required", domain.ErrInvalidInput)
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	idx := findSpeaker(doc.Speakers, speaker.ID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: speaker %s", domain.ErrNotFound, speaker.ID)
	}
	doc.Speakers[idx] = speaker

	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}
	return &doc.Speakers[idx], nil
}

func (s *speakerService) Delete(ctx context.Context, id string) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	idx := findSpeaker(doc.Speakers, id)
	if idx < 0 {
		return fmt.Errorf("%w: speaker %s", domain.ErrNotFound, id)
	}
	doc.Speakers = append(doc.Speakers[:idx], doc.Speakers[idx+1:]...)

	if err := s.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func (s *speakerService) AddReview(ctx context.Context, speakerID string, review domain.Review) (*domain.Speaker, error) {
	if err := validateReview(speakerID, review); err != nil {
		return nil, err
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	idx := findSpeaker(doc.Speakers, speakerID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: speaker %s", domain.ErrNotFound, speakerID)
	}

	review.Date = time.Now().UTC().Format(time.RFC3339)
	speaker := &doc.Speakers[idx]
	speaker.Reviews = append([]domain.Review{review}, speaker.Reviews...)
	speaker.RecomputeRating()

	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}
	return speaker, nil
}

func validateReview(speakerID string, review domain.Review) error {
	if strings.TrimSpace(speakerID) == "" {
		return fmt.Errorf("%w: speaker id is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(review.By) == "" ||
		strings.TrimSpace(review.Comment) == "" ||
		strings.TrimSpace(review.RaterChapterID) == "" {
		return fmt.Errorf("%w: by, comment and rater_chapter_id are required", domain.ErrInvalidInput)
	}
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("%w: rating must be an integer between 1 and 5", domain.ErrInvalidInput)
	}
	return nil
}

func findSpeaker(speakers []domain.Speaker, id string) int {
	for i, sp := range speakers {
		if sp.ID == id {
			return i
		}
	}
	return -1
}
