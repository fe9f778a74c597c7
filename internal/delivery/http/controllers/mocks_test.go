package controllers

import (
	"context"
	"log/slog"

	"speakerdirectory/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type mockDirectoryService struct {
	doc *domain.Document
	err error
}

func (m *mockDirectoryService) Snapshot(ctx context.Context) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.doc, nil
}

type mockSpeakerService struct {
	speakers []domain.Speaker
	speaker  *domain.Speaker
	err      error

	replacedWith []domain.Speaker
	updatedWith  *domain.Speaker
	deletedID    string
	reviewedID   string
	review       domain.Review
}

func (m *mockSpeakerService) List(ctx context.Context) ([]domain.Speaker, error) {
	return m.speakers, m.err
}

func (m *mockSpeakerService) ReplaceAll(ctx context.Context, speakers []domain.Speaker) error {
	m.replacedWith = speakers
	return m.err
}

func (m *mockSpeakerService) Update(ctx context.Context, speaker domain.Speaker) (*domain.Speaker, error) {
	m.updatedWith = &speaker
	if m.err != nil {
		return nil, m.err
	}
	return &speaker, nil
}

func (m *mockSpeakerService) Delete(ctx context.Context, id string) error {
	m.deletedID = id
	return m.err
}

func (m *mockSpeakerService) AddReview(ctx context.Context, speakerID string, review domain.Review) (*domain.Speaker, error) {
	m.reviewedID = speakerID
	m.review = review
	if m.err != nil {
		return nil, m.err
	}
	return m.speaker, nil
}

type mockNominationService struct {
	nomination *domain.Nomination
	speaker    *domain.Speaker
	err        error

	createdWith *domain.NominationInput
	approvedID  string
	rejectedID  string
}

func (m *mockNominationService) Create(ctx context.Context, input domain.NominationInput) (*domain.Nomination, error) {
	m.createdWith = &input
	if m.err != nil {
		return nil, m.err
	}
	return m.nomination, nil
}

func (m *mockNominationService) Approve(ctx context.Context, nominationID string) (*domain.Speaker, error) {
	m.approvedID = nominationID
	if m.err != nil {
		return nil, m.err
	}
	return m.speaker, nil
}

func (m *mockNominationService) Reject(ctx context.Context, nominationID string) error {
	m.rejectedID = nominationID
	return m.err
}

type mockSuggestionService struct {
	topics []string
	ids    []string
	ideas  string
	err    error
}

func (m *mockSuggestionService) SuggestTopics(ctx context.Context, bio, tags string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.topics, nil
}

func (m *mockSuggestionService) FindMatchingSpeakers(ctx context.Context, eventDescription, speakerSummary string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.ids, nil
}

func (m *mockSuggestionService) GenerateEventIdeas(ctx context.Context, profile domain.SpeakerProfile) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.ideas, nil
}

type mockAdminService struct {
	token string
	err   error
}

func (m *mockAdminService) Login(ctx context.Context, username, password string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}
