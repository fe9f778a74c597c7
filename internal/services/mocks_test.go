package services

import (
	"context"
	"time"

	"speakerdirectory/internal/domain"
)

type mockDirectoryStore struct {
	doc     domain.Document
	loadErr error
	saveErr error
	saves   int
}

func (m *mockDirectoryStore) Load(ctx context.Context) (*domain.Document, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	doc := m.doc
	return &doc, nil
}

func (m *mockDirectoryStore) Save(ctx context.Context, doc *domain.Document) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.doc = *doc
	m.saves++
	return nil
}

type mockNotifier struct {
	received []*domain.NominationReceivedEmailData
	approved []*domain.SpeakerApprovedEmailData
	err      error
}

func (m *mockNotifier) SendNominationReceived(ctx context.Context, data *domain.NominationReceivedEmailData) error {
	if m.err != nil {
		return m.err
	}
	m.received = append(m.received, data)
	return nil
}

func (m *mockNotifier) SendSpeakerApproved(ctx context.Context, data *domain.SpeakerApprovedEmailData) error {
	if m.err != nil {
		return m.err
	}
	m.approved = append(m.approved, data)
	return nil
}

type mockGenerator struct {
	text    string
	err     error
	prompts []string
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

type mockIssuer struct {
	token   string
	err     error
	subject string
	expiry  time.Duration
}

func (m *mockIssuer) Issue(subject string, expiry time.Duration) (string, error) {
	m.subject = subject
	m.expiry = expiry
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}
