package services

import (
	"context"
	"fmt"
	"log"

	"speakerdirectory/internal/domain"
)

type notificationService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewNotificationService returns a NotificationService that uses the given
// Mailer and template renderer.
func NewNotificationService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.NotificationService {
	return &notificationService{mailer: mailer, renderer: renderer}
}

// SendNominationReceived sends the admin notice using the
// "nomination_received" template.
func (s *notificationService) SendNominationReceived(ctx context.Context, data *domain.NominationReceivedEmailData) error {
	if data == nil {
		return fmt.Errorf("nomination received data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("nomination_received", data)
	if err != nil {
		return fmt.Errorf("failed to render nomination_received template: %w", err)
	}
	if err := s.mailer.Send(data.AdminEmail, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send nomination notice: %w", err)
	}
	log.Printf("[EMAIL] Nomination notice sent to %s", data.AdminEmail)
	return nil
}

// SendSpeakerApproved sends the nominee welcome email using the
// "speaker_approved" template.
func (s *notificationService) SendSpeakerApproved(ctx context.Context, data *domain.SpeakerApprovedEmailData) error {
	if data == nil {
		return fmt.Errorf("speaker approved data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("speaker_approved", data)
	if err != nil {
		return fmt.Errorf("failed to render speaker_approved template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send approval email: %w", err)
	}
	log.Printf("[EMAIL] Approval email sent to %s", data.Email)
	return nil
}
