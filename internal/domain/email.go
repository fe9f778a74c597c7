package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// NominationReceivedEmailData holds data for the admin notice sent when a
// new nomination arrives.
type NominationReceivedEmailData struct {
	AdminEmail   string
	NomineeName  string
	NomineeEmail string
	Chapter      string
	Topics       string
	ReferrerName string
}

// SpeakerApprovedEmailData holds data for the welcome email sent to an
// approved nominee.
type SpeakerApprovedEmailData struct {
	Email     string
	Name      string
	SpeakerID string
}

// NotificationService sends the directory's domain emails. Notifications
// are side effects of a mutation, not part of it: callers log failures and
// still return the mutation result.
type NotificationService interface {
	SendNominationReceived(ctx context.Context, data *NominationReceivedEmailData) error
	SendSpeakerApproved(ctx context.Context, data *SpeakerApprovedEmailData) error
}
