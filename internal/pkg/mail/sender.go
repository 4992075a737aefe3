package mail

import (
	"context"
	"time"
)

// SendRequest contains the data needed to send an email via the provider.
type SendRequest struct {
	To      []string
	From    string // Sender address, falls back to the configured default
	Subject string
	HTML    string
	ReplyTo string
}

// SendResult contains the response from the email provider.
type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// Sender is the interface for sending transactional email.
type Sender interface {
	Send(ctx context.Context, req SendRequest) (SendResult, error)
}
