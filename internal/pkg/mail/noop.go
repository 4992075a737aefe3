package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// NoopSender is used when no email API key is configured. It logs sends but
// does not deliver anything, so local development still works end to end.
type NoopSender struct{}

// NewNoopSender creates a new NoopSender.
func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

// Send logs the email but does not deliver it.
func (s *NoopSender) Send(_ context.Context, req SendRequest) (SendResult, error) {
	log.Infof("[Mail] noop send to=%v subject=%q", req.To, req.Subject)
	return SendResult{
		MessageID: fmt.Sprintf("noop-%d", time.Now().UnixNano()),
		SentAt:    time.Now(),
	}, nil
}
