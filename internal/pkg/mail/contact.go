package mail

import (
	"fmt"
	"html"

	"github.com/facureino/website/internal/pkg/env"
)

// ContactNotification is the payload of the public contact form.
type ContactNotification struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// NewContactSender builds the sender used for contact notifications: Resend
// when an API key is configured, a logging noop otherwise.
func NewContactSender() Sender {
	apiKey := env.GetEnv("RESEND_API_KEY", "")
	if apiKey == "" {
		return NewNoopSender()
	}
	from := env.GetEnv("MAIL_FROM", "Facu Reino Website <onboarding@resend.dev>")
	return NewResendSender(apiKey, from)
}

// ContactRecipient returns the single notification recipient address.
func ContactRecipient() string {
	return env.GetEnv("CONTACT_RECIPIENT", "initobias@gmail.com")
}

// BuildContactRequest renders the fixed-format HTML notification for one
// contact form submission.
func BuildContactRequest(n ContactNotification) SendRequest {
	body := fmt.Sprintf(`<h2>Nuevo mensaje de contacto</h2>
<p><strong>Nombre:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Asunto:</strong> %s</p>
<p><strong>Mensaje:</strong></p>
<p>%s</p>`,
		html.EscapeString(n.Name),
		html.EscapeString(n.Email),
		html.EscapeString(n.Subject),
		html.EscapeString(n.Message),
	)

	return SendRequest{
		To:      []string{ContactRecipient()},
		Subject: "Nuevo mensaje de contacto: " + n.Subject,
		HTML:    body,
		ReplyTo: n.Email,
	}
}
