package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildContactRequest(t *testing.T) {
	req := BuildContactRequest(ContactNotification{
		Name:    "Ana",
		Email:   "ana@example.com",
		Subject: "Fechas en Madrid",
		Message: "Hola, ¿cuándo venís?",
	})

	assert.Equal(t, []string{ContactRecipient()}, req.To)
	assert.Equal(t, "Nuevo mensaje de contacto: Fechas en Madrid", req.Subject)
	assert.Equal(t, "ana@example.com", req.ReplyTo)
	assert.Contains(t, req.HTML, "<strong>Nombre:</strong> Ana")
	assert.Contains(t, req.HTML, "ana@example.com")
}

func TestBuildContactRequestEscapesHTML(t *testing.T) {
	req := BuildContactRequest(ContactNotification{
		Name:    "<script>alert(1)</script>",
		Email:   "x@example.com",
		Subject: "hola",
		Message: "<b>negrita</b>",
	})

	assert.NotContains(t, req.HTML, "<script>")
	assert.Contains(t, req.HTML, "&lt;script&gt;")
	assert.Contains(t, req.HTML, "&lt;b&gt;negrita&lt;/b&gt;")
}
