package controllers

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facureino/website/app/models"
	"github.com/facureino/website/internal/pkg/mail"
)

type fakeContactRepo struct {
	createErr error
	created   []*models.ContactMessage
}

func (r *fakeContactRepo) Create(msg *models.ContactMessage) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, msg)
	return nil
}

func (r *fakeContactRepo) GetRecent(limit int) ([]models.ContactMessage, error) {
	return nil, nil
}

func (r *fakeContactRepo) Count() (int64, error) { return int64(len(r.created)), nil }

type fakeSender struct {
	sendErr error
	sent    []mail.SendRequest
}

func (s *fakeSender) Send(ctx context.Context, req mail.SendRequest) (mail.SendResult, error) {
	if s.sendErr != nil {
		return mail.SendResult{}, s.sendErr
	}
	s.sent = append(s.sent, req)
	return mail.SendResult{MessageID: "test-id", SentAt: time.Now()}, nil
}

func contactApp(repo *fakeContactRepo, sender *fakeSender) *fiber.App {
	ctrl := NewContactController(repo, sender)

	app := fiber.New()
	app.Post("/contacto", ctrl.HandleContactSubmit)

	return app
}

func contactForm() url.Values {
	return url.Values{
		"name":    {"Juana"},
		"email":   {"juana@example.com"},
		"subject": {"Fechas en Rosario"},
		"message": {"¿Cuándo venís a Rosario?"},
	}
}

func TestHandleContactSubmitStoresThenSends(t *testing.T) {
	repo := &fakeContactRepo{}
	sender := &fakeSender{}
	app := contactApp(repo, sender)

	status := postForm(t, app, "/contacto", contactForm())

	assert.Equal(t, fiber.StatusFound, status)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Juana", repo.created[0].Nombre)
	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].Subject, "Fechas en Rosario")
	assert.Equal(t, "juana@example.com", sender.sent[0].ReplyTo)
}

func TestHandleContactSubmitSkipsEmailWhenInsertFails(t *testing.T) {
	repo := &fakeContactRepo{createErr: errors.New("dial tcp: connection refused")}
	sender := &fakeSender{}
	app := contactApp(repo, sender)

	status := postForm(t, app, "/contacto", contactForm())

	assert.Equal(t, fiber.StatusFound, status)
	assert.Empty(t, sender.sent, "a failed insert must never send an email")
}

func TestHandleContactSubmitRejectsEmptyFields(t *testing.T) {
	repo := &fakeContactRepo{}
	sender := &fakeSender{}
	app := contactApp(repo, sender)

	form := contactForm()
	form.Set("message", "   ")
	status := postForm(t, app, "/contacto", form)

	assert.Equal(t, fiber.StatusFound, status)
	assert.Empty(t, repo.created)
	assert.Empty(t, sender.sent)
}

func TestFriendlyStoreError(t *testing.T) {
	friendly := friendlyStoreError(errors.New("dial tcp 127.0.0.1:3306: connection refused"))
	assert.Equal(t, "Error de conexión con la base de datos. Por favor, verifica tu conexión a internet.", friendly)

	passthrough := friendlyStoreError(errors.New("Duplicate entry"))
	assert.Equal(t, "Duplicate entry", passthrough)
}
