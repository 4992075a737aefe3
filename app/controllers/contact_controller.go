package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/facureino/website/app/models"
	"github.com/facureino/website/app/repository"
	"github.com/facureino/website/internal/pkg/mail"
)

// ContactController handles the public contact form: one stored message per
// submission plus one notification email, in that order.
type ContactController struct {
	contacts repository.ContactMessageRepository
	sender   mail.Sender
}

// NewContactController creates a new contact controller
func NewContactController(contacts repository.ContactMessageRepository, sender mail.Sender) *ContactController {
	return &ContactController{contacts: contacts, sender: sender}
}

// HandleContactForm renders the contact page
func (cc *ContactController) HandleContactForm(c *fiber.Ctx) error {
	return renderPage(c, "contacto", "Contacto", nil)
}

// HandleContactSubmit runs the submit pipeline: presence validation, then
// the message insert, then the notification email. Each step aborts the
// rest on failure; a failed insert must never send an email.
func (cc *ContactController) HandleContactSubmit(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	email := strings.TrimSpace(c.FormValue("email"))
	subject := strings.TrimSpace(c.FormValue("subject"))
	message := strings.TrimSpace(c.FormValue("message"))

	if name == "" || email == "" || subject == "" || message == "" {
		fm := fiber.Map{
			"type":    "error",
			"message": "Por favor completa todos los campos requeridos",
		}
		return flash.WithError(c, fm).Redirect("/contacto")
	}

	msg := &models.ContactMessage{
		Nombre:  name,
		Email:   email,
		Asunto:  subject,
		Mensaje: message,
	}
	if err := cc.contacts.Create(msg); err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": friendlyStoreError(err),
		}
		return flash.WithError(c, fm).Redirect("/contacto")
	}

	req := mail.BuildContactRequest(mail.ContactNotification{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	})
	if _, err := cc.sender.Send(c.Context(), req); err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "Error al enviar el email: " + err.Error(),
		}
		return flash.WithError(c, fm).Redirect("/contacto")
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "¡Gracias por contactarme! Te responderé a la brevedad.",
	}
	return flash.WithSuccess(c, fm).Redirect("/contacto")
}

// friendlyStoreError translates connectivity failures into a message a
// visitor can act on; everything else surfaces the backend's text.
func friendlyStoreError(err error) string {
	text := err.Error()
	if strings.Contains(text, "connection refused") || strings.Contains(text, "invalid connection") || strings.Contains(text, "bad connection") {
		return "Error de conexión con la base de datos. Por favor, verifica tu conexión a internet."
	}
	return text
}

// Global contact controller instance

var contactController *ContactController

// InitializeContactController initializes the global contact controller
func InitializeContactController() {
	contactController = NewContactController(
		repository.GetGlobalRepositories().Contact,
		mail.NewContactSender(),
	)
}

// HandleContactForm is the route-level entrypoint for the contact page
func HandleContactForm(c *fiber.Ctx) error {
	return contactController.HandleContactForm(c)
}

// HandleContactSubmit is the route-level entrypoint for the form submit
func HandleContactSubmit(c *fiber.Ctx) error {
	return contactController.HandleContactSubmit(c)
}
