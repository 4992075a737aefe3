package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/facureino/website/internal/pkg/env"
	"github.com/facureino/website/internal/pkg/mail"
)

// HandleSendEmail is the JSON endpoint delegating to the transactional
// email provider. It accepts {name,email,subject,message} and answers
// {success:true,data} or {error} with a non-2xx status.
func HandleSendEmail(c *fiber.Ctx) error {
	if env.GetEnv("RESEND_API_KEY", "") == "" && !env.IsDev() {
		log.Error("RESEND_API_KEY is not defined")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Email service not configured",
		})
	}

	var body mail.ContactNotification
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if body.Name == "" || body.Email == "" || body.Subject == "" || body.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "All fields are required",
		})
	}

	sender := mail.NewContactSender()
	result, err := sender.Send(c.Context(), mail.BuildContactRequest(body))
	if err != nil {
		log.Errorf("Failed to send contact email: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"id": result.MessageID},
	})
}
