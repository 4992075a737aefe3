package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/sujit-baniya/flash"

	"github.com/facureino/website/app/models"
	"github.com/facureino/website/app/repository"
	"github.com/facureino/website/internal/pkg/statistics"
)

// AdminEventController handles creating show dates
type AdminEventController struct {
	events repository.EventRepository
}

// NewAdminEventController creates a new admin event controller
func NewAdminEventController(events repository.EventRepository) *AdminEventController {
	return &AdminEventController{events: events}
}

// HandleEventNew renders the create-event form
func (aec *AdminEventController) HandleEventNew(c *fiber.Ctx) error {
	return renderPage(c, "admin/event_form", "Nueva fecha", fiber.Map{
		"FormAction": "/admin/dashboard/nuevo-evento",
	})
}

// HandleEventStore validates and inserts a new show date. The date and
// time fields are parsed together before any database work so a bad
// input never reaches the store.
func (aec *AdminEventController) HandleEventStore(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	title := strings.TrimSpace(c.FormValue("title"))
	location := strings.TrimSpace(c.FormValue("location"))
	date := strings.TrimSpace(c.FormValue("date"))
	timeOfDay := strings.TrimSpace(c.FormValue("time"))

	if title == "" || location == "" || date == "" || timeOfDay == "" {
		fm["message"] = "Completá título, lugar, fecha y hora"

		return flash.WithError(c, fm).Redirect("/admin/dashboard/nuevo-evento")
	}

	eventDate, err := time.Parse("2006-01-02T15:04", date+"T"+timeOfDay)
	if err != nil {
		fm["message"] = "La fecha u hora no son válidas"

		return flash.WithError(c, fm).Redirect("/admin/dashboard/nuevo-evento")
	}

	event := &models.Event{
		Title:      title,
		Date:       eventDate,
		Time:       timeOfDay,
		Location:   location,
		TicketsURL: strings.TrimSpace(c.FormValue("tickets_url")),
		SoldOut:    c.FormValue("sold_out") == "on",
	}

	if err := aec.events.Create(event); err != nil {
		log.Errorf("Failed to create event: %v", err)
		fm["message"] = "No se pudo guardar la fecha"

		return flash.WithError(c, fm).Redirect("/admin/dashboard/nuevo-evento")
	}

	statistics.InvalidateDashboardStats()

	sfm := fiber.Map{
		"type":    "success",
		"message": "Fecha agregada",
	}
	return flash.WithSuccess(c, sfm).Redirect("/admin/dashboard")
}

// Global admin event controller instance

var adminEventController *AdminEventController

// InitializeAdminEventController initializes the global admin event controller
func InitializeAdminEventController() {
	adminEventController = NewAdminEventController(repository.GetGlobalRepositories().Event)
}

// HandleEventNew is the route-level entrypoint for the create-event form
func HandleEventNew(c *fiber.Ctx) error {
	return adminEventController.HandleEventNew(c)
}

// HandleEventStore is the route-level entrypoint for event creation
func HandleEventStore(c *fiber.Ctx) error {
	return adminEventController.HandleEventStore(c)
}
