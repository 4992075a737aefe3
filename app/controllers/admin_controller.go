package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/facureino/website/app/models"
	"github.com/facureino/website/app/repository"
	"github.com/facureino/website/internal/pkg/statistics"
)

// AdminController serves the dashboard overview and post deletion
type AdminController struct {
	repos *repository.Repositories
}

// NewAdminController creates a new admin controller with repositories
func NewAdminController(repos *repository.Repositories) *AdminController {
	return &AdminController{repos: repos}
}

// HandleDashboard renders the admin overview with row counts and the
// content lists for the posts, events and messages tabs.
func (admc *AdminController) HandleDashboard(c *fiber.Ctx) error {
	stats := statistics.GetDashboardStats(admc.repos)

	posts, err := admc.repos.Post.GetAll()
	if err != nil {
		posts = nil
	}

	events, err := admc.repos.Event.GetAll()
	if err != nil {
		events = nil
	}

	messages, err := admc.repos.Contact.GetRecent(10)
	if err != nil {
		messages = nil
	}

	videos, err := admc.repos.Video.GetLatest(models.MaxTikTokVideos)
	if err != nil {
		videos = nil
	}

	tab := c.Query("tab", "posts")

	return renderPage(c, "admin/dashboard", "Panel de administración", fiber.Map{
		"Stats":     stats,
		"Posts":     posts,
		"Events":    events,
		"Messages":  messages,
		"Videos":    videos,
		"ActiveTab": tab,
	})
}

// HandlePostDelete removes a blog post and refreshes the cached counts
func (admc *AdminController) HandlePostDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		fm := fiber.Map{
			"type":    "error",
			"message": "Entrada inválida",
		}
		return flash.WithError(c, fm).Redirect("/admin/dashboard")
	}

	if _, err := admc.repos.Post.GetByID(uint(id)); err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "La entrada no existe",
		}
		return flash.WithError(c, fm).Redirect("/admin/dashboard")
	}

	if err := admc.repos.Post.Delete(uint(id)); err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "No se pudo borrar la entrada",
		}
		return flash.WithError(c, fm).Redirect("/admin/dashboard")
	}

	statistics.InvalidateDashboardStats()

	fm := fiber.Map{
		"type":    "success",
		"message": "Entrada borrada",
	}
	return flash.WithSuccess(c, fm).Redirect("/admin/dashboard")
}

// Global admin controller instance

var adminController *AdminController

// InitializeAdminController initializes the global admin controller
func InitializeAdminController() {
	adminController = NewAdminController(repository.GetGlobalRepositories())
}

// HandleDashboard is the route-level entrypoint for the admin dashboard
func HandleDashboard(c *fiber.Ctx) error {
	return adminController.HandleDashboard(c)
}

// HandlePostDelete is the route-level entrypoint for post deletion
func HandlePostDelete(c *fiber.Ctx) error {
	return adminController.HandlePostDelete(c)
}
