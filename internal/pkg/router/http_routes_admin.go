package router

import (
	"github.com/facureino/website/app/controllers"
	"github.com/facureino/website/internal/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/dashboard", middleware.RequireAdmin)
	adminGroup.Get("/", controllers.HandleDashboard)

	// Post management
	adminGroup.Get("/nuevo-post", controllers.HandlePostNew)
	adminGroup.Post("/nuevo-post", controllers.HandlePostStore)
	adminGroup.Get("/posts/edit/:id", controllers.HandlePostEdit)
	adminGroup.Post("/posts/update/:id", controllers.HandlePostUpdate)
	adminGroup.Post("/posts/delete/:id", controllers.HandlePostDelete)

	// Show dates
	adminGroup.Get("/nuevo-evento", controllers.HandleEventNew)
	adminGroup.Post("/nuevo-evento", controllers.HandleEventStore)

	// Video slots
	adminGroup.Get("/videos", controllers.HandleVideoIndex)
	adminGroup.Post("/videos/save", controllers.HandleVideoSave)
	adminGroup.Post("/videos/update/:id", controllers.HandleVideoUpdate)
	adminGroup.Post("/videos/delete/:id", controllers.HandleVideoDelete)

	// One-shot storage bootstrap
	app.Get("/admin/setup", middleware.RequireAdmin, controllers.HandleStorageSetup)
}
