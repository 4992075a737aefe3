package router

import (
	"github.com/facureino/website/app/controllers"
	"github.com/gofiber/fiber/v2"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Read-only blog pages, no form handling involved
	app.Get("/blog", controllers.HandleBlogIndex)
	app.Get("/blog/:slug", controllers.HandleBlogShow)
}
