package router

import (
	"strings"
	"time"

	"github.com/facureino/website/app/controllers"
	"github.com/facureino/website/internal/pkg/env"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))
	group.Get("/", controllers.HandleStart)

	// Contact form
	group.Get("/contacto", controllers.HandleContactForm)
	group.Post("/contacto", controllers.HandleContactSubmit)

	// Admin login and logout
	group.Get("/admin", controllers.HandleAdminLogin)
	group.Post("/admin", controllers.HandleAdminLogin)
	group.Get("/admin/logout", controllers.HandleAdminLogout)
}
