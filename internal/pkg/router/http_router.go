package router

import (
	"github.com/facureino/website/app/controllers"
	"github.com/facureino/website/internal/pkg/middleware"
	"github.com/facureino/website/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// Initialize controllers with repositories
	controllers.InitializeMainController()
	controllers.InitializeBlogController()
	controllers.InitializeContactController()
	controllers.InitializeAuthController()
	controllers.InitializeAdminController()
	controllers.InitializeAdminPostController()
	controllers.InitializeAdminEventController()
	controllers.InitializeAdminVideoController()
	controllers.InitializeAdminSetupController()

	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
