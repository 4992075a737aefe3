package router

import (
	"github.com/facureino/website/app/controllers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Post("/send-email", controllers.HandleSendEmail)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
