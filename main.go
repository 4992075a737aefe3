package main

import (
	"fmt"
	"html/template"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/facureino/website/app/repository"
	"github.com/facureino/website/internal/pkg/cache"
	"github.com/facureino/website/internal/pkg/database"
	"github.com/facureino/website/internal/pkg/env"
	"github.com/facureino/website/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	database.SeedAdminUser()
	cache.SetupCache()
	repository.InitializeFactory(database.GetDB())

	engine := html.New("./views", ".html")
	engine.AddFunc("unsafe", func(s string) template.HTML {
		return template.HTML(s)
	})
	app := fiber.New(fiber.Config{
		Views: engine,
		// Upload ceiling is 10 MB per image, leave headroom for the rest
		// of the multipart form
		BodyLimit: 11 * 1024 * 1024,
	})
	app.Use(recover.New(), logger.New())
	app.Static("/", "./public/assets")

	// ROUTER
	router.InstallRouter(app)

	return app
}
