package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/sujit-baniya/flash"

	"github.com/facureino/website/internal/pkg/storage"
)

// AdminSetupController provisions the object storage bucket. The route
// is idempotent so the operator can re-run it after changing the S3
// environment.
type AdminSetupController struct{}

// NewAdminSetupController creates a new admin setup controller
func NewAdminSetupController() *AdminSetupController {
	return &AdminSetupController{}
}

// HandleStorageSetup creates the public bucket (if missing) and warms up
// its read policy, then returns to the dashboard with the result.
func (asc *AdminSetupController) HandleStorageSetup(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	cfg, err := storage.LoadConfig()
	if err != nil {
		fm["message"] = fmt.Sprintf("Configuración de almacenamiento inválida: %s", err)

		return flash.WithError(c, fm).Redirect("/admin/dashboard")
	}

	if !cfg.IsEnabled() {
		fm["message"] = "El almacenamiento de imágenes no está habilitado (S3_ENABLED)"

		return flash.WithError(c, fm).Redirect("/admin/dashboard")
	}

	client, err := storage.NewClient(cfg)
	if err != nil {
		log.Errorf("Failed to create storage client: %v", err)
		fm["message"] = "No se pudo conectar con el almacenamiento"

		return flash.WithError(c, fm).Redirect("/admin/dashboard")
	}

	if err := client.EnsureBucket(c.Context()); err != nil {
		log.Errorf("Storage bootstrap failed: %v", err)
		fm["message"] = "No se pudo preparar el bucket de imágenes"

		return flash.WithError(c, fm).Redirect("/admin/dashboard")
	}

	sfm := fiber.Map{
		"type":    "success",
		"message": "Almacenamiento de imágenes listo",
	}
	return flash.WithSuccess(c, sfm).Redirect("/admin/dashboard")
}

// Global admin setup controller instance

var adminSetupController *AdminSetupController

// InitializeAdminSetupController initializes the global admin setup controller
func InitializeAdminSetupController() {
	adminSetupController = NewAdminSetupController()
}

// HandleStorageSetup is the route-level entrypoint for storage bootstrap
func HandleStorageSetup(c *fiber.Ctx) error {
	return adminSetupController.HandleStorageSetup(c)
}
