package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/facureino/website/app/repository"
	"github.com/facureino/website/internal/pkg/session"
	"github.com/facureino/website/internal/pkg/usercontext"
)

// AuthController handles the admin login and logout
type AuthController struct {
	users repository.UserRepository
}

// NewAuthController creates a new auth controller with repository
func NewAuthController(users repository.UserRepository) *AuthController {
	return &AuthController{users: users}
}

// HandleAdminLogin serves the login form and processes the credential
// exchange. An already authenticated session goes straight to the
// dashboard.
func (ac *AuthController) HandleAdminLogin(c *fiber.Ctx) error {
	if isLoggedIn(c) {
		return c.Redirect("/admin/dashboard", fiber.StatusSeeOther)
	}

	if c.Method() == fiber.MethodPost {
		fm := fiber.Map{
			"type": "error",
		}

		// notice: login failures stay deliberately vague so credentials
		// cannot be probed
		user, err := ac.users.GetByEmail(c.FormValue("email"))
		if err != nil {
			fm["message"] = "Email o contraseña incorrectos"

			return flash.WithError(c, fm).Redirect("/admin")
		}

		if !user.CheckPassword(c.FormValue("password")) {
			fm["message"] = "Email o contraseña incorrectos"

			return flash.WithError(c, fm).Redirect("/admin")
		}

		sess, err := session.GetSessionStore().Get(c)
		if err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect("/admin")
		}

		sess.Set(usercontext.AuthKey, true)
		sess.Set(usercontext.KeyUserID, user.ID)
		sess.Set(usercontext.KeyUsername, user.Name)

		if err := sess.Save(); err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect("/admin")
		}

		now := time.Now()
		user.LastLoginAt = &now
		_ = ac.users.Update(user)

		return c.Redirect("/admin/dashboard", fiber.StatusSeeOther)
	}

	return renderPage(c, "admin/login", "Acceso al panel", nil)
}

// HandleAdminLogout clears the session and returns to the login page
func (ac *AuthController) HandleAdminLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err == nil {
		_ = sess.Destroy()
	}

	c.Locals(usercontext.KeyFromProtected, false)

	fm := fiber.Map{
		"type":    "success",
		"message": "Sesión cerrada",
	}
	return flash.WithSuccess(c, fm).Redirect("/admin")
}

// Global auth controller instance

var authController *AuthController

// InitializeAuthController initializes the global auth controller
func InitializeAuthController() {
	authController = NewAuthController(repository.GetGlobalRepositories().User)
}

// HandleAdminLogin is the route-level entrypoint for the login page
func HandleAdminLogin(c *fiber.Ctx) error {
	return authController.HandleAdminLogin(c)
}

// HandleAdminLogout is the route-level entrypoint for logout
func HandleAdminLogout(c *fiber.Ctx) error {
	return authController.HandleAdminLogout(c)
}
