package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/facureino/website/internal/pkg/usercontext"
)

// RequireAdmin ensures a logged-in admin session; redirects to the login
// page if missing. The site has a single operator, so any authenticated
// session is the admin.
func RequireAdmin(c *fiber.Ctx) error {
	v := c.Locals(usercontext.KeyFromProtected)
	loggedIn := false
	if b, ok := v.(bool); ok {
		loggedIn = b
	}
	if !loggedIn {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}
	return c.Next()
}
