package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/facureino/website/internal/pkg/usercontext"
)

// ArtistName is the site owner's stage name, used as default post author and
// in page titles.
const ArtistName = "Facu Reino"

// renderPage renders a template inside the main layout with the common
// bindings every page needs (title, flash message, session state).
func renderPage(c *fiber.Ctx, template string, title string, bind fiber.Map) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	bind["Title"] = title
	bind["Flash"] = flash.Get(c)
	bind["IsLoggedIn"] = usercontext.IsLoggedIn(c)
	bind["Year"] = time.Now().Year()
	bind["CSRFToken"] = ""
	if tok := c.Locals("csrf"); tok != nil {
		bind["CSRFToken"] = tok
	}

	return c.Render(template, bind, "layouts/main")
}

func isLoggedIn(c *fiber.Ctx) bool {
	var fromProtected bool
	if protectedValue := c.Locals(usercontext.KeyFromProtected); protectedValue != nil {
		fromProtected = protectedValue.(bool)
	}

	return fromProtected
}
