package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/facureino/website/internal/pkg/session"
	"github.com/facureino/website/internal/pkg/usercontext"
)

// UserContextMiddleware sets up the complete user context for every request.
// This centralizes the session check so protected pages do not each
// re-implement it.
func UserContextMiddleware(c *fiber.Ctx) error {
	// Get session with error handling
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		// On error: treat as anonymous visitor
		c.Locals("USER_CONTEXT", usercontext.UserContext{IsLoggedIn: false})
		c.Locals(usercontext.KeyFromProtected, false)
		return c.Next()
	}

	authenticated, _ := sess.Get(usercontext.AuthKey).(bool)

	// Get user ID from session
	userID := sess.Get(usercontext.KeyUserID)
	if !authenticated || userID == nil {
		// Anonymous visitor - no session data
		c.Locals("USER_CONTEXT", usercontext.UserContext{IsLoggedIn: false})
		c.Locals(usercontext.KeyFromProtected, false)
		return c.Next()
	}

	username := session.GetSessionValue(c, usercontext.KeyUsername)

	userCtx := usercontext.UserContext{
		UserID:     userID.(uint),
		Username:   username,
		IsLoggedIn: true,
	}
	c.Locals("USER_CONTEXT", userCtx)
	c.Locals(usercontext.KeyFromProtected, true)
	c.Locals(usercontext.KeyUsername, username)
	c.Locals(usercontext.KeyUserID, userID.(uint))

	return c.Next()
}
