package session

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"

	"github.com/facureino/website/internal/pkg/cache"
)

var sessionStore *session.Store

// NewSessionStore creates the session store backing the admin login. When a
// Redis cache is configured the sessions live in Redis database 1 (cache uses
// DB 0); otherwise fiber's in-memory storage is used, which is enough for a
// single-operator site.
func NewSessionStore() *session.Store {
	cfg := session.Config{
		CookieHTTPOnly: true,
		Expiration:     time.Hour * 1,
		KeyLookup:      "cookie:session_id",
	}

	if cacheClient := cache.GetClient(); cacheClient != nil {
		host := "localhost"
		port := 6379
		addr := cacheClient.Options().Addr
		if h, p, err := net.SplitHostPort(addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		}

		cfg.Storage = redis.New(redis.Config{
			Host:     host,
			Port:     port,
			Password: cacheClient.Options().Password,
			Database: 1, // Separate database for sessions
			Reset:    false,
		})
	}

	sessionStore = session.New(cfg)

	return sessionStore
}

func GetSessionStore() *session.Store {
	return sessionStore
}

// SetSessionValue stores a key-value pair in the user's individual session
func SetSessionValue(c *fiber.Ctx, key string, value string) error {
	if sessionStore == nil {
		return fmt.Errorf("session store not initialized")
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %v", err)
	}

	sess.Set(key, value)
	return sess.Save()
}

// GetSessionValue retrieves a value by key from the user's individual session
func GetSessionValue(c *fiber.Ctx, key string) string {
	if sessionStore == nil {
		return ""
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return ""
	}

	value := sess.Get(key)
	if value == nil {
		return ""
	}

	if strValue, ok := value.(string); ok {
		return strValue
	}

	return ""
}
