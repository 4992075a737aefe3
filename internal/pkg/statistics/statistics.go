package statistics

import (
	"log"
	"strconv"
	"time"

	"github.com/facureino/website/app/repository"
	"github.com/facureino/website/internal/pkg/cache"
)

const (
	CacheKeyPosts    = "statistics:posts:total"
	CacheKeyEvents   = "statistics:events:total"
	CacheKeyMessages = "statistics:messages:total"
	CacheExpiration  = 5 * time.Minute
)

// DashboardStats holds the row counts shown on the admin dashboard.
type DashboardStats struct {
	Posts    int
	Events   int
	Messages int
}

// GetDashboardStats returns the post/event/message counts, served from the
// cache when warm. The three counts are independent read-only queries, so a
// partial cache miss only re-counts the missing table.
func GetDashboardStats(repos *repository.Repositories) DashboardStats {
	return DashboardStats{
		Posts:    cachedCount(CacheKeyPosts, repos.Post.Count),
		Events:   cachedCount(CacheKeyEvents, repos.Event.Count),
		Messages: cachedCount(CacheKeyMessages, repos.Contact.Count),
	}
}

// InvalidateDashboardStats drops the cached counts after an admin write so
// the dashboard stays consistent with the store.
func InvalidateDashboardStats() {
	for _, key := range []string{CacheKeyPosts, CacheKeyEvents, CacheKeyMessages} {
		if err := cache.Delete(key); err != nil {
			log.Printf("Failed to invalidate %s: %v", key, err)
		}
	}
}

func cachedCount(key string, count func() (int64, error)) int {
	if v, err := cache.GetInt(key); err == nil {
		return v
	}

	n, err := count()
	if err != nil {
		log.Printf("Failed to count rows for %s: %v", key, err)
		return 0
	}

	if err := cache.Set(key, strconv.FormatInt(n, 10), CacheExpiration); err != nil && cache.GetClient() != nil {
		log.Printf("Failed to cache %s: %v", key, err)
	}

	return int(n)
}
