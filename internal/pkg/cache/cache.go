package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/facureino/website/internal/pkg/env"
)

var (
	client *redis.Client
	ctx    = context.Background()
)

// SetupCache initializes the connection to the Redis cache server. The cache
// is optional: without CACHE_HOST the client stays nil and every lookup
// reports a miss, so callers fall back to direct database queries.
func SetupCache() {
	host := env.GetEnv("CACHE_HOST", "")
	if host == "" {
		log.Println("CACHE_HOST not set, running without cache")
		return
	}
	port := env.GetEnv("CACHE_PORT", "6379")

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		DB:       0, // use default DB
	})

	// Test the connection
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		log.Printf("Warning: Could not connect to Redis cache: %v", err)
	} else {
		log.Printf("Successfully connected to Redis cache: %s", pong)
	}
}

// GetClient returns the Redis client instance, or nil when no cache is configured.
func GetClient() *redis.Client {
	return client
}

// Set stores a value in the cache with the given key and expiration time
func Set(key string, value interface{}, expiration time.Duration) error {
	if client == nil {
		return redis.Nil
	}
	return client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value from the cache by key
func Get(key string) (string, error) {
	if client == nil {
		return "", redis.Nil
	}
	return client.Get(ctx, key).Result()
}

// GetInt retrieves an integer value from the cache by key
func GetInt(key string) (int, error) {
	if client == nil {
		return 0, redis.Nil
	}
	return client.Get(ctx, key).Int()
}

// Delete removes a value from the cache by key
func Delete(key string) error {
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}
