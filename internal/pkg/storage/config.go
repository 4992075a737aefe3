package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/facureino/website/internal/pkg/env"
)

// BucketName is the single public-read bucket holding uploaded blog images.
const BucketName = "public"

// ObjectPrefix is the key prefix for blog image assets.
const ObjectPrefix = "blog/"

// MaxUploadBytes is the per-object size ceiling (10 MB).
const MaxUploadBytes = 10 * 1024 * 1024

// Config holds object storage configuration
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	EndpointURL     string // Optional for S3-compatible services
	PublicBaseURL   string // Base URL under which bucket objects are served
	Enabled         bool
}

// LoadConfig loads storage configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		AccessKeyID:     env.GetEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("S3_SECRET_ACCESS_KEY", ""),
		Region:          env.GetEnv("S3_REGION", "us-east-1"),
		EndpointURL:     env.GetEnv("S3_ENDPOINT_URL", ""),
		PublicBaseURL:   env.GetEnv("S3_PUBLIC_BASE_URL", ""),
		Enabled:         env.GetEnv("S3_ENABLED", "false") == "true",
	}

	// Validate required fields if storage is enabled
	if config.Enabled {
		if config.AccessKeyID == "" {
			return nil, errors.New("S3_ACCESS_KEY_ID is required when storage is enabled")
		}
		if config.SecretAccessKey == "" {
			return nil, errors.New("S3_SECRET_ACCESS_KEY is required when storage is enabled")
		}
	}

	return config, nil
}

// IsEnabled returns true if object storage is configured
func (c *Config) IsEnabled() bool {
	return c.Enabled
}

// ObjectKey builds the storage key for an uploaded image:
// blog/<uuid>.<ext>. The extension keeps its original dot.
func (c *Config) ObjectKey(assetUUID, fileExtension string) string {
	return fmt.Sprintf("%s%s%s", ObjectPrefix, assetUUID, fileExtension)
}

// PublicURL returns the public-read URL for an object key.
func (c *Config) PublicURL(objectKey string) string {
	base := c.PublicBaseURL
	if base == "" {
		if c.EndpointURL != "" {
			base = fmt.Sprintf("%s/%s", strings.TrimRight(c.EndpointURL, "/"), BucketName)
		} else {
			base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", BucketName, c.Region)
		}
	}
	return fmt.Sprintf("%s/%s", strings.TrimRight(base, "/"), objectKey)
}
