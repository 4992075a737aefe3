package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gofiber/fiber/v2/log"
)

// sentinelKey is the object probed during bootstrap to confirm the
// public-read policy took effect.
const sentinelKey = ObjectPrefix + "sentinel.txt"

// Client wraps the S3 client for blog image storage
type Client struct {
	s3Client *s3.Client
	config   *Config
}

// NewClient creates a new storage client
func NewClient(cfg *Config) (*Client, error) {
	if !cfg.IsEnabled() {
		return nil, fmt.Errorf("object storage is disabled")
	}

	// Create AWS config
	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Create S3 client
	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			// S3-compatible services want path-style URLs
			o.UsePathStyle = true
			o.UseAccelerate = false
		}
	})

	return &Client{
		s3Client: s3Client,
		config:   cfg,
	}, nil
}

// EnsureBucket makes sure the public bucket exists with a public-read
// policy. The routine is idempotent and safe to re-run from the admin setup
// route: an existing bucket is left untouched.
func (c *Client) EnsureBucket(ctx context.Context) error {
	_, err := c.s3Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(BucketName),
	})
	if err == nil {
		log.Infof("[Storage] Bucket %s already exists", BucketName)
		return c.warmUpPublicAccess(ctx)
	}

	log.Warnf("[Storage] Bucket %s not found, creating it", BucketName)

	input := &s3.CreateBucketInput{
		Bucket: aws.String(BucketName),
		ACL:    types.BucketCannedACLPublicRead,
	}
	// For AWS regions other than us-east-1 a location constraint is needed.
	// S3-compatible services ignore it.
	if c.config.EndpointURL == "" && c.config.Region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(c.config.Region),
		}
	}

	if _, err := c.s3Client.CreateBucket(ctx, input); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", BucketName, err)
	}

	log.Infof("[Storage] Successfully created bucket: %s", BucketName)
	return c.warmUpPublicAccess(ctx)
}

// warmUpPublicAccess probes the sentinel object and, when it is not
// reachable, provisions it plus a signed URL so the read policy is exercised
// once before real uploads arrive.
func (c *Client) warmUpPublicAccess(ctx context.Context) error {
	exists, err := c.ObjectExists(ctx, sentinelKey)
	if err != nil {
		return err
	}

	if !exists {
		_, err = c.s3Client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(BucketName),
			Key:         aws.String(sentinelKey),
			Body:        strings.NewReader("ok"),
			ContentType: aws.String("text/plain"),
		})
		if err != nil {
			return fmt.Errorf("failed to write sentinel object: %w", err)
		}

		presigner := s3.NewPresignClient(c.s3Client)
		if _, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(BucketName),
			Key:    aws.String(sentinelKey),
		}, s3.WithPresignExpires(time.Minute)); err != nil {
			log.Warnf("[Storage] Signed URL warm-up failed: %v", err)
		}
	}

	return nil
}

// UploadObject uploads one blog image under the given object key and returns
// its public URL.
func (c *Client) UploadObject(ctx context.Context, objectKey string, body io.Reader, size int64, contentType string) (string, error) {
	if size > MaxUploadBytes {
		return "", fmt.Errorf("object exceeds the %d byte upload ceiling", MaxUploadBytes)
	}

	log.Infof("[Storage] Uploading s3://%s/%s (%d bytes)", BucketName, objectKey, size)

	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(BucketName),
		Key:           aws.String(objectKey),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
		CacheControl:  aws.String("max-age=3600"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to storage: %w", err)
	}

	return c.config.PublicURL(objectKey), nil
}

// ObjectExists checks if an object exists in the bucket
func (c *Client) ObjectExists(ctx context.Context, objectKey string) (bool, error) {
	_, err := c.s3Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(BucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check object existence: %w", err)
	}

	return true, nil
}

// ContentTypeForExt returns the MIME type based on an image file extension
func ContentTypeForExt(ext string) string {
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".avif":
		return "image/avif"
	default:
		return "application/octet-stream"
	}
}
