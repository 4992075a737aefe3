package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	key := cfg.ObjectKey("0f9a6a3e-8f1e-4a9e-9f1a-111111111111", ".jpg")
	assert.Equal(t, "blog/0f9a6a3e-8f1e-4a9e-9f1a-111111111111.jpg", key)
}

func TestPublicURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "explicit base url",
			cfg:  Config{PublicBaseURL: "https://cdn.example.com/public/"},
			want: "https://cdn.example.com/public/blog/a.png",
		},
		{
			name: "s3 compatible endpoint",
			cfg:  Config{EndpointURL: "https://s3.example.com"},
			want: "https://s3.example.com/public/blog/a.png",
		},
		{
			name: "plain aws",
			cfg:  Config{Region: "eu-west-1"},
			want: "https://public.s3.eu-west-1.amazonaws.com/blog/a.png",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cfg.PublicURL("blog/a.png"))
		})
	}
}

func TestLoadConfigRequiresCredentialsWhenEnabled(t *testing.T) {
	t.Setenv("S3_ENABLED", "true")
	t.Setenv("S3_ACCESS_KEY_ID", "")
	t.Setenv("S3_SECRET_ACCESS_KEY", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}
