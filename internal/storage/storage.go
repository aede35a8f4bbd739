package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Storage abstracts where uploaded images live. Chat attachments, campaign
// images and avatars all go through this interface.
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	// GetURL returns the public URL clients embed in messages and profiles.
	GetURL(ctx context.Context, path string) (string, error)
	// GetSignedURL returns a temporary URL for private objects.
	GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

// Config selects and parameterizes a backend.
type Config struct {
	Type       string // local, s3, cloudflare_r2
	BasePath   string // local only
	BaseURL    string // public URL base
	Bucket     string
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string // R2 or custom S3 endpoint
	UseSSL     bool
	PublicRead bool
}

// NewStorage builds the backend named by cfg.Type. Cloudflare R2 speaks the
// S3 API, so both bucket types share one implementation.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "s3", "cloudflare_r2":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
