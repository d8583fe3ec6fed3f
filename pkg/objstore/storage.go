package objstore

import (
	"context"
	"fmt"
	"io"
)

// Storage is the raw-blob collaborator behind uploaded LAS files. Keys are
// opaque to callers; PublicURL is best-effort and may be empty for backends
// without public access.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

type Config struct {
	Backend   string // "local" or "gcs"
	LocalDir  string
	BaseURL   string // public prefix for locally served files
	GCSBucket string
}

func New(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Backend {
	case "local", "":
		return NewLocalStorage(cfg.LocalDir, cfg.BaseURL)
	case "gcs":
		return NewGCSStorage(ctx, cfg.GCSBucket)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Backend)
	}
}
