package storage

import (
	"fmt"

	"patternlab/internal/config"
)

// New constructs the Storage backend selected by configuration.
// This is the factory the creational demos lean on: callers depend on the
// Storage interface and never learn which concrete backend they received.
func New(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Backend {
	case "minio":
		return NewMinIO(cfg.MinIO)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Backend)
	}
}
