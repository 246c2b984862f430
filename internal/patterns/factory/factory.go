// Package factory demonstrates the factory pattern with the repo's real
// storage factory: storage.New picks a concrete backend from configuration
// and callers only ever see the Storage interface.
package factory

import (
	"context"
	"fmt"
	"io"
	"strings"

	"patternlab/internal/config"
	"patternlab/internal/storage"
)

// Demo builds a storage backend through the factory, uses it through the
// interface, and shows that bogus backend names are rejected at the factory.
func Demo(ctx context.Context) ([]string, error) {
	store, err := storage.New(config.StorageConfig{Backend: "memory"})
	if err != nil {
		return nil, err
	}

	out := []string{
		`factory: storage.New selected the "memory" backend`,
		"factory: the concrete type stays hidden behind the Storage interface",
	}

	const body = "hello object"
	info, err := store.Put(ctx, "articles/demo.txt", strings.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "text/plain",
	})
	if err != nil {
		return nil, fmt.Errorf("factory demo put: %w", err)
	}
	out = append(out, fmt.Sprintf("factory: put %s (%d bytes)", info.Key, info.Size))

	rc, _, err := store.Get(ctx, "articles/demo.txt")
	if err != nil {
		return nil, fmt.Errorf("factory demo get: %w", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	out = append(out, fmt.Sprintf("factory: read back %q", string(data)))

	if _, err := storage.New(config.StorageConfig{Backend: "carrier-pigeon"}); err != nil {
		out = append(out, fmt.Sprintf("factory: rejected bad backend: %v", err))
	}

	return out, nil
}
