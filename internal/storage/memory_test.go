package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"patternlab/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	info, err := s.Put(ctx, "articles/adapter.md", strings.NewReader("# Adapter"), PutObjectOptions{
		Size:        9,
		ContentType: "text/markdown",
		Metadata:    map[string]string{"slug": "adapter"},
	})
	require.NoError(t, err)
	assert.Equal(t, "articles/adapter.md", info.Key)
	assert.Equal(t, int64(9), info.Size)
	assert.NotEmpty(t, info.ETag)

	rc, got, err := s.Get(ctx, "articles/adapter.md")
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "# Adapter", string(body))
	assert.Equal(t, "text/markdown", got.ContentType)

	require.NoError(t, s.Delete(ctx, "articles/adapter.md"))
	_, _, err = s.Get(ctx, "articles/adapter.md")
	assert.True(t, errors.Is(err, ErrObjectNotFound))

	// Deleting a missing key is not an error.
	assert.NoError(t, s.Delete(ctx, "articles/adapter.md"))
}

func TestMemoryStorage_UnknownSize(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	info, err := s.Put(ctx, "k", strings.NewReader("abc"), PutObjectOptions{Size: -1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.Size)

	_, err = s.Put(ctx, "k", strings.NewReader("abc"), PutObjectOptions{Size: 5})
	assert.Error(t, err)
}

func TestMemoryStorage_PresignGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	_, err := s.Put(ctx, "k", strings.NewReader("abc"), PutObjectOptions{Size: 3})
	require.NoError(t, err)

	u, err := s.PresignGet(ctx, "k", 15*time.Minute)
	require.NoError(t, err)
	assert.Contains(t, u, "memory://k")

	_, err = s.PresignGet(ctx, "missing", time.Minute)
	assert.Error(t, err)
}

func TestNew_BackendSelection(t *testing.T) {
	s, err := New(config.StorageConfig{Backend: "memory"})
	require.NoError(t, err)
	assert.NotNil(t, s)

	// minio backend surfaces its own validation errors through the factory
	_, err = New(config.StorageConfig{Backend: "minio"})
	assert.Error(t, err)

	_, err = New(config.StorageConfig{Backend: "redis"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage backend")
}
