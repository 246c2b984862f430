package storage

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"sync"
	"time"
)

// ErrObjectNotFound is returned by the memory backend for unknown keys.
var ErrObjectNotFound = fmt.Errorf("object not found")

type memObject struct {
	data []byte
	info ObjectInfo
}

// memoryStorage is an in-process Storage implementation used by the pattern
// demos and local development. It keeps objects in a map and mimics the
// streaming contract of the S3-backed implementation. Safe for concurrent use.
type memoryStorage struct {
	mu      sync.RWMutex
	objects map[string]memObject
}

// NewMemory creates an empty in-memory storage backend.
func NewMemory() Storage {
	return &memoryStorage{objects: make(map[string]memObject)}
}

// Put buffers the reader and stores the object under key.
func (m *memoryStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	if r == nil {
		return ObjectInfo{}, fmt.Errorf("reader is nil")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("read object body: %w", err)
	}
	if opt.Size >= 0 && opt.Size != int64(len(data)) {
		return ObjectInfo{}, fmt.Errorf("size mismatch: declared %d, read %d", opt.Size, len(data))
	}

	sum := md5.Sum(data)
	info := ObjectInfo{
		Key:          key,
		Size:         int64(len(data)),
		ETag:         hex.EncodeToString(sum[:]),
		ContentType:  opt.ContentType,
		LastModified: time.Now(),
		Metadata:     opt.Metadata,
	}

	m.mu.Lock()
	m.objects[key] = memObject{data: data, info: info}
	m.mu.Unlock()

	return info, nil
}

// Get returns a reader over a copy of the stored bytes.
func (m *memoryStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	m.mu.RLock()
	obj, ok := m.objects[key]
	m.mu.RUnlock()
	if !ok {
		return nil, ObjectInfo{}, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}
	return io.NopCloser(bytes.NewReader(obj.data)), obj.info, nil
}

// Delete removes an object by key; missing keys are not an error.
func (m *memoryStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.objects, key)
	m.mu.Unlock()
	return nil
}

// PresignGet is not meaningfully implementable in-process; it returns a
// memory:// pseudo-URL so callers can still display something.
func (m *memoryStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	m.mu.RLock()
	_, ok := m.objects[key]
	m.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}
	return "memory://" + key + "?expires=" + expiry.String(), nil
}
