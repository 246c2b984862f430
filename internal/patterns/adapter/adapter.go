// Package adapter demonstrates wrapping one interface so it satisfies
// another. The working example adapts a legacy byte-slice store to the
// streaming put shape used by the storage layer; the toy example views a
// square through a rectangle interface.
package adapter

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// LegacyByteStore is the interface we are stuck with: whole byte slices,
// no readers, no context.
type LegacyByteStore struct {
	objects map[string][]byte
}

// NewLegacyByteStore creates an empty legacy store.
func NewLegacyByteStore() *LegacyByteStore {
	return &LegacyByteStore{objects: make(map[string][]byte)}
}

func (s *LegacyByteStore) Save(key string, data []byte) {
	s.objects[key] = data
}

func (s *LegacyByteStore) Load(key string) ([]byte, bool) {
	data, ok := s.objects[key]
	return data, ok
}

// StreamPutter is the shape modern callers expect, a cut-down view of the
// storage.Storage Put method.
type StreamPutter interface {
	Put(ctx context.Context, key string, r io.Reader) (int64, error)
}

// ByteStoreAdapter makes a LegacyByteStore usable wherever a StreamPutter is
// required. It buffers the stream and hands the bytes to the legacy API.
type ByteStoreAdapter struct {
	Legacy *LegacyByteStore
}

var _ StreamPutter = (*ByteStoreAdapter)(nil)

func (a *ByteStoreAdapter) Put(ctx context.Context, key string, r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("adapter read: %w", err)
	}
	a.Legacy.Save(key, data)
	return int64(len(data)), nil
}

// Rectangle is what the drawing code knows how to measure.
type Rectangle interface {
	Width() float64
	Height() float64
}

// Square is the incompatible type: one side, not two.
type Square struct {
	Side float64
}

// SquareAdapter presents a Square as a Rectangle.
type SquareAdapter struct {
	Square Square
}

func (a SquareAdapter) Width() float64  { return a.Square.Side }
func (a SquareAdapter) Height() float64 { return a.Square.Side }

func area(r Rectangle) float64 {
	return r.Width() * r.Height()
}

// Demo runs both adaptations and reports what the callers observed.
func Demo(ctx context.Context) ([]string, error) {
	legacy := NewLegacyByteStore()
	var putter StreamPutter = &ByteStoreAdapter{Legacy: legacy}

	out := []string{"adapter: legacy store accepts only byte slices"}

	n, err := putter.Put(ctx, "notes/hi.txt", strings.NewReader("hello bytes"))
	if err != nil {
		return nil, err
	}
	out = append(out, fmt.Sprintf("adapter: streamed %d bytes through the adapter", n))

	if data, ok := legacy.Load("notes/hi.txt"); ok {
		out = append(out, fmt.Sprintf("adapter: legacy store now holds %q under notes/hi.txt", string(data)))
	}

	sq := SquareAdapter{Square: Square{Side: 4}}
	out = append(out, fmt.Sprintf("adapter: square with side 4 measures as %gx%g, area %g",
		sq.Width(), sq.Height(), area(sq)))

	return out, nil
}
