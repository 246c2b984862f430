// Package bridge demonstrates decoupling an abstraction (an article page)
// from its implementation axes: how the page is rendered and where the
// rendered bytes go. Renderers and sinks vary independently; the sink side is
// backed by the repo's real storage layer.
package bridge

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"patternlab/internal/storage"
)

// Renderer turns a page into bytes. One implementation axis.
type Renderer interface {
	Render(title, body string) []byte
	Name() string
}

// Sink receives rendered bytes. The other implementation axis.
type Sink interface {
	Write(ctx context.Context, key string, data []byte) (string, error)
}

// PlainRenderer renders title and body as plain text.
type PlainRenderer struct{}

func (PlainRenderer) Render(title, body string) []byte {
	return []byte(title + "\n\n" + body + "\n")
}

func (PlainRenderer) Name() string { return "plain" }

// MarkdownRenderer renders the title as a heading.
type MarkdownRenderer struct{}

func (MarkdownRenderer) Render(title, body string) []byte {
	return []byte("# " + title + "\n\n" + body + "\n")
}

func (MarkdownRenderer) Name() string { return "markdown" }

// BufferSink collects rendered bytes in memory.
type BufferSink struct {
	buf bytes.Buffer
}

func (s *BufferSink) Write(ctx context.Context, key string, data []byte) (string, error) {
	s.buf.Reset()
	s.buf.Write(data)
	return fmt.Sprintf("buffer(%d bytes)", len(data)), nil
}

func (s *BufferSink) String() string { return s.buf.String() }

// StorageSink writes rendered bytes into an object store.
type StorageSink struct {
	Store storage.Storage
}

func (s *StorageSink) Write(ctx context.Context, key string, data []byte) (string, error) {
	info, err := s.Store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: "text/plain",
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(%d bytes)", info.Key, info.Size), nil
}

// Page is the abstraction. It holds content and delegates rendering and
// delivery to whichever implementations it is bridged to.
type Page struct {
	Title string
	Body  string
}

// Publish renders the page with r and delivers it through s.
func (p Page) Publish(ctx context.Context, r Renderer, s Sink, key string) (string, error) {
	return s.Write(ctx, key, r.Render(p.Title, p.Body))
}

// Demo publishes one page across renderer/sink combinations.
func Demo(ctx context.Context) ([]string, error) {
	page := Page{Title: "Bridge", Body: "Decouple abstraction from implementation."}

	out := []string{"bridge: one page, two renderers, two sinks"}

	buf := &BufferSink{}
	if _, err := page.Publish(ctx, MarkdownRenderer{}, buf, "articles/bridge.md"); err != nil {
		return nil, err
	}
	first := strings.SplitN(buf.String(), "\n", 2)[0]
	out = append(out, fmt.Sprintf("bridge: markdown -> buffer starts with %q", first))

	sink := &StorageSink{Store: storage.NewMemory()}
	dest, err := page.Publish(ctx, PlainRenderer{}, sink, "articles/bridge.txt")
	if err != nil {
		return nil, err
	}
	out = append(out,
		fmt.Sprintf("bridge: plain -> storage wrote %s", dest),
		"bridge: renderers and sinks vary independently",
	)

	return out, nil
}
