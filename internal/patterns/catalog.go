// Package patterns holds the pattern catalog: metadata from an embedded YAML
// manifest, embedded article sources, and the runnable demo bound to each
// slug.
package patterns

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"patternlab/internal/model"
	"patternlab/internal/patterns/adapter"
	"patternlab/internal/patterns/bridge"
	"patternlab/internal/patterns/decorator"
	"patternlab/internal/patterns/facade"
	"patternlab/internal/patterns/factory"
	"patternlab/internal/patterns/proxy"
	"patternlab/internal/patterns/singleton"
	"patternlab/internal/patterns/solid"
)

//go:embed patterns.yaml articles/*.md
var content embed.FS

// ErrUnknownPattern is returned for slugs not present in the catalog.
var ErrUnknownPattern = errors.New("unknown pattern")

// DemoFunc runs one pattern demonstration and returns its transcript.
type DemoFunc func(ctx context.Context) ([]string, error)

// demos binds manifest slugs to their demo functions.
var demos = map[string]DemoFunc{
	"singleton": singleton.Demo,
	"factory":   factory.Demo,
	"adapter":   adapter.Demo,
	"bridge":    bridge.Demo,
	"decorator": decorator.Demo,
	"facade":    facade.Demo,
	"proxy":     proxy.Demo,
	"solid":     solid.Demo,
}

// Entry is one catalog entry: public metadata plus the bound demo and the
// embedded article path.
type Entry struct {
	model.Pattern
	Demo        DemoFunc
	articlePath string
}

// Catalog is the loaded, validated pattern catalog.
type Catalog struct {
	entries []Entry
	bySlug  map[string]*Entry
}

type manifest struct {
	Patterns []struct {
		Slug     string `yaml:"slug"`
		Name     string `yaml:"name"`
		Category string `yaml:"category"`
		Intent   string `yaml:"intent"`
		Article  string `yaml:"article"`
	} `yaml:"patterns"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the process-wide catalog, loading it on first use.
// The manifest is embedded, so a load failure is a build defect; callers
// typically treat the error as fatal.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = load()
	})
	return defaultCatalog, defaultErr
}

func load() (*Catalog, error) {
	raw, err := content.ReadFile("patterns.yaml")
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Patterns) == 0 {
		return nil, errors.New("manifest lists no patterns")
	}

	c := &Catalog{bySlug: make(map[string]*Entry, len(m.Patterns))}
	seen := make(map[string]bool, len(m.Patterns))
	for _, p := range m.Patterns {
		demo, ok := demos[p.Slug]
		if !ok {
			return nil, fmt.Errorf("pattern %q has no demo bound", p.Slug)
		}
		if _, err := content.ReadFile(p.Article); err != nil {
			return nil, fmt.Errorf("pattern %q article %q: %w", p.Slug, p.Article, err)
		}
		if seen[p.Slug] {
			return nil, fmt.Errorf("duplicate pattern slug %q", p.Slug)
		}
		seen[p.Slug] = true

		c.entries = append(c.entries, Entry{
			Pattern: model.Pattern{
				Slug:     p.Slug,
				Name:     p.Name,
				Category: p.Category,
				Intent:   p.Intent,
			},
			Demo:        demo,
			articlePath: p.Article,
		})
	}
	// Index after the slice is final; appending above may reallocate.
	for i := range c.entries {
		c.bySlug[c.entries[i].Slug] = &c.entries[i]
	}

	return c, nil
}

// List returns the patterns in manifest order.
func (c *Catalog) List() []model.Pattern {
	out := make([]model.Pattern, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Pattern
	}
	return out
}

// Get returns the metadata for a slug or ErrUnknownPattern.
func (c *Catalog) Get(slug string) (*model.Pattern, error) {
	e, ok := c.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPattern, slug)
	}
	p := e.Pattern
	return &p, nil
}

// Run executes a pattern's demo and returns its transcript.
func (c *Catalog) Run(ctx context.Context, slug string) ([]string, error) {
	e, ok := c.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPattern, slug)
	}
	return e.Demo(ctx)
}

// ArticleSource returns the embedded markdown source for a slug.
func (c *Catalog) ArticleSource(slug string) ([]byte, error) {
	e, ok := c.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPattern, slug)
	}
	return content.ReadFile(e.articlePath)
}
