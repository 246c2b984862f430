package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"patternlab/internal/model"
	"patternlab/internal/patterns"
	"patternlab/internal/repository"
	"patternlab/internal/storage"
)

var (
	ErrPatternNotFound     = errors.New("pattern not found")
	ErrArticleNotPublished = errors.New("article not published")
)

// CatalogService exposes the pattern catalog: metadata, runnable demos, and
// published articles.
type CatalogService interface {
	// Patterns returns the catalog in manifest order.
	Patterns() []model.Pattern

	// Pattern returns metadata for one slug.
	Pattern(slug string) (*model.Pattern, error)

	// Run executes a pattern demo and returns its transcript.
	Run(ctx context.Context, slug string) ([]string, error)

	// Article streams a published article from object storage.
	Article(ctx context.Context, slug string) (io.ReadCloser, storage.ObjectInfo, error)

	// PublishArticles writes every embedded article to object storage and
	// records its metadata. Safe to call repeatedly.
	PublishArticles(ctx context.Context) error
}

// catalogService is a concrete implementation of CatalogService.
type catalogService struct {
	cat   *patterns.Catalog
	store storage.Storage
	repo  repository.ArticleRepository
}

// NewCatalogService constructs a CatalogService over the loaded catalog.
func NewCatalogService(cat *patterns.Catalog, store storage.Storage, repo repository.ArticleRepository) CatalogService {
	return &catalogService{cat: cat, store: store, repo: repo}
}

func (s *catalogService) Patterns() []model.Pattern {
	return s.cat.List()
}

func (s *catalogService) Pattern(slug string) (*model.Pattern, error) {
	p, err := s.cat.Get(slug)
	if err != nil {
		if errors.Is(err, patterns.ErrUnknownPattern) {
			return nil, ErrPatternNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *catalogService) Run(ctx context.Context, slug string) ([]string, error) {
	lines, err := s.cat.Run(ctx, slug)
	if err != nil {
		if errors.Is(err, patterns.ErrUnknownPattern) {
			return nil, ErrPatternNotFound
		}
		return nil, err
	}
	return lines, nil
}

// Article resolves the metadata row first, then streams the object.
func (s *catalogService) Article(ctx context.Context, slug string) (io.ReadCloser, storage.ObjectInfo, error) {
	if _, err := s.cat.Get(slug); err != nil {
		return nil, storage.ObjectInfo{}, ErrPatternNotFound
	}

	meta, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ObjectInfo{}, ErrArticleNotPublished
		}
		return nil, storage.ObjectInfo{}, err
	}

	return s.store.Get(ctx, meta.StorageKey)
}

// PublishArticles uploads each article and saves its metadata. If the DB
// write fails the just-written object is deleted so storage and metadata
// stay consistent.
func (s *catalogService) PublishArticles(ctx context.Context) error {
	for _, p := range s.cat.List() {
		body, err := s.cat.ArticleSource(p.Slug)
		if err != nil {
			return fmt.Errorf("article source for %s: %w", p.Slug, err)
		}

		key := "articles/" + p.Slug + ".md"
		info, err := s.store.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
			Size:        int64(len(body)),
			ContentType: "text/markdown",
			Metadata: map[string]string{
				"pattern-slug": p.Slug,
			},
		})
		if err != nil {
			return fmt.Errorf("publish %s to storage: %w", p.Slug, err)
		}

		_, err = s.repo.Upsert(ctx, &model.Article{
			Slug:        p.Slug,
			StorageKey:  info.Key,
			Size:        info.Size,
			ContentType: "text/markdown",
			PublishedAt: time.Now().UTC(),
		})
		if err != nil {
			// Rollback: delete the object from storage
			if delErr := s.store.Delete(ctx, key); delErr != nil {
				return fmt.Errorf("metadata save for %s failed: %v; rollback delete failed: %v", p.Slug, err, delErr)
			}
			return fmt.Errorf("metadata save for %s failed: %w", p.Slug, err)
		}
	}
	return nil
}
