package repository

import (
	"context"

	"patternlab/internal/model"
)

// ArticleRepository defines data access for published pattern article metadata.
type ArticleRepository interface {
	// Upsert inserts or replaces the metadata row for an article slug.
	Upsert(ctx context.Context, a *model.Article) (*model.Article, error)

	// FindBySlug returns article metadata by pattern slug.
	FindBySlug(ctx context.Context, slug string) (*model.Article, error)
}
