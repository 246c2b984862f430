package postgres

import (
	"context"
	"database/sql"

	"patternlab/internal/model"
	"patternlab/internal/repository"
)

// ArticlePostgres is a PostgreSQL implementation of repository.ArticleRepository.
type ArticlePostgres struct {
	db *sql.DB
}

// NewArticlePostgres creates a new ArticlePostgres repository.
func NewArticlePostgres(db *sql.DB) *ArticlePostgres {
	return &ArticlePostgres{db: db}
}

var _ repository.ArticleRepository = (*ArticlePostgres)(nil)

// Upsert inserts the metadata row for a slug, replacing any previous row.
func (r *ArticlePostgres) Upsert(ctx context.Context, a *model.Article) (*model.Article, error) {
	const q = `
		INSERT INTO pattern_articles (slug, storage_key, size, content_type, published_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slug) DO UPDATE
		SET storage_key = EXCLUDED.storage_key,
		    size = EXCLUDED.size,
		    content_type = EXCLUDED.content_type,
		    published_at = EXCLUDED.published_at
		RETURNING slug, storage_key, size, content_type, published_at
	`
	row := r.db.QueryRowContext(ctx, q,
		a.Slug,
		a.StorageKey,
		a.Size,
		a.ContentType,
		a.PublishedAt,
	)
	var out model.Article
	if err := row.Scan(
		&out.Slug,
		&out.StorageKey,
		&out.Size,
		&out.ContentType,
		&out.PublishedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindBySlug fetches article metadata for a pattern slug.
func (r *ArticlePostgres) FindBySlug(ctx context.Context, slug string) (*model.Article, error) {
	const q = `
		SELECT slug, storage_key, size, content_type, published_at
		FROM pattern_articles
		WHERE slug = $1
	`
	row := r.db.QueryRowContext(ctx, q, slug)
	var a model.Article
	if err := row.Scan(
		&a.Slug,
		&a.StorageKey,
		&a.Size,
		&a.ContentType,
		&a.PublishedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
