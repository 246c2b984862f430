package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"patternlab/internal/service"
)

// ListPatterns handles GET /patterns.
func ListPatterns(cat service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": cat.Patterns()})
	}
}

// GetPattern handles GET /patterns/:slug.
func GetPattern(cat service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := cat.Pattern(c.Params("slug"))
		if err != nil {
			if errors.Is(err, service.ErrPatternNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "pattern not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(p)
	}
}

// RunPattern handles POST /patterns/:slug/run. It executes the demo and
// returns the transcript lines.
func RunPattern(cat service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := c.Params("slug")
		lines, err := cat.Run(c.UserContext(), slug)
		if err != nil {
			if errors.Is(err, service.ErrPatternNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "pattern not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"slug": slug, "transcript": lines})
	}
}

// GetPatternArticle handles GET /patterns/:slug/article, streaming the
// published markdown from object storage.
func GetPatternArticle(cat service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, info, err := cat.Article(c.UserContext(), c.Params("slug"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrPatternNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "pattern not found")
			case errors.Is(err, service.ErrArticleNotPublished):
				return writeError(c, fiber.StatusNotFound, "ARTICLE_NOT_PUBLISHED", "article not published")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}

		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		} else {
			c.Set(fiber.HeaderContentType, "text/markdown")
		}
		if info.Size > 0 {
			return c.SendStream(rc, int(info.Size))
		}
		return c.SendStream(rc)
	}
}
