package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/takeam/admin-backend/internal/config"
)

// parsePagination reads page/limit query params, clamping limit to the
// configured maximum. Pages are 1-based.
func parsePagination(c *fiber.Ctx, cfg *config.Config) (page, limit, offset int) {
	page = 1
	limit = cfg.DefaultPageSize

	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > cfg.MaxPageSize {
		limit = cfg.MaxPageSize
	}

	return page, limit, (page - 1) * limit
}
