package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/takeam/admin-backend/internal/http/dto"
	"github.com/takeam/admin-backend/internal/models"
)

// respondError maps the lifecycle error taxonomy onto HTTP statuses. Validation
// failures are 4xx; only a storage failure surfaces as 500.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, models.ErrUnauthorized):
		status = fiber.StatusForbidden
	case errors.Is(err, models.ErrPersistenceFailure):
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error()})
}
