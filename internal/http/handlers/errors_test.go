package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/takeam/admin-backend/internal/models"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", models.ErrNotFound, fiber.StatusNotFound},
		{"unauthorized", models.ErrUnauthorized, fiber.StatusForbidden},
		{"persistence failure", models.ErrPersistenceFailure, fiber.StatusInternalServerError},
		{"unknown action", models.ErrUnknownAction, fiber.StatusBadRequest},
		{"reason required", models.ErrReasonRequired, fiber.StatusBadRequest},
		{"ambiguous target", models.ErrAmbiguousTarget, fiber.StatusBadRequest},
		{"invalid transition", models.NewTransitionError(models.AccountStatusActive, models.ActionApprove), fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return respondError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Errorf("respondError(%v) = %d, want %d", tt.err, resp.StatusCode, tt.status)
			}
		})
	}
}
