package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/takeam/admin-backend/internal/config"
	"github.com/takeam/admin-backend/internal/http/dto"
	"github.com/takeam/admin-backend/internal/models"
	"github.com/takeam/admin-backend/internal/repositories"
	"go.uber.org/zap"
)

type RequestHandler struct {
	requestRepo *repositories.RequestRepo
	cfg         *config.Config
	log         *zap.Logger
}

func NewRequestHandler(requestRepo *repositories.RequestRepo, cfg *config.Config, log *zap.Logger) *RequestHandler {
	return &RequestHandler{requestRepo: requestRepo, cfg: cfg, log: log}
}

func (h *RequestHandler) listByStatus(c *fiber.Ctx, status *string) error {
	_, limit, offset := parsePagination(c, h.cfg)

	requests, err := h.requestRepo.List(c.Context(), status, limit, offset)
	if err != nil {
		h.log.Error("list pickup requests failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: requests})
}

func (h *RequestHandler) ListAll(c *fiber.Ctx) error {
	return h.listByStatus(c, nil)
}

func (h *RequestHandler) ListPending(c *fiber.Ctx) error {
	status := models.RequestStatusPending
	return h.listByStatus(c, &status)
}

func (h *RequestHandler) ListActive(c *fiber.Ctx) error {
	status := models.RequestStatusAccepted
	return h.listByStatus(c, &status)
}

func (h *RequestHandler) ListCompleted(c *fiber.Ctx) error {
	status := models.RequestStatusCompleted
	return h.listByStatus(c, &status)
}

func (h *RequestHandler) GetRequest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request id"})
	}

	request, err := h.requestRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return respondError(c, models.ErrNotFound)
		}
		h.log.Error("pickup request lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: request})
}
