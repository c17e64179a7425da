package handlers

import (
	"net/mail"

	"github.com/gofiber/fiber/v2"
	"github.com/takeam/admin-backend/internal/http/dto"
	"github.com/takeam/admin-backend/internal/services"
	"go.uber.org/zap"
)

type AdminHandler struct {
	accountService *services.AccountService
	statsService   *services.StatsService
	log            *zap.Logger
}

func NewAdminHandler(accountService *services.AccountService, statsService *services.StatsService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{accountService: accountService, statsService: statsService, log: log}
}

func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.statsService.GetAdminStats(c.Context())
	if err != nil {
		h.log.Error("stats query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: stats})
}

func (h *AdminHandler) ListAdmins(c *fiber.Ctx) error {
	admins, err := h.accountService.ListAdmins(c.Context())
	if err != nil {
		h.log.Error("list admins failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: admins})
}

func (h *AdminHandler) CreateAdmin(c *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "email and password are required"})
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid email address"})
	}
	if len(req.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "password must be at least 8 characters"})
	}

	admin, err := h.accountService.CreateAdmin(c.Context(), actorFromCtx(c), req.Email, req.Password, req.FullName)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: admin})
}
