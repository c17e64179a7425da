package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/takeam/admin-backend/internal/config"
	"github.com/takeam/admin-backend/internal/http/dto"
	"github.com/takeam/admin-backend/internal/repositories"
	"go.uber.org/zap"
)

type AuditHandler struct {
	auditRepo *repositories.AuditRepo
	cfg       *config.Config
	log       *zap.Logger
}

func NewAuditHandler(auditRepo *repositories.AuditRepo, cfg *config.Config, log *zap.Logger) *AuditHandler {
	return &AuditHandler{auditRepo: auditRepo, cfg: cfg, log: log}
}

func (h *AuditHandler) ListAuditLogs(c *fiber.Ctx) error {
	page, limit, offset := parsePagination(c, h.cfg)

	filter := repositories.AuditFilter{Limit: limit, Offset: offset}
	if v := c.Query("admin_email"); v != "" {
		filter.AdminEmail = &v
	}
	if v := c.Query("action"); v != "" {
		filter.Action = &v
	}
	if v := c.Query("target_type"); v != "" {
		filter.TargetType = &v
	}
	if v := c.Query("target_id"); v != "" {
		filter.TargetID = &v
	}
	if v := c.Query("search"); v != "" {
		filter.Text = &v
	}

	entries, total, err := h.auditRepo.List(c.Context(), filter)
	if err != nil {
		h.log.Error("list audit logs failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.PaginatedResponse{OK: true, Data: entries, Total: total, Page: page, Limit: limit})
}
