package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/takeam/admin-backend/internal/config"
	"github.com/takeam/admin-backend/internal/http/dto"
	"github.com/takeam/admin-backend/internal/middleware"
	"github.com/takeam/admin-backend/internal/models"
	"github.com/takeam/admin-backend/internal/repositories"
	"github.com/takeam/admin-backend/internal/services"
	"go.uber.org/zap"
)

type AgentHandler struct {
	agentRepo *repositories.AgentRepo
	lifecycle *services.LifecycleService
	cfg       *config.Config
	log       *zap.Logger
}

func NewAgentHandler(agentRepo *repositories.AgentRepo, lifecycle *services.LifecycleService, cfg *config.Config, log *zap.Logger) *AgentHandler {
	return &AgentHandler{agentRepo: agentRepo, lifecycle: lifecycle, cfg: cfg, log: log}
}

func actorFromCtx(c *fiber.Ctx) services.ActorContext {
	return services.ActorContext{
		AdminID: middleware.GetAdminID(c),
		Email:   middleware.GetAdminEmail(c),
		Role:    middleware.GetAdminRole(c),
	}
}

func metaFromCtx(c *fiber.Ctx, notes *string) services.RequestMeta {
	ip := c.IP()
	ua := c.Get("User-Agent")
	meta := services.RequestMeta{Notes: notes}
	if ip != "" {
		meta.IPAddress = &ip
	}
	if ua != "" {
		meta.UserAgent = &ua
	}
	return meta
}

func (h *AgentHandler) listByApproval(c *fiber.Ctx, approvalStatus string) error {
	_, limit, offset := parsePagination(c, h.cfg)
	profiles, err := h.agentRepo.ListProfiles(c.Context(), &approvalStatus, limit, offset)
	if err != nil {
		h.log.Error("list agents failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: profiles})
}

func (h *AgentHandler) ListPending(c *fiber.Ctx) error {
	return h.listByApproval(c, models.ApprovalStatusPending)
}

func (h *AgentHandler) ListActive(c *fiber.Ctx) error {
	return h.listByApproval(c, models.ApprovalStatusApproved)
}

func (h *AgentHandler) GetAgent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid agent application id"})
	}

	profile, err := h.agentRepo.GetProfile(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return respondError(c, models.ErrNotFound)
		}
		h.log.Error("agent profile lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}

func (h *AgentHandler) decide(c *fiber.Ctx, action string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid agent application id"})
	}

	var req dto.AgentDecisionRequest
	_ = c.BodyParser(&req)

	result, err := h.lifecycle.Apply(c.Context(), actorFromCtx(c),
		services.ApplicationTarget(id), action, req.Reason, metaFromCtx(c, req.Notes))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: result})
}

func (h *AgentHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, models.ActionApprove)
}

func (h *AgentHandler) Reject(c *fiber.Ctx) error {
	return h.decide(c, models.ActionReject)
}
