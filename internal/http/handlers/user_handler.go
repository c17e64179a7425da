package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/takeam/admin-backend/internal/config"
	"github.com/takeam/admin-backend/internal/http/dto"
	"github.com/takeam/admin-backend/internal/models"
	"github.com/takeam/admin-backend/internal/repositories"
	"github.com/takeam/admin-backend/internal/services"
	"go.uber.org/zap"
)

type UserHandler struct {
	accountService *services.AccountService
	lifecycle      *services.LifecycleService
	cfg            *config.Config
	log            *zap.Logger
}

func NewUserHandler(accountService *services.AccountService, lifecycle *services.LifecycleService, cfg *config.Config, log *zap.Logger) *UserHandler {
	return &UserHandler{accountService: accountService, lifecycle: lifecycle, cfg: cfg, log: log}
}

// unified status filter -> stored account status. APPROVED is the projection of
// an ACTIVE account; the rest pass through.
var accountStatusForFilter = map[string]string{
	models.ApprovalStatusApproved: models.AccountStatusActive,
	models.AccountStatusPending:   models.AccountStatusPending,
	models.AccountStatusSuspended: models.AccountStatusSuspended,
	models.AccountStatusBanned:    models.AccountStatusBanned,
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	page, limit, offset := parsePagination(c, h.cfg)

	filter := repositories.AccountFilter{Limit: limit, Offset: offset}
	if v := c.Query("role"); v != "" {
		filter.Role = &v
	}
	if v := c.Query("status"); v != "" {
		stored, ok := accountStatusForFilter[v]
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid status filter"})
		}
		filter.Status = &stored
	}
	if v := c.Query("search"); v != "" {
		filter.Search = &v
	}

	users, total, err := h.accountService.ListAccounts(c.Context(), filter)
	if err != nil {
		h.log.Error("list users failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.PaginatedResponse{OK: true, Data: users, Total: total, Page: page, Limit: limit})
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid user id"})
	}

	user, err := h.accountService.GetAccount(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: user})
}

// UpdateStatus applies suspend/ban/reactivate to a user account.
func (h *UserHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid user id"})
	}

	var req dto.UpdateUserStatusRequest
	if err := c.BodyParser(&req); err != nil || req.Action == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "action is required (suspend, ban, reactivate)"})
	}

	result, err := h.lifecycle.Apply(c.Context(), actorFromCtx(c),
		services.AccountTarget(id), req.Action, req.Reason, metaFromCtx(c, req.Notes))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: result})
}
