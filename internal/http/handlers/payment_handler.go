package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/takeam/admin-backend/internal/config"
	"github.com/takeam/admin-backend/internal/http/dto"
	"github.com/takeam/admin-backend/internal/services"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
	cfg            *config.Config
	log            *zap.Logger
}

func NewPaymentHandler(paymentService *services.PaymentService, cfg *config.Config, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, cfg: cfg, log: log}
}

func (h *PaymentHandler) ListPendingPayments(c *fiber.Ctx) error {
	_, limit, offset := parsePagination(c, h.cfg)

	payments, err := h.paymentService.ListPendingPayments(c.Context(), limit, offset)
	if err != nil {
		h.log.Error("list pending payments failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: payments})
}

func (h *PaymentHandler) MarkPaid(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid payment id"})
	}

	payment, err := h.paymentService.MarkPaid(c.Context(), actorFromCtx(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: payment})
}
