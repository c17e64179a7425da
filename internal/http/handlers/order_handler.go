package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/takeam/admin-backend/internal/config"
	"github.com/takeam/admin-backend/internal/http/dto"
	"github.com/takeam/admin-backend/internal/services"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orderService *services.OrderService
	cfg          *config.Config
	log          *zap.Logger
}

func NewOrderHandler(orderService *services.OrderService, cfg *config.Config, log *zap.Logger) *OrderHandler {
	return &OrderHandler{orderService: orderService, cfg: cfg, log: log}
}

func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	_, limit, offset := parsePagination(c, h.cfg)

	var status *string
	if v := c.Query("status"); v != "" {
		status = &v
	}

	orders, err := h.orderService.ListOrders(c.Context(), status, limit, offset)
	if err != nil {
		h.log.Error("list orders failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: orders})
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid order id"})
	}

	order, err := h.orderService.GetOrder(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: order})
}

func (h *OrderHandler) UpdateDeliveryStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid order id"})
	}

	var req dto.UpdateDeliveryStatusRequest
	if err := c.BodyParser(&req); err != nil || req.DeliveryStatus == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "delivery_status is required"})
	}

	order, err := h.orderService.UpdateDeliveryStatus(c.Context(), actorFromCtx(c), id, req.DeliveryStatus)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: order})
}
