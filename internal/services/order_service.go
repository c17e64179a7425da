package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/takeam/admin-backend/internal/events"
	"github.com/takeam/admin-backend/internal/models"
	"github.com/takeam/admin-backend/internal/repositories"
	"go.uber.org/zap"
)

type OrderService struct {
	orderRepo *repositories.OrderRepo
	publisher events.Publisher
	log       *zap.Logger
}

func NewOrderService(orderRepo *repositories.OrderRepo, publisher events.Publisher, log *zap.Logger) *OrderService {
	return &OrderService{orderRepo: orderRepo, publisher: publisher, log: log}
}

func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	o, err := s.orderRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	return o, err
}

func (s *OrderService) ListOrders(ctx context.Context, status *string, limit, offset int) ([]models.Order, error) {
	return s.orderRepo.List(ctx, status, limit, offset)
}

// UpdateDeliveryStatus moves an order along the delivery state machine. The
// status change and its audit entry commit together.
func (s *OrderService) UpdateDeliveryStatus(ctx context.Context, actor ActorContext, orderID uuid.UUID, newStatus string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if !models.IsValidOrderTransition(order.Status, newStatus) {
		return nil, fmt.Errorf("invalid transition from %s to %s", order.Status, newStatus)
	}

	oldStatus := order.Status
	entry := &models.AuditEntry{
		AdminID:    actor.AdminID,
		AdminEmail: actor.Email,
		Action:     models.AuditActionUpdateOrder,
		TargetType: models.TargetTypeOrder,
		TargetID:   orderID,
		Reason:     fmt.Sprintf("Delivery status %s to %s", oldStatus, newStatus),
	}
	if err := s.orderRepo.UpdateStatus(ctx, orderID, oldStatus, newStatus, entry); err != nil {
		if errors.Is(err, repositories.ErrStatusConflict) {
			return nil, fmt.Errorf("order status changed concurrently, reload and retry")
		}
		return nil, err
	}
	order.Status = newStatus

	if pubErr := s.publisher.Publish(ctx, events.StreamAdmin, events.Event{
		Type: events.EventOrderStatusChanged,
		Payload: map[string]any{
			"order_id":   orderID.String(),
			"old_status": oldStatus,
			"new_status": newStatus,
		},
	}); pubErr != nil {
		s.log.Warn("event publish failed", zap.Error(pubErr))
	}

	return order, nil
}
