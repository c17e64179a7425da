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

type PaymentService struct {
	paymentRepo *repositories.PaymentRepo
	publisher   events.Publisher
	log         *zap.Logger
}

func NewPaymentService(paymentRepo *repositories.PaymentRepo, publisher events.Publisher, log *zap.Logger) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, publisher: publisher, log: log}
}

func (s *PaymentService) ListPendingPayments(ctx context.Context, limit, offset int) ([]models.Payment, error) {
	return s.paymentRepo.ListPending(ctx, limit, offset)
}

// MarkPaid settles a pending trader payout. Audited atomically with the
// status flip; marking an already-settled payout fails rather than producing
// a second audit entry.
func (s *PaymentService) MarkPaid(ctx context.Context, actor ActorContext, paymentID uuid.UUID) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	if payment.PaymentStatus != models.PaymentStatusPending {
		return nil, fmt.Errorf("payment is %s, only pending payments can be marked paid", payment.PaymentStatus)
	}

	entry := &models.AuditEntry{
		AdminID:    actor.AdminID,
		AdminEmail: actor.Email,
		Action:     models.AuditActionMarkPaymentPaid,
		TargetType: models.TargetTypePayment,
		TargetID:   paymentID,
		Reason:     fmt.Sprintf("Payout of %s to %s marked paid", payment.TotalAmount, payment.TraderName),
	}
	if err := s.paymentRepo.MarkPaid(ctx, paymentID, entry); err != nil {
		if errors.Is(err, repositories.ErrStatusConflict) {
			return nil, fmt.Errorf("payment was settled concurrently")
		}
		return nil, err
	}
	payment.PaymentStatus = models.PaymentStatusPaid

	if pubErr := s.publisher.Publish(ctx, events.StreamAdmin, events.Event{
		Type: events.EventPaymentMarkedPaid,
		Payload: map[string]any{
			"payment_id": paymentID.String(),
			"trader_id":  payment.TraderID.String(),
			"amount":     payment.TotalAmount,
		},
	}); pubErr != nil {
		s.log.Warn("event publish failed", zap.Error(pubErr))
	}

	return payment, nil
}
