package services

import (
	"context"

	"github.com/takeam/admin-backend/internal/models"
	"github.com/takeam/admin-backend/internal/repositories"
	"golang.org/x/sync/errgroup"
)

type StatsService struct {
	requestRepo *repositories.RequestRepo
	paymentRepo *repositories.PaymentRepo
}

func NewStatsService(requestRepo *repositories.RequestRepo, paymentRepo *repositories.PaymentRepo) *StatsService {
	return &StatsService{requestRepo: requestRepo, paymentRepo: paymentRepo}
}

// GetAdminStats fans the count queries out in parallel; they hit independent
// tables and the dashboard polls this endpoint.
func (s *StatsService) GetAdminStats(ctx context.Context) (*models.AdminStats, error) {
	var stats models.AdminStats

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.requestRepo.CountAll(gctx)
		stats.TotalRequests = n
		return err
	})
	g.Go(func() error {
		n, err := s.requestRepo.CountByStatus(gctx, models.RequestStatusPending)
		stats.PendingRequests = n
		return err
	})
	g.Go(func() error {
		n, err := s.requestRepo.CountByStatus(gctx, models.RequestStatusAccepted)
		stats.ActiveRequests = n
		return err
	})
	g.Go(func() error {
		n, err := s.requestRepo.CountByStatus(gctx, models.RequestStatusCompleted)
		stats.CompletedRequests = n
		return err
	})
	g.Go(func() error {
		count, amount, err := s.paymentRepo.PendingTotals(gctx)
		stats.PendingPaymentsCount = count
		stats.PendingPaymentsAmount = amount
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
