package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/takeam/admin-backend/internal/models"
)

type RequestRepo struct {
	pool *pgxpool.Pool
}

func NewRequestRepo(pool *pgxpool.Pool) *RequestRepo {
	return &RequestRepo{pool: pool}
}

const requestColumns = `id, trader_id, trader_name, trader_phone, product_type, estimated_weight,
	location, notes, agent_id, agent_name, agent_phone, status, created_at, accepted_at, completed_at`

func scanRequest(row interface{ Scan(...any) error }) (*models.PickupRequest, error) {
	var pr models.PickupRequest
	err := row.Scan(&pr.ID, &pr.TraderID, &pr.TraderName, &pr.TraderPhone, &pr.ProductType, &pr.EstimatedWeight,
		&pr.Location, &pr.Notes, &pr.AgentID, &pr.AgentName, &pr.AgentPhone, &pr.Status,
		&pr.CreatedAt, &pr.AcceptedAt, &pr.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

func (r *RequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.PickupRequest, error) {
	return scanRequest(r.pool.QueryRow(ctx, `SELECT `+requestColumns+` FROM pickup_requests WHERE id = $1`, id))
}

func (r *RequestRepo) List(ctx context.Context, status *string, limit, offset int) ([]models.PickupRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM pickup_requests`
	args := []any{}
	if status != nil && *status != "" {
		query += ` WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, *status, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.PickupRequest
	for rows.Next() {
		pr, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *pr)
	}
	return requests, rows.Err()
}

func (r *RequestRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM pickup_requests WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *RequestRepo) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM pickup_requests`).Scan(&count)
	return count, err
}
