package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/takeam/admin-backend/internal/models"
)

type AgentRepo struct {
	pool *pgxpool.Pool
}

func NewAgentRepo(pool *pgxpool.Pool) *AgentRepo {
	return &AgentRepo{pool: pool}
}

const applicationColumns = `a.id, a.account_id, a.assigned_market_id, a.identity_type, a.identity_number,
	a.identity_document, a.approval_status, a.rejection_reason, a.reviewed_by_id, a.reviewed_by_email,
	a.reviewed_at, a.created_at`

func scanApplication(row interface{ Scan(...any) error }) (*models.AgentApplication, error) {
	var app models.AgentApplication
	err := row.Scan(&app.ID, &app.AccountID, &app.AssignedMarketID, &app.IdentityType, &app.IdentityNumber,
		&app.IdentityDocument, &app.ApprovalStatus, &app.RejectionReason, &app.ReviewedByID,
		&app.ReviewedByEmail, &app.ReviewedAt, &app.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *AgentRepo) GetApplicationByAccountID(ctx context.Context, accountID uuid.UUID) (*models.AgentApplication, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM agent_applications a WHERE a.account_id = $1`, accountID)
	return scanApplication(row)
}

// GetProfile joins the application, the owning account, and the registered
// traders counter for the agent detail view.
func (r *AgentRepo) GetProfile(ctx context.Context, applicationID uuid.UUID) (*models.AgentProfile, error) {
	var p models.AgentProfile
	err := r.pool.QueryRow(ctx, `
		SELECT `+applicationColumns+`,
		       acc.id, acc.role, acc.full_name, acc.email, acc.phone_number, acc.status, acc.created_at, acc.last_login,
		       (SELECT count(*) FROM trader_registrations tr WHERE tr.agent_application_id = a.id)
		FROM agent_applications a
		JOIN accounts acc ON acc.id = a.account_id
		WHERE a.id = $1
	`, applicationID).Scan(
		&p.Application.ID, &p.Application.AccountID, &p.Application.AssignedMarketID,
		&p.Application.IdentityType, &p.Application.IdentityNumber, &p.Application.IdentityDocument,
		&p.Application.ApprovalStatus, &p.Application.RejectionReason, &p.Application.ReviewedByID,
		&p.Application.ReviewedByEmail, &p.Application.ReviewedAt, &p.Application.CreatedAt,
		&p.Account.ID, &p.Account.Role, &p.Account.FullName, &p.Account.Email, &p.Account.PhoneNumber,
		&p.Account.Status, &p.Account.CreatedAt, &p.Account.LastLogin,
		&p.TradersRegistered,
	)
	if err != nil {
		return nil, err
	}
	p.UnifiedStatus = models.UnifiedStatus(p.Account.Status, &p.Application)
	return &p, nil
}

// ListProfiles returns agent profiles filtered by approval status
// (nil = all), newest applications first.
func (r *AgentRepo) ListProfiles(ctx context.Context, approvalStatus *string, limit, offset int) ([]models.AgentProfile, error) {
	query := `
		SELECT ` + applicationColumns + `,
		       acc.id, acc.role, acc.full_name, acc.email, acc.phone_number, acc.status, acc.created_at, acc.last_login,
		       (SELECT count(*) FROM trader_registrations tr WHERE tr.agent_application_id = a.id)
		FROM agent_applications a
		JOIN accounts acc ON acc.id = a.account_id
	`
	args := []any{}
	if approvalStatus != nil {
		query += ` WHERE a.approval_status = $1 ORDER BY a.created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, *approvalStatus, limit, offset)
	} else {
		query += ` ORDER BY a.created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.AgentProfile
	for rows.Next() {
		var p models.AgentProfile
		if err := rows.Scan(
			&p.Application.ID, &p.Application.AccountID, &p.Application.AssignedMarketID,
			&p.Application.IdentityType, &p.Application.IdentityNumber, &p.Application.IdentityDocument,
			&p.Application.ApprovalStatus, &p.Application.RejectionReason, &p.Application.ReviewedByID,
			&p.Application.ReviewedByEmail, &p.Application.ReviewedAt, &p.Application.CreatedAt,
			&p.Account.ID, &p.Account.Role, &p.Account.FullName, &p.Account.Email, &p.Account.PhoneNumber,
			&p.Account.Status, &p.Account.CreatedAt, &p.Account.LastLogin,
			&p.TradersRegistered,
		); err != nil {
			return nil, err
		}
		p.UnifiedStatus = models.UnifiedStatus(p.Account.Status, &p.Application)
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
