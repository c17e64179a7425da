package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/takeam/admin-backend/internal/models"
)

// ErrStatusConflict is returned when the row's status no longer matches the
// status the caller validated against. The row is left untouched.
var ErrStatusConflict = errors.New("status changed concurrently")

// LifecycleRepo performs the atomic half of a lifecycle transition: the status
// mutation and its audit entry commit in one transaction, with the target row
// locked FOR UPDATE so concurrent transitions against the same id serialize.
type LifecycleRepo struct {
	pool *pgxpool.Pool
}

func NewLifecycleRepo(pool *pgxpool.Pool) *LifecycleRepo {
	return &LifecycleRepo{pool: pool}
}

func (r *LifecycleRepo) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

func (r *LifecycleRepo) GetApplication(ctx context.Context, id uuid.UUID) (*models.AgentApplication, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM agent_applications a WHERE a.id = $1`, id)
	return scanApplication(row)
}

func insertAudit(ctx context.Context, tx pgx.Tx, entry *models.AuditEntry) error {
	return tx.QueryRow(ctx, `
		INSERT INTO audit_log (admin_id, admin_email, action, target_type, target_id, reason, notes, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, entry.AdminID, entry.AdminEmail, entry.Action, entry.TargetType, entry.TargetID,
		entry.Reason, entry.Notes, entry.IPAddress, entry.UserAgent,
	).Scan(&entry.ID, &entry.CreatedAt)
}

// UpdateAccountStatus moves an account from fromStatus to toStatus and records
// the audit entry, both in one transaction. ErrStatusConflict if the account
// is no longer in fromStatus by the time the row lock is taken.
func (r *LifecycleRepo) UpdateAccountStatus(ctx context.Context, accountID uuid.UUID, fromStatus, toStatus string, entry *models.AuditEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var current string
	if err := tx.QueryRow(ctx, `SELECT status FROM accounts WHERE id = $1 FOR UPDATE`, accountID).Scan(&current); err != nil {
		return err
	}
	if current != fromStatus {
		return ErrStatusConflict
	}

	if _, err := tx.Exec(ctx, `UPDATE accounts SET status = $1 WHERE id = $2`, toStatus, accountID); err != nil {
		return err
	}

	if err := insertAudit(ctx, tx, entry); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ApplicationDecision carries the outcome of an approve/reject review.
type ApplicationDecision struct {
	Approved        bool
	RejectionReason *string
	ReviewerID      uuid.UUID
	ReviewerEmail   string
}

// DecideApplication settles a pending application and records the audit entry
// in one transaction. On approval the owning account also moves PENDING ->
// ACTIVE inside the same transaction, keeping approvalStatus and accountStatus
// consistent. ErrStatusConflict if the application is no longer PENDING.
func (r *LifecycleRepo) DecideApplication(ctx context.Context, applicationID uuid.UUID, decision ApplicationDecision, entry *models.AuditEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var current string
	var accountID uuid.UUID
	if err := tx.QueryRow(ctx, `
		SELECT approval_status, account_id FROM agent_applications WHERE id = $1 FOR UPDATE
	`, applicationID).Scan(&current, &accountID); err != nil {
		return err
	}
	if current != models.ApprovalStatusPending {
		return ErrStatusConflict
	}

	newApproval := models.ApprovalStatusRejected
	if decision.Approved {
		newApproval = models.ApprovalStatusApproved
	}

	if _, err := tx.Exec(ctx, `
		UPDATE agent_applications
		SET approval_status = $1, rejection_reason = $2, reviewed_by_id = $3, reviewed_by_email = $4, reviewed_at = now()
		WHERE id = $5
	`, newApproval, decision.RejectionReason, decision.ReviewerID, decision.ReviewerEmail, applicationID); err != nil {
		return err
	}

	if decision.Approved {
		tag, err := tx.Exec(ctx, `
			UPDATE accounts SET status = $1 WHERE id = $2 AND status = $3
		`, models.AccountStatusActive, accountID, models.AccountStatusPending)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrStatusConflict
		}
	}

	if err := insertAudit(ctx, tx, entry); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
