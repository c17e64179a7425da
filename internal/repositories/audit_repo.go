package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/takeam/admin-backend/internal/models"
)

type AuditRepo struct {
	pool *pgxpool.Pool
}

func NewAuditRepo(pool *pgxpool.Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

const auditColumns = `id, admin_id, admin_email, action, target_type, target_id, reason, notes, ip_address, user_agent, created_at`

type AuditFilter struct {
	AdminEmail *string // substring
	Action     *string // exact
	TargetType *string // exact
	TargetID   *string // substring of the uuid text
	Text       *string // substring of reason or notes
	Limit      int
	Offset     int
}

// List returns audit entries newest first. Entries sharing a timestamp fall
// back to the seq column, so ties resolve in insertion order.
func (r *AuditRepo) List(ctx context.Context, f AuditFilter) ([]models.AuditEntry, int, error) {
	where := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if f.AdminEmail != nil && *f.AdminEmail != "" {
		where = append(where, fmt.Sprintf("admin_email ILIKE $%d", argIdx))
		args = append(args, "%"+*f.AdminEmail+"%")
		argIdx++
	}
	if f.Action != nil && *f.Action != "" {
		where = append(where, fmt.Sprintf("action = $%d", argIdx))
		args = append(args, *f.Action)
		argIdx++
	}
	if f.TargetType != nil && *f.TargetType != "" {
		where = append(where, fmt.Sprintf("target_type = $%d", argIdx))
		args = append(args, *f.TargetType)
		argIdx++
	}
	if f.TargetID != nil && *f.TargetID != "" {
		where = append(where, fmt.Sprintf("target_id::text ILIKE $%d", argIdx))
		args = append(args, "%"+*f.TargetID+"%")
		argIdx++
	}
	if f.Text != nil && *f.Text != "" {
		where = append(where, fmt.Sprintf("(reason ILIKE $%d OR notes ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*f.Text+"%")
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM audit_log WHERE `+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM audit_log WHERE %s
		ORDER BY created_at DESC, seq DESC LIMIT $%d OFFSET $%d
	`, auditColumns, whereClause, argIdx, argIdx+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []models.AuditEntry
	for rows.Next() {
		var e models.AuditEntry
		if err := rows.Scan(&e.ID, &e.AdminID, &e.AdminEmail, &e.Action, &e.TargetType, &e.TargetID,
			&e.Reason, &e.Notes, &e.IPAddress, &e.UserAgent, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}

// Log inserts a standalone audit entry, for administrative actions that are not
// lifecycle transitions (admin creation, payment marking).
func (r *AuditRepo) Log(ctx context.Context, entry *models.AuditEntry) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO audit_log (admin_id, admin_email, action, target_type, target_id, reason, notes, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, entry.AdminID, entry.AdminEmail, entry.Action, entry.TargetType, entry.TargetID,
		entry.Reason, entry.Notes, entry.IPAddress, entry.UserAgent,
	).Scan(&entry.ID, &entry.CreatedAt)
}
