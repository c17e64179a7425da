package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/takeam/admin-backend/internal/models"
)

type PaymentRepo struct {
	pool *pgxpool.Pool
}

func NewPaymentRepo(pool *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

const paymentColumns = `id, trader_id, trader_name, trader_phone, trader_bank_account, trader_bank_name,
	agent_id, agent_name, grade_a_weight, grade_b_weight, grade_c_weight, grade_d_weight,
	grade_a_amount, grade_b_amount, grade_c_amount, grade_d_amount,
	total_weight, total_amount, base_reference_price, agent_notes, payment_status, graded_at, paid_at`

func scanPayment(row interface{ Scan(...any) error }) (*models.Payment, error) {
	var p models.Payment
	err := row.Scan(&p.ID, &p.TraderID, &p.TraderName, &p.TraderPhone, &p.TraderBankAccount, &p.TraderBankName,
		&p.AgentID, &p.AgentName, &p.GradeAWeight, &p.GradeBWeight, &p.GradeCWeight, &p.GradeDWeight,
		&p.GradeAAmount, &p.GradeBAmount, &p.GradeCAmount, &p.GradeDAmount,
		&p.TotalWeight, &p.TotalAmount, &p.BaseReferencePrice, &p.AgentNotes, &p.PaymentStatus, &p.GradedAt, &p.PaidAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	return scanPayment(r.pool.QueryRow(ctx, `SELECT `+paymentColumns+` FROM gradings WHERE id = $1`, id))
}

func (r *PaymentRepo) ListPending(ctx context.Context, limit, offset int) ([]models.Payment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+paymentColumns+` FROM gradings
		WHERE payment_status = $1 ORDER BY graded_at DESC LIMIT $2 OFFSET $3
	`, models.PaymentStatusPending, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

// MarkPaid flips a pending payout to PAID and records the audit entry in the
// same transaction. ErrStatusConflict if it was already settled.
func (r *PaymentRepo) MarkPaid(ctx context.Context, id uuid.UUID, entry *models.AuditEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var current string
	if err := tx.QueryRow(ctx, `SELECT payment_status FROM gradings WHERE id = $1 FOR UPDATE`, id).Scan(&current); err != nil {
		return err
	}
	if current != models.PaymentStatusPending {
		return ErrStatusConflict
	}

	if _, err := tx.Exec(ctx, `UPDATE gradings SET payment_status = $1, paid_at = now() WHERE id = $2`, models.PaymentStatusPaid, id); err != nil {
		return err
	}

	if err := insertAudit(ctx, tx, entry); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// PendingTotals returns the count and summed amount of unsettled payouts.
func (r *PaymentRepo) PendingTotals(ctx context.Context) (int, float64, error) {
	var count int
	var amount float64
	err := r.pool.QueryRow(ctx, `
		SELECT count(*), COALESCE(sum(total_amount::numeric), 0)
		FROM gradings WHERE payment_status = $1
	`, models.PaymentStatusPending).Scan(&count, &amount)
	return count, amount, err
}
