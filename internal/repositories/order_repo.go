package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/takeam/admin-backend/internal/models"
)

type OrderRepo struct {
	pool *pgxpool.Pool
}

func NewOrderRepo(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

const orderColumns = `id, buyer_id, subtotal, delivery_fee, grand_total, delivery_address, payment_method, payment_status, status, created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (*models.Order, error) {
	var o models.Order
	err := row.Scan(&o.ID, &o.BuyerID, &o.Subtotal, &o.DeliveryFee, &o.GrandTotal, &o.DeliveryAddress,
		&o.PaymentMethod, &o.PaymentStatus, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	o, err := scanOrder(r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, order_id, product_id, product_name, grade, quantity_kg, price_per_kg, subtotal
		FROM order_items WHERE order_id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Grade,
			&it.QuantityKg, &it.PricePerKg, &it.Subtotal); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, it)
	}
	return o, rows.Err()
}

func (r *OrderRepo) List(ctx context.Context, status *string, limit, offset int) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
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

	var orders []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

// UpdateStatus moves an order between delivery statuses under a row lock, and
// writes the audit entry in the same transaction.
func (r *OrderRepo) UpdateStatus(ctx context.Context, orderID uuid.UUID, fromStatus, toStatus string, entry *models.AuditEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var current string
	if err := tx.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1 FOR UPDATE`, orderID).Scan(&current); err != nil {
		return err
	}
	if current != fromStatus {
		return ErrStatusConflict
	}

	if _, err := tx.Exec(ctx, `UPDATE orders SET status = $1, updated_at = now() WHERE id = $2`, toStatus, orderID); err != nil {
		return err
	}

	if err := insertAudit(ctx, tx, entry); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
