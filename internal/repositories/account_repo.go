package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/takeam/admin-backend/internal/models"
)

type AccountRepo struct {
	pool *pgxpool.Pool
}

func NewAccountRepo(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

const accountColumns = `id, role, full_name, email, phone_number, status, created_at, last_login`

func scanAccount(row interface{ Scan(...any) error }) (*models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.Role, &a.FullName, &a.Email, &a.PhoneNumber, &a.Status, &a.CreatedAt, &a.LastLogin)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

func (r *AccountRepo) GetAdminByEmail(ctx context.Context, email string) (*models.AdminAccount, error) {
	var a models.AdminAccount
	err := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+`, password_hash
		FROM accounts WHERE email = $1 AND role IN ($2, $3)
	`, email, models.RoleAdmin, models.RoleSuperAdmin).Scan(
		&a.ID, &a.Role, &a.FullName, &a.Email, &a.PhoneNumber, &a.Status, &a.CreatedAt, &a.LastLogin, &a.PasswordHash,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE accounts SET last_login = now() WHERE id = $1`, id)
	return err
}

// CreateAdmin inserts an ADMIN account. status starts ACTIVE: admins are
// created directly, they do not go through the approval queue.
func (r *AccountRepo) CreateAdmin(ctx context.Context, a *models.AdminAccount) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO accounts (role, full_name, email, phone_number, status, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, a.Role, a.FullName, a.Email, a.PhoneNumber, models.AccountStatusActive, a.PasswordHash).Scan(&a.ID, &a.CreatedAt)
}

func (r *AccountRepo) ListAdmins(ctx context.Context) ([]models.Account, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+accountColumns+` FROM accounts
		WHERE role IN ($1, $2) ORDER BY created_at DESC
	`, models.RoleAdmin, models.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, *a)
	}
	return admins, rows.Err()
}

type AccountFilter struct {
	Role   *string
	Status *string
	Search *string // matches full name, email or phone
	Limit  int
	Offset int
}

func (r *AccountRepo) List(ctx context.Context, f AccountFilter) ([]models.Account, int, error) {
	where := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if f.Role != nil {
		where = append(where, fmt.Sprintf("role = $%d", argIdx))
		args = append(args, *f.Role)
		argIdx++
	}
	if f.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *f.Status)
		argIdx++
	}
	if f.Search != nil && *f.Search != "" {
		where = append(where, fmt.Sprintf("(full_name ILIKE $%d OR email ILIKE $%d OR phone_number ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+*f.Search+"%")
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM accounts WHERE `+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM accounts WHERE %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d
	`, accountColumns, whereClause, argIdx, argIdx+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, 0, err
		}
		accounts = append(accounts, *a)
	}
	return accounts, total, rows.Err()
}
