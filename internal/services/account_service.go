package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/takeam/admin-backend/internal/auth"
	"github.com/takeam/admin-backend/internal/models"
	"github.com/takeam/admin-backend/internal/rbac"
	"github.com/takeam/admin-backend/internal/repositories"
	"go.uber.org/zap"
)

// AccountView pairs an account with its projected unified status for list and
// detail responses.
type AccountView struct {
	models.Account
	UnifiedStatus string `json:"unified_status"`
}

type AccountService struct {
	accountRepo *repositories.AccountRepo
	agentRepo   *repositories.AgentRepo
	auditRepo   *repositories.AuditRepo
	log         *zap.Logger
}

func NewAccountService(accountRepo *repositories.AccountRepo, agentRepo *repositories.AgentRepo, auditRepo *repositories.AuditRepo, log *zap.Logger) *AccountService {
	return &AccountService{accountRepo: accountRepo, agentRepo: agentRepo, auditRepo: auditRepo, log: log}
}

func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*AccountView, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return s.project(ctx, account), nil
}

func (s *AccountService) ListAccounts(ctx context.Context, f repositories.AccountFilter) ([]AccountView, int, error) {
	accounts, total, err := s.accountRepo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	views := make([]AccountView, 0, len(accounts))
	for i := range accounts {
		views = append(views, *s.project(ctx, &accounts[i]))
	}
	return views, total, nil
}

// project computes the unified status fresh on every read. Agents fold their
// application into the projection; other roles project from the account alone.
func (s *AccountService) project(ctx context.Context, account *models.Account) *AccountView {
	var app *models.AgentApplication
	if account.Role == models.RoleAgent {
		found, err := s.agentRepo.GetApplicationByAccountID(ctx, account.ID)
		if err == nil {
			app = found
		} else if !errors.Is(err, pgx.ErrNoRows) {
			s.log.Warn("application lookup failed during projection",
				zap.String("account_id", account.ID.String()), zap.Error(err))
		}
	}
	return &AccountView{Account: *account, UnifiedStatus: models.UnifiedStatus(account.Status, app)}
}

// CreateAdmin provisions a new ADMIN account. SUPER_ADMIN only; the creation
// itself is audited.
func (s *AccountService) CreateAdmin(ctx context.Context, actor ActorContext, email, password, fullName string) (*models.Account, error) {
	if !rbac.HasPermission(actor.Role, rbac.PermCreateAdmin) {
		return nil, models.ErrUnauthorized
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.AdminAccount{
		Account: models.Account{
			Role:     models.RoleAdmin,
			FullName: fullName,
			Email:    &email,
			Status:   models.AccountStatusActive,
		},
		PasswordHash: hash,
	}
	if err := s.accountRepo.CreateAdmin(ctx, admin); err != nil {
		return nil, err
	}

	if err := s.auditRepo.Log(ctx, &models.AuditEntry{
		AdminID:    actor.AdminID,
		AdminEmail: actor.Email,
		Action:     models.AuditActionCreateAdmin,
		TargetType: models.TargetTypeAccount,
		TargetID:   admin.ID,
		Reason:     "Admin account created",
	}); err != nil {
		s.log.Error("audit write for admin creation failed", zap.Error(err))
	}

	return &admin.Account, nil
}

func (s *AccountService) ListAdmins(ctx context.Context) ([]models.Account, error) {
	return s.accountRepo.ListAdmins(ctx)
}
