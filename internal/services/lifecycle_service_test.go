package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/takeam/admin-backend/internal/events"
	"github.com/takeam/admin-backend/internal/models"
	"github.com/takeam/admin-backend/internal/repositories"
	"go.uber.org/zap"
)

type fakeStore struct {
	accounts     map[uuid.UUID]*models.Account
	applications map[uuid.UUID]*models.AgentApplication

	accountWriteErr     error
	applicationWriteErr error

	auditEntries []models.AuditEntry
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts:     make(map[uuid.UUID]*models.Account),
		applications: make(map[uuid.UUID]*models.AgentApplication),
	}
}

func (f *fakeStore) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *a
	return &cp, nil
}

func (f *fakeStore) GetApplication(ctx context.Context, id uuid.UUID) (*models.AgentApplication, error) {
	app, ok := f.applications[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *app
	return &cp, nil
}

func (f *fakeStore) UpdateAccountStatus(ctx context.Context, accountID uuid.UUID, fromStatus, toStatus string, entry *models.AuditEntry) error {
	if f.accountWriteErr != nil {
		return f.accountWriteErr
	}
	a, ok := f.accounts[accountID]
	if !ok {
		return pgx.ErrNoRows
	}
	if a.Status != fromStatus {
		return repositories.ErrStatusConflict
	}
	a.Status = toStatus
	f.recordAudit(entry)
	return nil
}

func (f *fakeStore) DecideApplication(ctx context.Context, applicationID uuid.UUID, decision repositories.ApplicationDecision, entry *models.AuditEntry) error {
	if f.applicationWriteErr != nil {
		return f.applicationWriteErr
	}
	app, ok := f.applications[applicationID]
	if !ok {
		return pgx.ErrNoRows
	}
	if app.ApprovalStatus != models.ApprovalStatusPending {
		return repositories.ErrStatusConflict
	}
	if decision.Approved {
		app.ApprovalStatus = models.ApprovalStatusApproved
		f.accounts[app.AccountID].Status = models.AccountStatusActive
	} else {
		app.ApprovalStatus = models.ApprovalStatusRejected
		app.RejectionReason = decision.RejectionReason
	}
	f.recordAudit(entry)
	return nil
}

func (f *fakeStore) recordAudit(entry *models.AuditEntry) {
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()
	f.auditEntries = append(f.auditEntries, *entry)
}

type nopPublisher struct{}

func (nopPublisher) Publish(ctx context.Context, stream string, event events.Event) error {
	return nil
}

func newTestService(store *fakeStore) *LifecycleService {
	return NewLifecycleService(store, nopPublisher{}, time.Second, zap.NewNop())
}

func admin() ActorContext {
	return ActorContext{AdminID: uuid.New(), Email: "admin@takeam.ng", Role: models.RoleAdmin}
}

func seedAccount(store *fakeStore, status string) uuid.UUID {
	id := uuid.New()
	store.accounts[id] = &models.Account{ID: id, Role: models.RoleTrader, FullName: "Ada Obi", Status: status}
	return id
}

func seedAgent(store *fakeStore, accountStatus, approvalStatus string) (accountID, applicationID uuid.UUID) {
	accountID = uuid.New()
	applicationID = uuid.New()
	store.accounts[accountID] = &models.Account{ID: accountID, Role: models.RoleAgent, FullName: "Chike Eze", Status: accountStatus}
	store.applications[applicationID] = &models.AgentApplication{
		ID:             applicationID,
		AccountID:      accountID,
		ApprovalStatus: approvalStatus,
		IdentityType:   models.IdentityTypeNIN,
	}
	return accountID, applicationID
}

func TestApply_ApproveAgent(t *testing.T) {
	store := newFakeStore()
	accountID, applicationID := seedAgent(store, models.AccountStatusPending, models.ApprovalStatusPending)
	svc := newTestService(store)

	result, err := svc.Apply(context.Background(), admin(), ApplicationTarget(applicationID), models.ActionApprove, "", RequestMeta{})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if result.AccountStatus != models.AccountStatusActive {
		t.Errorf("account status = %s, want ACTIVE", result.AccountStatus)
	}
	if result.ApprovalStatus == nil || *result.ApprovalStatus != models.ApprovalStatusApproved {
		t.Errorf("approval status = %v, want APPROVED", result.ApprovalStatus)
	}
	if store.accounts[accountID].Status != models.AccountStatusActive {
		t.Errorf("stored account status = %s, want ACTIVE", store.accounts[accountID].Status)
	}
	if store.applications[applicationID].ApprovalStatus != models.ApprovalStatusApproved {
		t.Errorf("stored approval status = %s, want APPROVED", store.applications[applicationID].ApprovalStatus)
	}
	if len(store.auditEntries) != 1 {
		t.Fatalf("audit entries = %d, want 1", len(store.auditEntries))
	}
	entry := store.auditEntries[0]
	if entry.Action != models.AuditActionApproveAgent {
		t.Errorf("audit action = %s, want APPROVE_AGENT", entry.Action)
	}
	if entry.TargetID != applicationID {
		t.Errorf("audit target = %s, want application id %s", entry.TargetID, applicationID)
	}
	if result.AuditEntryID != entry.ID {
		t.Errorf("result audit id = %s, want %s", result.AuditEntryID, entry.ID)
	}
}

func TestApply_ReasonRequired(t *testing.T) {
	for _, action := range []string{models.ActionReject, models.ActionSuspend, models.ActionBan} {
		for _, reason := range []string{"", "   ", "\t\n"} {
			t.Run(action+"/"+reason, func(t *testing.T) {
				store := newFakeStore()
				accountID := seedAccount(store, models.AccountStatusActive)
				_, applicationID := seedAgent(store, models.AccountStatusPending, models.ApprovalStatusPending)
				svc := newTestService(store)

				target := AccountTarget(accountID)
				if action == models.ActionReject {
					target = ApplicationTarget(applicationID)
				}

				_, err := svc.Apply(context.Background(), admin(), target, action, reason, RequestMeta{})
				if !errors.Is(err, models.ErrReasonRequired) {
					t.Fatalf("err = %v, want ErrReasonRequired", err)
				}
				if len(store.auditEntries) != 0 {
					t.Errorf("audit entries = %d, want 0", len(store.auditEntries))
				}
				if store.accounts[accountID].Status != models.AccountStatusActive {
					t.Errorf("account status mutated to %s", store.accounts[accountID].Status)
				}
			})
		}
	}
}

func TestApply_Suspend(t *testing.T) {
	store := newFakeStore()
	accountID := seedAccount(store, models.AccountStatusActive)
	svc := newTestService(store)

	result, err := svc.Apply(context.Background(), admin(), AccountTarget(accountID), models.ActionSuspend, "Abusive listings", RequestMeta{})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if result.AccountStatus != models.AccountStatusSuspended {
		t.Errorf("status = %s, want SUSPENDED", result.AccountStatus)
	}
	if store.auditEntries[0].Reason != "Abusive listings" {
		t.Errorf("audit reason = %q", store.auditEntries[0].Reason)
	}
}

func TestApply_ReactivateDefaultsReason(t *testing.T) {
	store := newFakeStore()
	accountID := seedAccount(store, models.AccountStatusSuspended)
	svc := newTestService(store)

	result, err := svc.Apply(context.Background(), admin(), AccountTarget(accountID), models.ActionReactivate, "", RequestMeta{})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if result.AccountStatus != models.AccountStatusActive {
		t.Errorf("status = %s, want ACTIVE", result.AccountStatus)
	}
	if got := store.auditEntries[0].Reason; got != models.DefaultReactivateNote {
		t.Errorf("audit reason = %q, want %q", got, models.DefaultReactivateNote)
	}
}

func TestApply_InvalidTransition(t *testing.T) {
	tests := []struct {
		name   string
		status string
		action string
	}{
		{"approve from banned", models.AccountStatusBanned, models.ActionApprove},
		{"suspend from pending", models.AccountStatusPending, models.ActionSuspend},
		{"reactivate from active", models.AccountStatusActive, models.ActionReactivate},
		{"ban from banned", models.AccountStatusBanned, models.ActionBan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			accountID := seedAccount(store, tt.status)
			svc := newTestService(store)

			target := AccountTarget(accountID)
			if tt.action == models.ActionApprove {
				// approve is an application action; aim it at an application
				// owned by an account in the wrong state
				var applicationID uuid.UUID
				_, applicationID = seedAgent(store, tt.status, models.ApprovalStatusPending)
				target = ApplicationTarget(applicationID)
			}

			_, err := svc.Apply(context.Background(), admin(), target, tt.action, "reason", RequestMeta{})
			if !errors.Is(err, models.ErrInvalidTransition) {
				t.Fatalf("err = %v, want ErrInvalidTransition", err)
			}

			var te *models.TransitionError
			if !errors.As(err, &te) {
				t.Fatalf("err does not carry TransitionError detail")
			}
			if te.CurrentStatus != tt.status {
				t.Errorf("current status = %s, want %s", te.CurrentStatus, tt.status)
			}
			if len(store.auditEntries) != 0 {
				t.Errorf("audit entries = %d, want 0", len(store.auditEntries))
			}
		})
	}
}

func TestApply_SecondInvocationFails(t *testing.T) {
	store := newFakeStore()
	accountID := seedAccount(store, models.AccountStatusActive)
	svc := newTestService(store)
	actor := admin()

	if _, err := svc.Apply(context.Background(), actor, AccountTarget(accountID), models.ActionSuspend, "spam", RequestMeta{}); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	_, err := svc.Apply(context.Background(), actor, AccountTarget(accountID), models.ActionSuspend, "spam", RequestMeta{})
	if !errors.Is(err, models.ErrInvalidTransition) {
		t.Fatalf("second Apply err = %v, want ErrInvalidTransition", err)
	}
	if len(store.auditEntries) != 1 {
		t.Errorf("audit entries = %d, want exactly 1", len(store.auditEntries))
	}
}

func TestApply_UnknownAction(t *testing.T) {
	store := newFakeStore()
	accountID := seedAccount(store, models.AccountStatusActive)
	svc := newTestService(store)

	_, err := svc.Apply(context.Background(), admin(), AccountTarget(accountID), "obliterate", "reason", RequestMeta{})
	if !errors.Is(err, models.ErrUnknownAction) {
		t.Fatalf("err = %v, want ErrUnknownAction", err)
	}
}

func TestApply_Unauthorized(t *testing.T) {
	store := newFakeStore()
	accountID := seedAccount(store, models.AccountStatusActive)
	svc := newTestService(store)

	actor := ActorContext{AdminID: uuid.New(), Email: "agent@takeam.ng", Role: models.RoleAgent}
	_, err := svc.Apply(context.Background(), actor, AccountTarget(accountID), models.ActionSuspend, "reason", RequestMeta{})
	if !errors.Is(err, models.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if len(store.auditEntries) != 0 {
		t.Errorf("audit entries = %d, want 0", len(store.auditEntries))
	}
}

func TestApply_NotFound(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.Apply(context.Background(), admin(), AccountTarget(uuid.New()), models.ActionSuspend, "reason", RequestMeta{})
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestApply_AmbiguousTarget(t *testing.T) {
	store := newFakeStore()
	accountID, applicationID := seedAgent(store, models.AccountStatusPending, models.ApprovalStatusPending)
	svc := newTestService(store)

	// approve wants an ApplicationTarget
	_, err := svc.Apply(context.Background(), admin(), AccountTarget(accountID), models.ActionApprove, "", RequestMeta{})
	if !errors.Is(err, models.ErrAmbiguousTarget) {
		t.Fatalf("err = %v, want ErrAmbiguousTarget for account target on approve", err)
	}

	// suspend wants an AccountTarget
	_, err = svc.Apply(context.Background(), admin(), ApplicationTarget(applicationID), models.ActionSuspend, "reason", RequestMeta{})
	if !errors.Is(err, models.ErrAmbiguousTarget) {
		t.Fatalf("err = %v, want ErrAmbiguousTarget for application target on suspend", err)
	}

	// a correctly tagged target whose id actually names the other sub-resource
	_, err = svc.Apply(context.Background(), admin(), ApplicationTarget(accountID), models.ActionApprove, "", RequestMeta{})
	if !errors.Is(err, models.ErrAmbiguousTarget) {
		t.Fatalf("err = %v, want ErrAmbiguousTarget for account id tagged as application", err)
	}
}

func TestApply_PersistenceFailureLeavesNoTrace(t *testing.T) {
	store := newFakeStore()
	accountID := seedAccount(store, models.AccountStatusActive)
	store.accountWriteErr = errors.New("connection reset")
	svc := newTestService(store)

	_, err := svc.Apply(context.Background(), admin(), AccountTarget(accountID), models.ActionBan, "fraud", RequestMeta{})
	if !errors.Is(err, models.ErrPersistenceFailure) {
		t.Fatalf("err = %v, want ErrPersistenceFailure", err)
	}
	if store.accounts[accountID].Status != models.AccountStatusActive {
		t.Errorf("account status = %s, want unchanged ACTIVE", store.accounts[accountID].Status)
	}
	if len(store.auditEntries) != 0 {
		t.Errorf("audit entries = %d, want 0", len(store.auditEntries))
	}
}

func TestApply_RejectAgent(t *testing.T) {
	store := newFakeStore()
	accountID, applicationID := seedAgent(store, models.AccountStatusPending, models.ApprovalStatusPending)
	svc := newTestService(store)

	result, err := svc.Apply(context.Background(), admin(), ApplicationTarget(applicationID), models.ActionReject, "Identity document unreadable", RequestMeta{})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	// reject leaves the account status untouched
	if store.accounts[accountID].Status != models.AccountStatusPending {
		t.Errorf("account status = %s, want PENDING", store.accounts[accountID].Status)
	}
	if store.applications[applicationID].ApprovalStatus != models.ApprovalStatusRejected {
		t.Errorf("approval status = %s, want REJECTED", store.applications[applicationID].ApprovalStatus)
	}
	if result.ApprovalStatus == nil || *result.ApprovalStatus != models.ApprovalStatusRejected {
		t.Errorf("result approval status = %v, want REJECTED", result.ApprovalStatus)
	}
	if got := store.auditEntries[0].Action; got != models.AuditActionRejectAgent {
		t.Errorf("audit action = %s, want REJECT_AGENT", got)
	}
	if got := store.applications[applicationID].RejectionReason; got == nil || *got != "Identity document unreadable" {
		t.Errorf("rejection reason = %v", got)
	}
}

func TestApply_ApproveAlreadyDecidedApplication(t *testing.T) {
	store := newFakeStore()
	_, applicationID := seedAgent(store, models.AccountStatusActive, models.ApprovalStatusApproved)
	svc := newTestService(store)

	_, err := svc.Apply(context.Background(), admin(), ApplicationTarget(applicationID), models.ActionApprove, "", RequestMeta{})
	if !errors.Is(err, models.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
	if len(store.auditEntries) != 0 {
		t.Errorf("audit entries = %d, want 0", len(store.auditEntries))
	}
}
