package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/takeam/admin-backend/internal/events"
	"github.com/takeam/admin-backend/internal/models"
	"github.com/takeam/admin-backend/internal/rbac"
	"github.com/takeam/admin-backend/internal/repositories"
	"go.uber.org/zap"
)

// Target kinds
const (
	TargetAccount     = "account"
	TargetApplication = "application"
)

// Target tags an identifier with the sub-resource it names. Account and
// application ids look identical on the wire; tagging them once at the HTTP
// boundary keeps the executor from ever guessing which table an id belongs to.
type Target struct {
	Kind string
	ID   uuid.UUID
}

func AccountTarget(id uuid.UUID) Target     { return Target{Kind: TargetAccount, ID: id} }
func ApplicationTarget(id uuid.UUID) Target { return Target{Kind: TargetApplication, ID: id} }

// targetKindForAction: approve/reject address the agent application,
// suspend/ban/reactivate address the account.
var targetKindForAction = map[string]string{
	models.ActionApprove:    TargetApplication,
	models.ActionReject:     TargetApplication,
	models.ActionSuspend:    TargetAccount,
	models.ActionBan:        TargetAccount,
	models.ActionReactivate: TargetAccount,
}

// ActorContext identifies the admin performing a transition. It is passed
// explicitly into every call; the executor reads no ambient session state.
type ActorContext struct {
	AdminID uuid.UUID
	Email   string
	Role    string
}

type TransitionResult struct {
	TargetType     string    `json:"target_type"`
	TargetID       uuid.UUID `json:"target_id"`
	AccountStatus  string    `json:"account_status"`
	ApprovalStatus *string   `json:"approval_status,omitempty"`
	AuditEntryID   uuid.UUID `json:"audit_entry_id"`
	TransitionedAt time.Time `json:"transitioned_at"`
}

// LifecycleStore is the storage collaborator of the executor. Write methods
// commit the status mutation and the audit entry atomically; on error nothing
// is visible.
type LifecycleStore interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetApplication(ctx context.Context, id uuid.UUID) (*models.AgentApplication, error)
	UpdateAccountStatus(ctx context.Context, accountID uuid.UUID, fromStatus, toStatus string, entry *models.AuditEntry) error
	DecideApplication(ctx context.Context, applicationID uuid.UUID, decision repositories.ApplicationDecision, entry *models.AuditEntry) error
}

// LifecycleService owns every status mutation on accounts and agent
// applications. All validation happens before any write; the paired
// status+audit write is atomic; concurrent calls against the same target
// serialize on a per-target lock on top of the store's row lock.
type LifecycleService struct {
	store          LifecycleStore
	publisher      events.Publisher
	storageTimeout time.Duration
	log            *zap.Logger

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewLifecycleService(store LifecycleStore, publisher events.Publisher, storageTimeout time.Duration, log *zap.Logger) *LifecycleService {
	return &LifecycleService{
		store:          store,
		publisher:      publisher,
		storageTimeout: storageTimeout,
		log:            log,
		locks:          make(map[uuid.UUID]*sync.Mutex),
	}
}

// targetLock returns the mutex serializing transitions against one target id.
// Entries are never reaped: the map grows with the number of distinct targets
// admins have acted on since startup, one bare mutex each. Transition volume
// on an admin dashboard keeps that far below anything worth a reaper.
func (s *LifecycleService) targetLock(id uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// RequestMeta carries network-origin metadata onto the audit entry.
type RequestMeta struct {
	IPAddress *string
	UserAgent *string
	Notes     *string
}

// Apply validates and executes one lifecycle transition.
//
// Validation order: action recognized, actor privileged, reason present where
// mandated, target resolves, transition legal. Every check precedes the write,
// so a failed call leaves no trace. On success exactly one audit entry exists
// for the mutation, committed with it.
func (s *LifecycleService) Apply(ctx context.Context, actor ActorContext, target Target, action, reason string, meta RequestMeta) (*TransitionResult, error) {
	if !models.IsValidAction(action) {
		return nil, models.ErrUnknownAction
	}

	if !rbac.HasPermission(actor.Role, rbac.PermissionForAction[action]) {
		return nil, models.ErrUnauthorized
	}

	reason = strings.TrimSpace(reason)
	if models.ReasonRequiredActions[action] && reason == "" {
		return nil, models.ErrReasonRequired
	}

	if target.Kind != targetKindForAction[action] {
		return nil, models.ErrAmbiguousTarget
	}

	lock := s.targetLock(target.ID)
	lock.Lock()
	defer lock.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()

	var result *TransitionResult
	var err error
	switch target.Kind {
	case TargetApplication:
		result, err = s.applyToApplication(ctx, actor, target.ID, action, reason, meta)
	default:
		result, err = s.applyToAccount(ctx, actor, target.ID, action, reason, meta)
	}
	if err != nil {
		return nil, err
	}

	// Best-effort fan-out after commit; the transition stands even if the bus
	// is down.
	if pubErr := s.publisher.Publish(context.WithoutCancel(ctx), events.StreamAdmin, events.Event{
		Type: events.EventAccountStatusChanged,
		Payload: map[string]any{
			"target_type": result.TargetType,
			"target_id":   result.TargetID.String(),
			"action":      action,
			"new_status":  result.AccountStatus,
		},
	}); pubErr != nil {
		s.log.Warn("event publish failed", zap.Error(pubErr))
	}

	return result, nil
}

func (s *LifecycleService) applyToApplication(ctx context.Context, actor ActorContext, id uuid.UUID, action, reason string, meta RequestMeta) (*TransitionResult, error) {
	app, err := s.store.GetApplication(ctx, id)
	if err != nil {
		return nil, s.resolveMiss(ctx, err, id, TargetApplication)
	}

	if app.ApprovalStatus != models.ApprovalStatusPending {
		return nil, &models.TransitionError{CurrentStatus: app.ApprovalStatus, Action: action}
	}

	account, err := s.store.GetAccount(ctx, app.AccountID)
	if err != nil {
		return nil, s.storeErr(err)
	}
	if !models.IsActionAllowed(account.Status, action) {
		return nil, models.NewTransitionError(account.Status, action)
	}

	approved := action == models.ActionApprove
	decision := repositories.ApplicationDecision{
		Approved:      approved,
		ReviewerID:    actor.AdminID,
		ReviewerEmail: actor.Email,
	}
	if !approved {
		decision.RejectionReason = &reason
	}
	if reason == "" {
		reason = "Approved by admin"
	}

	entry := &models.AuditEntry{
		AdminID:    actor.AdminID,
		AdminEmail: actor.Email,
		Action:     models.AuditActionForLifecycle[action],
		TargetType: models.TargetTypeAgentApplication,
		TargetID:   id,
		Reason:     reason,
		Notes:      meta.Notes,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
	}

	if err := s.store.DecideApplication(ctx, id, decision, entry); err != nil {
		return nil, s.writeErr(err, app.ApprovalStatus, action)
	}

	newAccountStatus := account.Status
	newApproval := models.ApprovalStatusRejected
	if approved {
		newAccountStatus = models.AccountStatusActive
		newApproval = models.ApprovalStatusApproved
	}

	return &TransitionResult{
		TargetType:     TargetApplication,
		TargetID:       id,
		AccountStatus:  newAccountStatus,
		ApprovalStatus: &newApproval,
		AuditEntryID:   entry.ID,
		TransitionedAt: entry.CreatedAt,
	}, nil
}

func (s *LifecycleService) applyToAccount(ctx context.Context, actor ActorContext, id uuid.UUID, action, reason string, meta RequestMeta) (*TransitionResult, error) {
	account, err := s.store.GetAccount(ctx, id)
	if err != nil {
		return nil, s.resolveMiss(ctx, err, id, TargetAccount)
	}

	next, ok := models.NextStatus(account.Status, action)
	if !ok {
		return nil, models.NewTransitionError(account.Status, action)
	}

	if reason == "" {
		// Only optional-reason actions reach this point.
		reason = models.DefaultReactivateNote
	}

	entry := &models.AuditEntry{
		AdminID:    actor.AdminID,
		AdminEmail: actor.Email,
		Action:     models.AuditActionForLifecycle[action],
		TargetType: models.TargetTypeAccount,
		TargetID:   id,
		Reason:     reason,
		Notes:      meta.Notes,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
	}

	if err := s.store.UpdateAccountStatus(ctx, id, account.Status, next, entry); err != nil {
		return nil, s.writeErr(err, account.Status, action)
	}

	return &TransitionResult{
		TargetType:     TargetAccount,
		TargetID:       id,
		AccountStatus:  next,
		AuditEntryID:   entry.ID,
		TransitionedAt: entry.CreatedAt,
	}, nil
}

// resolveMiss distinguishes a genuinely unknown id from an id that names the
// other sub-resource: passing an account id where the action wants an
// application id (or vice versa) is AmbiguousTarget, not NotFound.
func (s *LifecycleService) resolveMiss(ctx context.Context, err error, id uuid.UUID, kind string) error {
	if !errors.Is(err, pgx.ErrNoRows) {
		return s.storeErr(err)
	}

	var otherErr error
	if kind == TargetApplication {
		_, otherErr = s.store.GetAccount(ctx, id)
	} else {
		_, otherErr = s.store.GetApplication(ctx, id)
	}
	if otherErr == nil {
		return models.ErrAmbiguousTarget
	}
	return models.ErrNotFound
}

func (s *LifecycleService) storeErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}
	s.log.Error("lifecycle store failure", zap.Error(err))
	return models.ErrPersistenceFailure
}

// writeErr maps a failure of the atomic write. A status conflict means the row
// moved between validation and the row lock; the transition is no longer legal
// from the state the caller saw.
func (s *LifecycleService) writeErr(err error, currentStatus, action string) error {
	if errors.Is(err, repositories.ErrStatusConflict) {
		return models.NewTransitionError(currentStatus, action)
	}
	return s.storeErr(err)
}
