package models

import (
	"time"

	"github.com/google/uuid"
)

// Account roles
const (
	RoleTrader     = "TRADER"
	RoleAgent      = "AGENT"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleBuyer      = "BUYER"
)

// Account statuses
const (
	AccountStatusPending   = "PENDING"
	AccountStatusActive    = "ACTIVE"
	AccountStatusSuspended = "SUSPENDED"
	AccountStatusBanned    = "BANNED"
)

// Lifecycle actions
const (
	ActionApprove    = "approve"
	ActionReject     = "reject"
	ActionSuspend    = "suspend"
	ActionBan        = "ban"
	ActionReactivate = "reactivate"
)

var AllActions = []string{ActionApprove, ActionReject, ActionSuspend, ActionBan, ActionReactivate}

func IsValidAction(a string) bool {
	for _, action := range AllActions {
		if action == a {
			return true
		}
	}
	return false
}

// Valid lifecycle actions per account status: status -> []action.
// approve/reject operate on the agent application while the account is PENDING;
// suspend/ban/reactivate operate on the account directly.
var ValidAccountActions = map[string][]string{
	AccountStatusPending:   {ActionApprove, ActionReject},
	AccountStatusActive:    {ActionSuspend, ActionBan},
	AccountStatusSuspended: {ActionBan, ActionReactivate},
	AccountStatusBanned:    {ActionReactivate},
}

func IsActionAllowed(status, action string) bool {
	allowed, ok := ValidAccountActions[status]
	if !ok {
		return false
	}
	for _, a := range allowed {
		if a == action {
			return true
		}
	}
	return false
}

// AllowedActions returns the legal actions from a status, nil for unknown statuses.
func AllowedActions(status string) []string {
	return ValidAccountActions[status]
}

// NextStatus returns the account status the action leads to. reject keeps the
// account status unchanged (only the application flips to REJECTED), so it maps
// the status to itself.
func NextStatus(status, action string) (string, bool) {
	if !IsActionAllowed(status, action) {
		return "", false
	}
	switch action {
	case ActionApprove:
		return AccountStatusActive, true
	case ActionReject:
		return status, true
	case ActionSuspend:
		return AccountStatusSuspended, true
	case ActionBan:
		return AccountStatusBanned, true
	case ActionReactivate:
		return AccountStatusActive, true
	}
	return "", false
}

// ReasonRequiredActions are the actions that must carry a non-empty reason.
var ReasonRequiredActions = map[string]bool{
	ActionReject:  true,
	ActionSuspend: true,
	ActionBan:     true,
}

// DefaultReactivateNote is recorded when a reactivation carries no reason.
const DefaultReactivateNote = "Reactivated by admin"

type Account struct {
	ID          uuid.UUID  `json:"id"`
	Role        string     `json:"role"`
	FullName    string     `json:"full_name"`
	Email       *string    `json:"email,omitempty"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

// AdminAccount adds the credential hash, never serialized.
type AdminAccount struct {
	Account
	PasswordHash string `json:"-"`
}

// UnifiedStatus projects an account and its optional agent application into the
// single status the dashboard filters on. First match wins: a pending
// application shadows everything, an active account reads as APPROVED,
// otherwise the account status passes through verbatim. Display only — the
// stored statuses stay authoritative for transitions.
func UnifiedStatus(accountStatus string, app *AgentApplication) string {
	if app != nil && app.ApprovalStatus == ApprovalStatusPending {
		return ApprovalStatusPending
	}
	if accountStatus == AccountStatusActive {
		return ApprovalStatusApproved
	}
	return accountStatus
}
