package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions
const (
	AuditActionApproveAgent    = "APPROVE_AGENT"
	AuditActionRejectAgent     = "REJECT_AGENT"
	AuditActionSuspendUser     = "SUSPEND_USER"
	AuditActionBanUser         = "BAN_USER"
	AuditActionReactivateUser  = "REACTIVATE_USER"
	AuditActionCreateAdmin     = "CREATE_ADMIN"
	AuditActionMarkPaymentPaid = "MARK_PAYMENT_PAID"
	AuditActionUpdateOrder     = "UPDATE_ORDER_STATUS"
)

// Audit target types
const (
	TargetTypeAccount          = "account"
	TargetTypeAgentApplication = "agent_application"
	TargetTypePayment          = "payment"
	TargetTypeOrder            = "order"
)

// AuditActionForLifecycle maps a lifecycle action keyword to its audit action.
var AuditActionForLifecycle = map[string]string{
	ActionApprove:    AuditActionApproveAgent,
	ActionReject:     AuditActionRejectAgent,
	ActionSuspend:    AuditActionSuspendUser,
	ActionBan:        AuditActionBanUser,
	ActionReactivate: AuditActionReactivateUser,
}

// AuditEntry is the immutable record of one administrative action. Rows are
// insert-only; nothing in the codebase updates or deletes them.
type AuditEntry struct {
	ID         uuid.UUID `json:"id"`
	AdminID    uuid.UUID `json:"admin_id"`
	AdminEmail string    `json:"admin_email"`
	Action     string    `json:"action"`
	TargetType string    `json:"target_type"`
	TargetID   uuid.UUID `json:"target_id"`
	Reason     string    `json:"reason"`
	Notes      *string   `json:"notes,omitempty"`
	IPAddress  *string   `json:"ip_address,omitempty"`
	UserAgent  *string   `json:"user_agent,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
