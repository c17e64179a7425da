package models

import (
	"time"

	"github.com/google/uuid"
)

// Agent application approval statuses
const (
	ApprovalStatusPending  = "PENDING"
	ApprovalStatusApproved = "APPROVED"
	ApprovalStatusRejected = "REJECTED"
)

// Identity proof types
const (
	IdentityTypeNIN      = "NIN"
	IdentityTypeBVN      = "BVN"
	IdentityTypePassport = "PASSPORT"
)

var AllIdentityTypes = []string{IdentityTypeNIN, IdentityTypeBVN, IdentityTypePassport}

func IsValidIdentityType(t string) bool {
	for _, it := range AllIdentityTypes {
		if it == t {
			return true
		}
	}
	return false
}

// AgentApplication is the approval sub-record of an AGENT account. It carries
// its own id, distinct from the account id: approve/reject address the
// application, suspend/ban/reactivate address the account.
type AgentApplication struct {
	ID               uuid.UUID  `json:"id"`
	AccountID        uuid.UUID  `json:"account_id"`
	AssignedMarketID string     `json:"assigned_market_id"`
	IdentityType     string     `json:"identity_type"` // NIN / BVN / PASSPORT
	IdentityNumber   string     `json:"identity_number"`
	IdentityDocument *string    `json:"identity_document,omitempty"`
	ApprovalStatus   string     `json:"approval_status"`
	RejectionReason  *string    `json:"rejection_reason,omitempty"`
	ReviewedByID     *uuid.UUID `json:"reviewed_by_id,omitempty"`
	ReviewedByEmail  *string    `json:"reviewed_by_email,omitempty"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// AgentProfile joins the application with its account and derived fields for
// the agent list/detail views, so a single query serves the dashboard.
type AgentProfile struct {
	Account           Account          `json:"user"`
	Application       AgentApplication `json:"application"`
	TradersRegistered int              `json:"traders_registered"`
	UnifiedStatus     string           `json:"unified_status"`
}
