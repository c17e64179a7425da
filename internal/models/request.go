package models

import (
	"time"

	"github.com/google/uuid"
)

// Pickup request statuses
const (
	RequestStatusPending   = "PENDING"
	RequestStatusAccepted  = "ACCEPTED"
	RequestStatusCompleted = "COMPLETED"
	RequestStatusCancelled = "CANCELLED"
)

// PickupRequest is a trader's ask for an agent to collect produce.
type PickupRequest struct {
	ID              uuid.UUID  `json:"id"`
	TraderID        uuid.UUID  `json:"trader_id"`
	TraderName      string     `json:"trader_name"`
	TraderPhone     string     `json:"trader_phone"`
	ProductType     string     `json:"product_type"`
	EstimatedWeight float64    `json:"estimated_weight"`
	Location        *string    `json:"location,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	AgentID         *uuid.UUID `json:"agent_id,omitempty"`
	AgentName       *string    `json:"agent_name,omitempty"`
	AgentPhone      *string    `json:"agent_phone,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	AcceptedAt      *time.Time `json:"accepted_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// AdminStats is the dashboard headline card payload.
type AdminStats struct {
	TotalRequests         int     `json:"total_requests"`
	PendingRequests       int     `json:"pending_requests"`
	ActiveRequests        int     `json:"active_requests"`
	CompletedRequests     int     `json:"completed_requests"`
	PendingPaymentsCount  int     `json:"pending_payments_count"`
	PendingPaymentsAmount float64 `json:"pending_payments_amount"`
}
