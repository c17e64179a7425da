package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment statuses
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
	PaymentStatusFailed  = "FAILED"
)

// Payment is the payout owed to a trader for a graded drop-off. Amounts are
// stored as numeric strings to avoid float drift on money fields.
type Payment struct {
	ID                 uuid.UUID  `json:"id"`
	TraderID           uuid.UUID  `json:"trader_id"`
	TraderName         string     `json:"trader_name"`
	TraderPhone        string     `json:"trader_phone"`
	TraderBankAccount  *string    `json:"trader_bank_account,omitempty"`
	TraderBankName     *string    `json:"trader_bank_name,omitempty"`
	AgentID            uuid.UUID  `json:"agent_id"`
	AgentName          string     `json:"agent_name"`
	GradeAWeight       string     `json:"grade_a_weight"`
	GradeBWeight       string     `json:"grade_b_weight"`
	GradeCWeight       string     `json:"grade_c_weight"`
	GradeDWeight       string     `json:"grade_d_weight"`
	GradeAAmount       string     `json:"grade_a_amount"`
	GradeBAmount       string     `json:"grade_b_amount"`
	GradeCAmount       string     `json:"grade_c_amount"`
	GradeDAmount       string     `json:"grade_d_amount"`
	TotalWeight        string     `json:"total_weight"`
	TotalAmount        string     `json:"total_amount"`
	BaseReferencePrice string     `json:"base_reference_price"`
	AgentNotes         *string    `json:"agent_notes,omitempty"`
	PaymentStatus      string     `json:"payment_status"`
	GradedAt           time.Time  `json:"graded_at"`
	PaidAt             *time.Time `json:"paid_at,omitempty"`
}
