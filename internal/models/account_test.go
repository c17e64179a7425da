package models

import "testing"

func TestIsActionAllowed(t *testing.T) {
	tests := []struct {
		status   string
		action   string
		expected bool
	}{
		// Happy path
		{AccountStatusPending, ActionApprove, true},
		{AccountStatusPending, ActionReject, true},
		{AccountStatusActive, ActionSuspend, true},
		{AccountStatusActive, ActionBan, true},
		{AccountStatusSuspended, ActionBan, true},
		{AccountStatusSuspended, ActionReactivate, true},
		{AccountStatusBanned, ActionReactivate, true},

		// Everything else is illegal
		{AccountStatusPending, ActionSuspend, false},
		{AccountStatusPending, ActionBan, false},
		{AccountStatusPending, ActionReactivate, false},
		{AccountStatusActive, ActionApprove, false},
		{AccountStatusActive, ActionReject, false},
		{AccountStatusActive, ActionReactivate, false},
		{AccountStatusSuspended, ActionApprove, false},
		{AccountStatusSuspended, ActionReject, false},
		{AccountStatusSuspended, ActionSuspend, false},
		{AccountStatusBanned, ActionApprove, false},
		{AccountStatusBanned, ActionReject, false},
		{AccountStatusBanned, ActionSuspend, false},
		{AccountStatusBanned, ActionBan, false},
		{"nonexistent", ActionApprove, false},
		{AccountStatusActive, "nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.status+"/"+tt.action, func(t *testing.T) {
			result := IsActionAllowed(tt.status, tt.action)
			if result != tt.expected {
				t.Errorf("IsActionAllowed(%q, %q) = %v, want %v", tt.status, tt.action, result, tt.expected)
			}
		})
	}
}

func TestAllStatusesHaveActionEntry(t *testing.T) {
	allStatuses := []string{
		AccountStatusPending, AccountStatusActive, AccountStatusSuspended, AccountStatusBanned,
	}

	for _, status := range allStatuses {
		if _, ok := ValidAccountActions[status]; !ok {
			t.Errorf("status %q missing from ValidAccountActions map", status)
		}
	}
}

func TestNextStatus(t *testing.T) {
	tests := []struct {
		status string
		action string
		next   string
		ok     bool
	}{
		{AccountStatusPending, ActionApprove, AccountStatusActive, true},
		// reject leaves the account status alone
		{AccountStatusPending, ActionReject, AccountStatusPending, true},
		{AccountStatusActive, ActionSuspend, AccountStatusSuspended, true},
		{AccountStatusActive, ActionBan, AccountStatusBanned, true},
		{AccountStatusSuspended, ActionBan, AccountStatusBanned, true},
		{AccountStatusSuspended, ActionReactivate, AccountStatusActive, true},
		{AccountStatusBanned, ActionReactivate, AccountStatusActive, true},

		{AccountStatusBanned, ActionApprove, "", false},
		{AccountStatusActive, ActionApprove, "", false},
		{AccountStatusPending, ActionBan, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.status+"/"+tt.action, func(t *testing.T) {
			next, ok := NextStatus(tt.status, tt.action)
			if ok != tt.ok || next != tt.next {
				t.Errorf("NextStatus(%q, %q) = (%q, %v), want (%q, %v)", tt.status, tt.action, next, ok, tt.next, tt.ok)
			}
		})
	}
}

func TestUnifiedStatus(t *testing.T) {
	pendingApp := &AgentApplication{ApprovalStatus: ApprovalStatusPending}
	approvedApp := &AgentApplication{ApprovalStatus: ApprovalStatusApproved}

	tests := []struct {
		name          string
		accountStatus string
		app           *AgentApplication
		expected      string
	}{
		{"pending application wins over active account", AccountStatusActive, pendingApp, ApprovalStatusPending},
		{"pending application wins over banned account", AccountStatusBanned, pendingApp, ApprovalStatusPending},
		{"active account reads as approved", AccountStatusActive, nil, ApprovalStatusApproved},
		{"active account with approved application reads as approved", AccountStatusActive, approvedApp, ApprovalStatusApproved},
		{"suspended passes through", AccountStatusSuspended, approvedApp, AccountStatusSuspended},
		{"banned passes through", AccountStatusBanned, nil, AccountStatusBanned},
		{"pending account without application passes through", AccountStatusPending, nil, AccountStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnifiedStatus(tt.accountStatus, tt.app); got != tt.expected {
				t.Errorf("UnifiedStatus(%q, app) = %q, want %q", tt.accountStatus, got, tt.expected)
			}
		})
	}
}

func TestTerminalOrderStatusesHaveNoTransitions(t *testing.T) {
	terminal := []string{OrderStatusDelivered, OrderStatusCancelled}
	for _, status := range terminal {
		transitions := ValidOrderTransitions[status]
		if len(transitions) != 0 {
			t.Errorf("terminal status %q should have no transitions, got %v", status, transitions)
		}
	}
}

func TestIsValidOrderTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		{OrderStatusPending, OrderStatusPaid, true},
		{OrderStatusPaid, OrderStatusProcessing, true},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusPending, OrderStatusShipped, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			if got := IsValidOrderTransition(tt.from, tt.to); got != tt.expected {
				t.Errorf("IsValidOrderTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.expected)
			}
		})
	}
}
