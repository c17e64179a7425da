package rbac

import (
	"testing"

	"github.com/takeam/admin-backend/internal/models"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role       string
		permission string
		expected   bool
	}{
		{models.RoleAdmin, PermApproveAgent, true},
		{models.RoleAdmin, PermBanAccount, true},
		{models.RoleAdmin, PermCreateAdmin, false},
		{models.RoleSuperAdmin, PermCreateAdmin, true},
		{models.RoleSuperAdmin, PermApproveAgent, true},
		{models.RoleTrader, PermApproveAgent, false},
		{models.RoleAgent, PermSuspendAccount, false},
		{"nonexistent", PermApproveAgent, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.permission, func(t *testing.T) {
			if got := HasPermission(tt.role, tt.permission); got != tt.expected {
				t.Errorf("HasPermission(%q, %q) = %v, want %v", tt.role, tt.permission, got, tt.expected)
			}
		})
	}
}

func TestEveryLifecycleActionHasPermission(t *testing.T) {
	for _, action := range models.AllActions {
		if _, ok := PermissionForAction[action]; !ok {
			t.Errorf("lifecycle action %q missing from PermissionForAction", action)
		}
	}
}
