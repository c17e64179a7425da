package rbac

import "github.com/takeam/admin-backend/internal/models"

// Permission constants
const (
	PermApproveAgent    = "approve_agent"
	PermRejectAgent     = "reject_agent"
	PermSuspendAccount  = "suspend_account"
	PermBanAccount      = "ban_account"
	PermReactivate      = "reactivate_account"
	PermManageProducts  = "manage_products"
	PermManageOrders    = "manage_orders"
	PermMarkPaymentPaid = "mark_payment_paid"
	PermViewAuditLog    = "view_audit_log"
	PermCreateAdmin     = "create_admin"
)

// RolePermissions defines what each admin role can do.
var RolePermissions = map[string][]string{
	models.RoleAdmin: {
		PermApproveAgent, PermRejectAgent, PermSuspendAccount, PermBanAccount,
		PermReactivate, PermManageProducts, PermManageOrders, PermMarkPaymentPaid,
		PermViewAuditLog,
		// ADMIN CANNOT: PermCreateAdmin
	},
	models.RoleSuperAdmin: {
		PermApproveAgent, PermRejectAgent, PermSuspendAccount, PermBanAccount,
		PermReactivate, PermManageProducts, PermManageOrders, PermMarkPaymentPaid,
		PermViewAuditLog, PermCreateAdmin,
	},
}

// PermissionForAction maps a lifecycle action keyword to the permission it needs.
var PermissionForAction = map[string]string{
	models.ActionApprove:    PermApproveAgent,
	models.ActionReject:     PermRejectAgent,
	models.ActionSuspend:    PermSuspendAccount,
	models.ActionBan:        PermBanAccount,
	models.ActionReactivate: PermReactivate,
}

// HasPermission checks if a role has a specific permission.
func HasPermission(role, permission string) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}
