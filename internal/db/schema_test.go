package db

import (
	"os"
	"strings"
	"testing"

	"github.com/takeam/admin-backend/internal/models"
)

func readInitMigration(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("../../migrations/001_init.up.sql")
	if err != nil {
		t.Fatalf("read init migration: %v", err)
	}
	return string(data)
}

func tableDef(t *testing.T, sql, name string) string {
	t.Helper()
	start := strings.Index(sql, "CREATE TABLE IF NOT EXISTS "+name+" (")
	if start == -1 {
		t.Fatalf("table %s not found in init migration", name)
	}
	rest := sql[start:]
	end := strings.Index(rest, ";")
	if end == -1 {
		t.Fatalf("table %s definition is not terminated", name)
	}
	return rest[:end]
}

func TestAccountsTableAcceptsEveryRole(t *testing.T) {
	accounts := tableDef(t, readInitMigration(t), "accounts")

	roles := []string{
		models.RoleTrader, models.RoleAgent, models.RoleBuyer,
		models.RoleAdmin, models.RoleSuperAdmin,
	}
	for _, role := range roles {
		if !strings.Contains(accounts, "'"+role+"'") {
			t.Errorf("accounts.role CHECK rejects %s", role)
		}
	}
}

func TestAccountsTableAcceptsEveryStatus(t *testing.T) {
	accounts := tableDef(t, readInitMigration(t), "accounts")

	statuses := []string{
		models.AccountStatusPending, models.AccountStatusActive,
		models.AccountStatusSuspended, models.AccountStatusBanned,
	}
	for _, status := range statuses {
		if !strings.Contains(accounts, "'"+status+"'") {
			t.Errorf("accounts.status CHECK rejects %s", status)
		}
	}
}

func TestAuditLogCarriesInsertionOrder(t *testing.T) {
	auditLog := tableDef(t, readInitMigration(t), "audit_log")

	if !strings.Contains(auditLog, "seq") || !strings.Contains(auditLog, "BIGSERIAL") {
		t.Error("audit_log lacks a BIGSERIAL seq column; timestamp ties cannot resolve in insertion order")
	}
}
