package rbac

import (
	"testing"

	"github.com/bizledger/bizledger/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name   string
		role   types.UserRole
		entity string
		action string
		want   bool
	}{
		{"admin wildcard read", types.UserRoleAdmin, "users", ActionRead, true},
		{"admin wildcard delete", types.UserRoleAdmin, "payroll", ActionDelete, true},
		{"super admin wildcard", types.UserRoleSuperAdmin, "settings", ActionUpdate, true},
		{"staff reads clients", types.UserRoleStaff, "clients", ActionRead, true},
		{"staff creates invoices", types.UserRoleStaff, "invoices", ActionCreate, true},
		{"staff cannot delete invoices", types.UserRoleStaff, "invoices", ActionDelete, false},
		{"staff reads payroll only", types.UserRoleStaff, "payroll", ActionRead, true},
		{"staff cannot create payroll", types.UserRoleStaff, "payroll", ActionCreate, false},
		{"staff cannot manage users", types.UserRoleStaff, "users", ActionRead, false},
		{"staff reads numbering", types.UserRoleStaff, "numbering", ActionRead, true},
		{"staff cannot change numbering", types.UserRoleStaff, "numbering", ActionCreate, false},
		{"accountant deletes payments", types.UserRoleAccountant, "payments", ActionDelete, true},
		{"accountant cannot change numbering", types.UserRoleAccountant, "numbering", ActionCreate, false},
		{"admin changes numbering", types.UserRoleAdmin, "numbering", ActionCreate, true},
		{"accountant processes payroll", types.UserRoleAccountant, "payroll", ActionUpdate, true},
		{"accountant cannot edit clients", types.UserRoleAccountant, "clients", ActionUpdate, false},
		{"client reads invoices", types.UserRoleClient, "invoices", ActionRead, true},
		{"client cannot create invoices", types.UserRoleClient, "invoices", ActionCreate, false},
		{"client cannot see expenses", types.UserRoleClient, "expenses", ActionRead, false},
		{"user sees dashboard", types.UserRoleUser, "dashboard", ActionRead, true},
		{"user cannot see clients", types.UserRoleUser, "clients", ActionRead, false},
		{"unknown role denied", types.UserRole("ghost"), "clients", ActionRead, false},
		{"unknown entity denied", types.UserRoleStaff, "ledgers", ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.HasPermission(tt.role, tt.entity, tt.action))
		})
	}
}

func TestRoles(t *testing.T) {
	svc := NewService()
	roles := svc.Roles()

	assert.Contains(t, roles, types.UserRoleAdmin)
	assert.Equal(t, []string{"*"}, roles[types.UserRoleAdmin]["*"])
	assert.Equal(t, []string{ActionRead}, roles[types.UserRoleStaff]["numbering"])
	assert.ElementsMatch(t,
		[]string{ActionRead, ActionCreate, ActionUpdate},
		roles[types.UserRoleStaff]["clients"])

	// Mutating the returned maps must not leak into the service.
	roles[types.UserRoleStaff]["users"] = []string{ActionRead}
	assert.False(t, svc.HasPermission(types.UserRoleStaff, "users", ActionRead))
}
