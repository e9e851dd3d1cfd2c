package testutil

import (
	"context"

	"github.com/bizledger/bizledger/internal/types"
)

func SetupContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, types.CtxTenantID, types.DefaultTenantID)
	ctx = context.WithValue(ctx, types.CtxUserID, types.DefaultUserID)
	ctx = context.WithValue(ctx, types.CtxRequestID, types.GenerateUUID())
	ctx = context.WithValue(ctx, types.CtxUserRole, types.UserRoleAdmin)
	return ctx
}

// SetupContextWithRole returns a test context authenticated as the
// given role.
func SetupContextWithRole(role types.UserRole) context.Context {
	return context.WithValue(SetupContext(), types.CtxUserRole, role)
}

// SetupContextForTenant returns a test context scoped to a specific
// tenant, for isolation tests.
func SetupContextForTenant(tenantID string) context.Context {
	return context.WithValue(SetupContext(), types.CtxTenantID, tenantID)
}
