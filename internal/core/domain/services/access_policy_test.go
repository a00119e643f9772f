package services_test

import (
	"testing"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/services"
	"negcom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessPolicy_CanAccessOrder_OwnerAllowed(t *testing.T) {
	policy := services.NewAccessPolicy()
	buyerID := kernel.NewUUID()
	caller := services.Caller{ID: buyerID, Role: services.RoleBuyer}

	require.NoError(t, policy.CanAccessOrder(caller, buyerID))
}

func TestAccessPolicy_CanAccessOrder_StrangerDenied(t *testing.T) {
	policy := services.NewAccessPolicy()
	caller := services.Caller{ID: kernel.NewUUID(), Role: services.RoleBuyer}

	err := policy.CanAccessOrder(caller, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrOperationIsForbidden)
}

func TestAccessPolicy_CanAccessOrder_AdminAlwaysAllowed(t *testing.T) {
	policy := services.NewAccessPolicy()
	caller := services.Caller{ID: kernel.NewUUID(), Role: services.RoleAdmin}

	require.NoError(t, policy.CanAccessOrder(caller, kernel.NewUUID()))
}

func TestAccessPolicy_CanAccessOrder_InvalidCaller(t *testing.T) {
	policy := services.NewAccessPolicy()

	err := policy.CanAccessOrder(services.Caller{}, kernel.NewUUID())
	require.Error(t, err)

	err = policy.CanAccessOrder(services.Caller{ID: kernel.NewUUID()}, kernel.NewUUID())
	require.Error(t, err)
}

func TestAccessPolicy_CanManageCatalog(t *testing.T) {
	policy := services.NewAccessPolicy()

	admin := services.Caller{ID: kernel.NewUUID(), Role: services.RoleAdmin}
	require.NoError(t, policy.CanManageCatalog(admin))

	buyer := services.Caller{ID: kernel.NewUUID(), Role: services.RoleBuyer}
	err := policy.CanManageCatalog(buyer)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrOperationIsForbidden)
}

func TestAccessPolicy_CanAccessNegotiation(t *testing.T) {
	policy := services.NewAccessPolicy()
	buyerID := kernel.NewUUID()

	owner := services.Caller{ID: buyerID, Role: services.RoleBuyer}
	require.NoError(t, policy.CanAccessNegotiation(owner, buyerID))

	admin := services.Caller{ID: kernel.NewUUID(), Role: services.RoleAdmin}
	require.NoError(t, policy.CanAccessNegotiation(admin, buyerID))

	stranger := services.Caller{ID: kernel.NewUUID(), Role: services.RoleBuyer}
	err := policy.CanAccessNegotiation(stranger, buyerID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrOperationIsForbidden)
}

func TestAccessPolicy_CanRefundOrder(t *testing.T) {
	policy := services.NewAccessPolicy()

	admin := services.Caller{ID: kernel.NewUUID(), Role: services.RoleAdmin}
	require.NoError(t, policy.CanRefundOrder(admin))

	buyer := services.Caller{ID: kernel.NewUUID(), Role: services.RoleBuyer}
	err := policy.CanRefundOrder(buyer)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrOperationIsForbidden)
}

func TestRoleFromString(t *testing.T) {
	role, err := services.RoleFromString("admin")
	require.NoError(t, err)
	assert.Equal(t, services.RoleAdmin, role)

	role, err = services.RoleFromString("buyer")
	require.NoError(t, err)
	assert.Equal(t, services.RoleBuyer, role)

	_, err = services.RoleFromString("janitor")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = services.RoleFromString("")
	require.Error(t, err)
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "admin", services.RoleAdmin.String())
	assert.Equal(t, "buyer", services.RoleBuyer.String())
	assert.Equal(t, "unknown", services.RoleUnknown.String())
}
