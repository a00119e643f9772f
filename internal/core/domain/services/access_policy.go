package services

import (
	"fmt"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/errs"
)

// Role identifies the coarse capability class of a caller.
type Role int

const (
	RoleUnknown Role = iota

	// RoleAdmin manages the catalog and sees every order.
	RoleAdmin

	// RoleBuyer places, pays for, and rates their own orders.
	RoleBuyer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleAdmin: "admin",
		RoleBuyer: "buyer",
	}
}

// RoleFromString parses a wire-format role name.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks the role is a known value.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase role name.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Caller is the authenticated identity attached to a request by the
// (out-of-scope) authentication layer.
type Caller struct {
	ID   kernel.UUID
	Role Role
}

// AccessPolicy decides whether a caller may act on a resource. It is a pure
// function of (caller identity, resource); route handlers consult it before
// dispatching commands so authorization lives in one visible, testable place
// instead of scattered per-route flags.
type AccessPolicy struct{}

// NewAccessPolicy creates the authorization capability.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanAccessOrder reports whether the caller may view or act on an order
// owned by the given buyer. Admins may act on any order; buyers only on
// their own. Returns an OperationIsForbiddenError on denial.
func (AccessPolicy) CanAccessOrder(caller Caller, orderBuyerID kernel.UUID) error {
	if err := caller.ID.Validate(); err != nil {
		return err
	}
	if err := caller.Role.Validate(); err != nil {
		return err
	}

	if caller.Role == RoleAdmin {
		return nil
	}

	if !caller.ID.IsEqual(orderBuyerID) {
		return errs.NewOperationIsForbiddenErrorWithCause("access order",
			fmt.Errorf("caller %s does not own the order", caller.ID))
	}

	return nil
}

// CanAccessNegotiation reports whether the caller may view or act on a
// negotiation owned by the given buyer. Admins may see any negotiation;
// buyers only their own. Returns an OperationIsForbiddenError on denial.
func (AccessPolicy) CanAccessNegotiation(caller Caller, negotiationBuyerID kernel.UUID) error {
	if err := caller.ID.Validate(); err != nil {
		return err
	}
	if err := caller.Role.Validate(); err != nil {
		return err
	}

	if caller.Role == RoleAdmin {
		return nil
	}

	if !caller.ID.IsEqual(negotiationBuyerID) {
		return errs.NewOperationIsForbiddenErrorWithCause("access negotiation",
			fmt.Errorf("caller %s does not own the negotiation", caller.ID))
	}

	return nil
}

// CanRefundOrder reports whether the caller may refund a settled order.
// Refunds move money back to the buyer, so only admins may issue them.
func (AccessPolicy) CanRefundOrder(caller Caller) error {
	if err := caller.ID.Validate(); err != nil {
		return err
	}
	if err := caller.Role.Validate(); err != nil {
		return err
	}

	if caller.Role != RoleAdmin {
		return errs.NewOperationIsForbiddenErrorWithCause("refund order",
			fmt.Errorf("role %s may not refund orders", caller.Role))
	}

	return nil
}

// CanManageCatalog reports whether the caller may create or edit vehicle
// listings. Only admins may.
func (AccessPolicy) CanManageCatalog(caller Caller) error {
	if err := caller.ID.Validate(); err != nil {
		return err
	}
	if err := caller.Role.Validate(); err != nil {
		return err
	}

	if caller.Role != RoleAdmin {
		return errs.NewOperationIsForbiddenErrorWithCause("manage catalog",
			fmt.Errorf("role %s may not manage the catalog", caller.Role))
	}

	return nil
}
