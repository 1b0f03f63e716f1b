package common

import (
	"context"
	"slices"
)

type ctxKey string

const principalKey ctxKey = "auth/principal"

// Groups a user can belong to.
const (
	GroupAdmin  = "Admin"
	GroupClient = "Cliente"
)

// Principal identifies the authenticated caller and the groups it belongs to.
type Principal struct {
	UserID   string
	Username string
	Groups   []string
}

// HasGroup reports whether the principal is a member of group.
func (p Principal) HasGroup(group string) bool {
	return slices.Contains(p.Groups, group)
}

// IsAdmin reports membership of the Admin group.
func (p Principal) IsAdmin() bool { return p.HasGroup(GroupAdmin) }

// CanActFor reports whether the principal may read or write data owned by customerID.
func (p Principal) CanActFor(customerID string) bool {
	return p.IsAdmin() || (p.UserID != "" && p.UserID == customerID)
}

// WithPrincipal stores the authenticated principal on the provided context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFrom extracts the authenticated principal from the context if present.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	if !ok || p.UserID == "" {
		return Principal{}, false
	}
	return p, true
}

// UserID extracts the authenticated user identifier from the context if present.
func UserID(ctx context.Context) (string, bool) {
	p, ok := PrincipalFrom(ctx)
	return p.UserID, ok
}

// PinCustomer forces *customerID to the caller unless the caller is an admin
// who named a customer explicitly.
func PinCustomer(ctx context.Context, customerID *string) error {
	p, ok := PrincipalFrom(ctx)
	if !ok {
		return Unauthorized("authentication required")
	}
	if !p.IsAdmin() || *customerID == "" {
		*customerID = p.UserID
	}
	return nil
}

// CanGrant checks that the caller may place an account in groups. Anyone may
// create a Cliente account; every other group needs an Admin caller.
func CanGrant(ctx context.Context, groups ...string) error {
	for _, g := range groups {
		if g == GroupClient {
			continue
		}
		if p, ok := PrincipalFrom(ctx); !ok || !p.IsAdmin() {
			return Forbidden("only admins may assign group " + g)
		}
	}
	return nil
}
