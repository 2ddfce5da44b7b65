package access

import (
	"context"
	"errors"
	"time"

	"printorders/internal/core/domain/model/identity"
	"printorders/internal/core/ports"
	"printorders/internal/pkg/errs"
)

// ErrRoleUnresolved means a resolver has no answer and the next one should be tried.
var ErrRoleUnresolved = errors.New("role unresolved")

// RoleResolver decides the role of a verified caller.
type RoleResolver interface {
	ResolveRole(ctx context.Context, claims Claims) (identity.Role, error)
}

// ClaimRoleResolver trusts the role claim of the credential while it is
// fresh, i.e. issued no longer than maxAge ago. A zero maxAge disables the
// freshness check.
type ClaimRoleResolver struct {
	maxAge time.Duration
	now    func() time.Time
}

func NewClaimRoleResolver(maxAge time.Duration, now func() time.Time) ClaimRoleResolver {
	if now == nil {
		now = time.Now
	}
	return ClaimRoleResolver{maxAge: maxAge, now: now}
}

func (r ClaimRoleResolver) ResolveRole(_ context.Context, claims Claims) (identity.Role, error) {
	if claims.Role == "" {
		return "", ErrRoleUnresolved
	}
	if r.maxAge > 0 {
		if claims.IssuedAt.IsZero() || r.now().Sub(claims.IssuedAt) > r.maxAge {
			return "", ErrRoleUnresolved
		}
	}
	role, err := identity.ParseRole(claims.Role)
	if err != nil {
		return "", ErrRoleUnresolved
	}
	return role, nil
}

// StoreRoleResolver reads the role stored on the caller's user profile.
type StoreRoleResolver struct {
	lookup ports.RoleLookup
}

func NewStoreRoleResolver(lookup ports.RoleLookup) StoreRoleResolver {
	return StoreRoleResolver{lookup: lookup}
}

func (r StoreRoleResolver) ResolveRole(ctx context.Context, claims Claims) (identity.Role, error) {
	role, err := r.lookup.LookupRole(ctx, claims.Subject)
	if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, errs.ErrValueIsInvalid) {
		return "", ErrRoleUnresolved
	}
	if err != nil {
		return "", err
	}
	return role, nil
}

// ChainRoleResolver asks each resolver in turn and stops at the first
// answer or the first hard error.
type ChainRoleResolver struct {
	resolvers []RoleResolver
}

func NewChainRoleResolver(resolvers ...RoleResolver) ChainRoleResolver {
	return ChainRoleResolver{resolvers: resolvers}
}

func (r ChainRoleResolver) ResolveRole(ctx context.Context, claims Claims) (identity.Role, error) {
	for _, resolver := range r.resolvers {
		role, err := resolver.ResolveRole(ctx, claims)
		if errors.Is(err, ErrRoleUnresolved) {
			continue
		}
		return role, err
	}
	return "", ErrRoleUnresolved
}
