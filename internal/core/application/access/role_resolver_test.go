package access_test

import (
	"context"
	"testing"
	"time"

	"printorders/internal/core/application/access"
	"printorders/internal/core/domain/model/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedResolver struct {
	role identity.Role
	err  error
}

func (r fixedResolver) ResolveRole(context.Context, access.Claims) (identity.Role, error) {
	return r.role, r.err
}

func TestClaimRoleResolver(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	resolver := access.NewClaimRoleResolver(time.Hour, func() time.Time { return now })

	role, err := resolver.ResolveRole(t.Context(), access.Claims{Role: "admin", IssuedAt: now.Add(-time.Minute)})
	require.NoError(t, err)
	assert.Equal(t, identity.Admin, role)

	for name, claims := range map[string]access.Claims{
		"absent":  {},
		"stale":   {Role: "admin", IssuedAt: now.Add(-2 * time.Hour)},
		"no iat":  {Role: "admin"},
		"unknown": {Role: "owner", IssuedAt: now},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := resolver.ResolveRole(t.Context(), claims)
			assert.ErrorIs(t, err, access.ErrRoleUnresolved)
		})
	}

	t.Run("zero max age should skip the freshness check", func(t *testing.T) {
		role, err := access.NewClaimRoleResolver(0, nil).ResolveRole(t.Context(), access.Claims{Role: "vendor"})
		require.NoError(t, err)
		assert.Equal(t, identity.Vendor, role)
	})
}

func TestChainRoleResolver(t *testing.T) {
	t.Run("should stop at the first answer", func(t *testing.T) {
		chain := access.NewChainRoleResolver(
			fixedResolver{err: access.ErrRoleUnresolved},
			fixedResolver{role: identity.Vendor},
			fixedResolver{role: identity.Admin},
		)

		role, err := chain.ResolveRole(t.Context(), access.Claims{})

		require.NoError(t, err)
		assert.Equal(t, identity.Vendor, role)
	})

	t.Run("should report unresolved when every resolver passes", func(t *testing.T) {
		_, err := access.NewChainRoleResolver().ResolveRole(t.Context(), access.Claims{})

		assert.ErrorIs(t, err, access.ErrRoleUnresolved)
	})
}
