package access

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"printorders/internal/core/domain/model/identity"
	"printorders/internal/pkg/errs"
)

const bearerPrefix = "Bearer "

// Claims is the verified content of a bearer credential.
type Claims struct {
	Subject  string
	Email    string
	Name     string
	Role     string
	IssuedAt time.Time
}

// TokenVerifier checks a bearer token's signature and validity window.
// Any failure must be reported as an UnauthenticatedError.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// Guard enforces authentication and role checks ahead of an operation.
//
// Example:
//
//	guard := access.NewGuard(verifier, access.NewChainRoleResolver(
//	    access.NewClaimRoleResolver(time.Hour, time.Now),
//	    access.NewStoreRoleResolver(profiles),
//	), logger)
//	caller, err := guard.RequireAdmin(ctx, req.Header.Get("Authorization"))
type Guard struct {
	verifier TokenVerifier
	roles    RoleResolver
	logger   *slog.Logger
}

// NewGuard creates a guard. roles may resolve nothing, in which case callers
// pass RequireUser with an empty role and fail RequireAdmin.
func NewGuard(verifier TokenVerifier, roles RoleResolver, logger *slog.Logger) *Guard {
	return &Guard{
		verifier: verifier,
		roles:    roles,
		logger:   logger.With("component", "access-guard"),
	}
}

// RequireUser resolves the caller behind authorization, the raw value of an
// Authorization header. It fails with an UnauthenticatedError when the header
// is absent, not a bearer credential, or does not verify. A verifier that
// is not configured fails with its NotConfiguredError unchanged.
func (g *Guard) RequireUser(ctx context.Context, authorization string) (identity.Identity, error) {
	token, err := BearerToken(authorization)
	if err != nil {
		return identity.Identity{}, err
	}

	claims, err := g.verifier.Verify(ctx, token)
	if err != nil {
		if !errors.Is(err, errs.ErrUnauthenticated) && !errors.Is(err, errs.ErrNotConfigured) {
			err = errs.NewUnauthenticatedErrorWithCause("token verification failed", err)
		}
		return identity.Identity{}, err
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return identity.Identity{}, errs.NewUnauthenticatedError("token has no subject")
	}

	role, err := g.roles.ResolveRole(ctx, claims)
	switch {
	case errors.Is(err, ErrRoleUnresolved):
		g.logger.InfoContext(ctx, "no role resolved for caller", "uid", claims.Subject)
		role = ""
	case err != nil:
		return identity.Identity{}, err
	}

	return identity.Identity{
		UID:   claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  role,
	}, nil
}

// RequireAdmin is RequireUser followed by a role check. A verified caller
// without the admin role gets a ForbiddenError.
func (g *Guard) RequireAdmin(ctx context.Context, authorization string) (identity.Identity, error) {
	return g.RequireRole(ctx, authorization, identity.Admin)
}

// RequireRole is RequireUser followed by a check for exactly role.
func (g *Guard) RequireRole(ctx context.Context, authorization string, role identity.Role) (identity.Identity, error) {
	caller, err := g.RequireUser(ctx, authorization)
	if err != nil {
		return identity.Identity{}, err
	}
	if caller.Role != role {
		return identity.Identity{}, errs.NewForbiddenError(role.String() + " role required")
	}
	return caller, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(authorization string) (string, error) {
	authorization = strings.TrimSpace(authorization)
	if authorization == "" {
		return "", errs.NewUnauthenticatedError("missing bearer token")
	}
	if len(authorization) < len(bearerPrefix) || !strings.EqualFold(authorization[:len(bearerPrefix)], bearerPrefix) {
		return "", errs.NewUnauthenticatedError("authorization is not a bearer credential")
	}
	token := strings.TrimSpace(authorization[len(bearerPrefix):])
	if token == "" {
		return "", errs.NewUnauthenticatedError("empty bearer token")
	}
	return token, nil
}
