package http

import (
	"context"
	"fmt"
	"log/slog"

	"printorders/internal/core/domain/model/identity"
	"printorders/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

const (
	callerKey = "printorders.caller"

	// requiredRoleExtension marks operations restricted to one role.
	requiredRoleExtension = "x-required-role"
)

// Authenticator resolves the caller behind an Authorization header value.
type Authenticator interface {
	RequireUser(ctx context.Context, authorization string) (identity.Identity, error)
	RequireRole(ctx context.Context, authorization string, role identity.Role) (identity.Identity, error)
}

// Gate checks every request matching the OpenAPI contract before it reaches
// a handler: the bearer credential first (401), then the operation's role
// (403), then parameters against the contract (400). Requests outside the
// contract, such as static files and the docs UI, pass through untouched.
//
// Example:
//
//	gate, err := http.NewGate(api.Spec, guard, logger)
//	if err != nil {
//	    log.Fatalf("load contract: %v", err)
//	}
//	e.Use(gate.Middleware())
type Gate struct {
	doc    *openapi3.T
	router routers.Router
	auth   Authenticator
	logger *slog.Logger
}

// NewGate loads and validates the contract in spec.
func NewGate(spec []byte, auth Authenticator, logger *slog.Logger) (*Gate, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("load openapi contract: %w", err)
	}

	// Match on path only; the listed servers describe deployments, not routing.
	doc.Servers = nil

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	return &Gate{
		doc:    doc,
		router: router,
		auth:   auth,
		logger: logger.With("component", "http-gate"),
	}, nil
}

// Middleware returns the echo middleware enforcing the gate.
func (g *Gate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := g.router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			ctx := req.Context()
			if g.requiresAuth(route.Operation) {
				caller, authErr := g.authorize(ctx, route.Operation, req.Header.Get(echo.HeaderAuthorization))
				if authErr != nil {
					g.logger.DebugContext(ctx, "request rejected", "path", req.URL.Path, "error", authErr)
					return authErr
				}
				c.Set(callerKey, caller)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					ExcludeRequestBody: true,
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				},
			}
			if err = openapi3filter.ValidateRequest(ctx, input); err != nil {
				return errs.NewValueIsInvalidErrorWithCause("request", err)
			}

			return next(c)
		}
	}
}

func (g *Gate) requiresAuth(op *openapi3.Operation) bool {
	security := g.doc.Security
	if op.Security != nil {
		security = *op.Security
	}
	return len(security) > 0
}

func (g *Gate) authorize(ctx context.Context, op *openapi3.Operation, authorization string) (identity.Identity, error) {
	raw, ok := op.Extensions[requiredRoleExtension].(string)
	if !ok || raw == "" {
		return g.auth.RequireUser(ctx, authorization)
	}

	role, err := identity.ParseRole(raw)
	if err != nil {
		return identity.Identity{}, fmt.Errorf("operation %s requires unknown role %q", op.OperationID, raw)
	}
	return g.auth.RequireRole(ctx, authorization, role)
}

// callerFrom returns the identity the gate stored for the request. Routes
// without security get the zero identity.
func callerFrom(c echo.Context) identity.Identity {
	caller, _ := c.Get(callerKey).(identity.Identity)
	return caller
}
