package http

import (
	"printorders/internal/pkg/telemetry"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
)

// Tracing opens one span per request, named after the matched route. It is a
// no-op span when telemetry is not set up.
func Tracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx, span := telemetry.Start(req.Context(), "http", req.Method+" "+c.Path(),
				attribute.String("http.request.method", req.Method),
				attribute.String("url.path", req.URL.Path),
			)
			c.SetRequest(req.WithContext(ctx))

			err := next(c)
			span.SetAttributes(attribute.Int("http.response.status_code", c.Response().Status))
			telemetry.End(span, err)
			return err
		}
	}
}
