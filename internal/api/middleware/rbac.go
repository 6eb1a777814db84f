package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/classifieds-system/internal/core/policy"
	"github.com/99minutos/classifieds-system/internal/pkg/metrics"
)

// Authorize lets the request through only when check accepts the caller set
// by Auth. Denials are counted under action.
func Authorize(action string, check func(policy.Caller) bool, m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := CallerFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if !check(caller) {
				m.AuthorizationDeniedTotal.WithLabelValues(action).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
