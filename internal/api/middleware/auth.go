package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/classifieds-system/internal/core/domain"
	"github.com/99minutos/classifieds-system/internal/core/policy"
	"github.com/99minutos/classifieds-system/internal/core/ports"
)

const callerKey = "caller"

// Auth resolves the bearer token through auth and stores the caller in the
// echo context. The user is re-read on every request, so renames and role
// changes apply to tokens issued earlier.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := auth.Authenticate(c.Request().Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
				}
				return err
			}

			SetCaller(c, policy.CallerFrom(user))
			return next(c)
		}
	}
}

// SetCaller stores the authenticated caller on c.
func SetCaller(c echo.Context, caller policy.Caller) {
	c.Set(callerKey, caller)
}

// CallerFrom returns the caller stored by Auth.
func CallerFrom(c echo.Context) (policy.Caller, bool) {
	caller, ok := c.Get(callerKey).(policy.Caller)
	return caller, ok
}
