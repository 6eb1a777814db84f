package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/99minutos/classifieds-system/internal/api/middleware"
	"github.com/99minutos/classifieds-system/internal/core/policy"
)

// ctxCaller returns the caller injected by the Auth middleware. A missing
// caller means the route was registered without Auth.
func ctxCaller(c echo.Context) (policy.Caller, error) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return policy.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return caller, nil
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnprocessableEntity, "id must be a valid UUID")
	}
	return id, nil
}

// bindAndValidate decodes the JSON body into req and validates it.
// Malformed bodies are a 400, rule violations a 422.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
