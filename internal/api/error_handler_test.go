package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/classifieds-system/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"ad not found", domain.ErrAdvertisementNotFound, http.StatusNotFound},
		{"duplicate username", fmt.Errorf("register user: %w", domain.ErrDuplicateUsername), http.StatusBadRequest},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"bad token", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"echo error", echo.NewHTTPError(http.StatusUnprocessableEntity, "title is required"), http.StatusUnprocessableEntity},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	h := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			h(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Error == "" {
				t.Fatalf("expected error message")
			}
			if tc.code == http.StatusInternalServerError && body.Error != "internal server error" {
				t.Fatalf("internal details leaked: %q", body.Error)
			}
		})
	}
}
