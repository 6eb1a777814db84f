package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/99minutos/classifieds-system/internal/core/domain"
)

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, password string) (string, domain.User, error) {
			if username != "alice" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "tok-1", domain.User{Username: username}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newContext(http.MethodPost, "/login", `{"username":"alice","password":"secret"}`, nil)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decode[tokenResponse](t, rec)
	if resp.AccessToken != "tok-1" {
		t.Fatalf("unexpected token: %q", resp.AccessToken)
	}
	if resp.TokenType != "bearer" {
		t.Fatalf("unexpected token type: %q", resp.TokenType)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, domain.User, error) {
			return "", domain.User{}, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newContext(http.MethodPost, "/login", `{"username":"alice","password":"wrong"}`, nil)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_BadPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, domain.User, error) {
			t.Fatalf("service should not be called")
			return "", domain.User{}, nil
		},
	})

	c, _ := newContext(http.MethodPost, "/login", `{"username":`, nil)
	if code := httpStatus(h.Login(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}

	c, _ = newContext(http.MethodPost, "/login", `{"username":"alice"}`, nil)
	if code := httpStatus(h.Login(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}
