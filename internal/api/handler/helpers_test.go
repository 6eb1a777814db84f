package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/99minutos/classifieds-system/internal/api/middleware"
	"github.com/99minutos/classifieds-system/internal/core/domain"
	"github.com/99minutos/classifieds-system/internal/core/policy"
	"github.com/99minutos/classifieds-system/internal/core/ports"
)

// newContext builds an echo context for a JSON request. A non-nil caller is
// stored the way the Auth middleware would.
func newContext(method, target, body string, caller *policy.Caller) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if caller != nil {
		middleware.SetCaller(c, *caller)
	}
	return c, rec
}

func withID(c echo.Context, id string) {
	c.SetParamNames("id")
	c.SetParamValues(id)
}

// httpStatus returns the status carried by an *echo.HTTPError, or 0.
func httpStatus(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return 0
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return v
}

var (
	aliceCaller = policy.Caller{ID: uuid.MustParse("11111111-1111-4111-8111-111111111111"), Username: "alice", Role: domain.RoleUser}
	adminCaller = policy.Caller{ID: uuid.MustParse("22222222-2222-4222-8222-222222222222"), Username: "root", Role: domain.RoleAdmin}
)

type stubAuthService struct {
	loginFn func(ctx context.Context, username, password string) (string, domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Authenticate(context.Context, string) (domain.User, error) {
	return domain.User{}, domain.ErrUnauthorized
}

type stubUserService struct {
	registerFn func(ctx context.Context, in ports.RegisterUserInput) (domain.User, error)
	getFn      func(ctx context.Context, id uuid.UUID) (domain.User, error)
	listFn     func(ctx context.Context) ([]domain.User, error)
	updateFn   func(ctx context.Context, caller policy.Caller, id uuid.UUID, in ports.UpdateUserInput) (domain.User, error)
	deleteFn   func(ctx context.Context, caller policy.Caller, id uuid.UUID) error
}

func (s *stubUserService) Register(ctx context.Context, in ports.RegisterUserInput) (domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubUserService) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) List(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Update(ctx context.Context, caller policy.Caller, id uuid.UUID, in ports.UpdateUserInput) (domain.User, error) {
	return s.updateFn(ctx, caller, id, in)
}

func (s *stubUserService) Delete(ctx context.Context, caller policy.Caller, id uuid.UUID) error {
	return s.deleteFn(ctx, caller, id)
}

type stubAdvertisementService struct {
	createFn func(ctx context.Context, caller policy.Caller, in ports.CreateAdvertisementInput) (domain.Advertisement, error)
	getFn    func(ctx context.Context, id uuid.UUID) (domain.Advertisement, error)
	searchFn func(ctx context.Context, filter domain.AdvertisementFilter) ([]domain.Advertisement, error)
	updateFn func(ctx context.Context, caller policy.Caller, id uuid.UUID, patch domain.AdvertisementPatch) (domain.Advertisement, error)
	deleteFn func(ctx context.Context, caller policy.Caller, id uuid.UUID) error
}

func (s *stubAdvertisementService) Create(ctx context.Context, caller policy.Caller, in ports.CreateAdvertisementInput) (domain.Advertisement, error) {
	return s.createFn(ctx, caller, in)
}

func (s *stubAdvertisementService) Get(ctx context.Context, id uuid.UUID) (domain.Advertisement, error) {
	return s.getFn(ctx, id)
}

func (s *stubAdvertisementService) Search(ctx context.Context, filter domain.AdvertisementFilter) ([]domain.Advertisement, error) {
	return s.searchFn(ctx, filter)
}

func (s *stubAdvertisementService) Update(ctx context.Context, caller policy.Caller, id uuid.UUID, patch domain.AdvertisementPatch) (domain.Advertisement, error) {
	return s.updateFn(ctx, caller, id, patch)
}

func (s *stubAdvertisementService) Delete(ctx context.Context, caller policy.Caller, id uuid.UUID) error {
	return s.deleteFn(ctx, caller, id)
}
