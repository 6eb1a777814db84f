package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/classifieds-system/internal/core/domain"
	"github.com/99minutos/classifieds-system/internal/core/policy"
	"github.com/99minutos/classifieds-system/internal/core/ports"
	"github.com/99minutos/classifieds-system/internal/pkg/metrics"
)

type UserService struct {
	users   ports.UserStore
	creds   Credentials
	metrics *metrics.Metrics
	log     zerolog.Logger
}

var _ ports.UserService = (*UserService)(nil)

func NewUserService(users ports.UserStore, creds Credentials, m *metrics.Metrics, log zerolog.Logger) *UserService {
	return &UserService{users: users, creds: creds, metrics: m, log: log}
}

// Register creates an account. Anyone may register, with either role.
func (s *UserService) Register(_ context.Context, in ports.RegisterUserInput) (domain.User, error) {
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}

	credential, err := s.creds.Hash(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("register user: %w", err)
	}

	user, err := s.users.Create(in.Username, credential, role)
	if err != nil {
		return domain.User{}, fmt.Errorf("register user: %w", err)
	}

	s.metrics.UsersRegisteredTotal.Inc()
	s.log.Info().
		Str("user_id", user.ID.String()).
		Str("username", user.Username).
		Str("role", string(user.Role)).
		Msg("user registered")

	return user, nil
}

func (s *UserService) Get(_ context.Context, id uuid.UUID) (domain.User, error) {
	user, ok := s.users.Get(id)
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

// List returns every account, oldest first. Callers gate it with
// policy.CanListUsers.
func (s *UserService) List(_ context.Context) ([]domain.User, error) {
	return s.users.List(), nil
}

// Update applies a partial update on behalf of caller. The ownership check
// runs before the existence check.
func (s *UserService) Update(_ context.Context, caller policy.Caller, id uuid.UUID, in ports.UpdateUserInput) (domain.User, error) {
	if !policy.CanModifyUser(caller, id) {
		s.metrics.AuthorizationDeniedTotal.WithLabelValues("update_user").Inc()
		return domain.User{}, domain.ErrForbidden
	}

	patch := domain.UserPatch{Username: in.Username, Role: in.Role}
	if in.Password != nil {
		credential, err := s.creds.Hash(*in.Password)
		if err != nil {
			return domain.User{}, fmt.Errorf("update user: %w", err)
		}
		patch.Credential = &credential
	}

	user, err := s.users.Update(id, patch)
	if err != nil {
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}

	s.log.Info().
		Str("user_id", user.ID.String()).
		Str("caller_id", caller.ID.String()).
		Msg("user updated")

	return user, nil
}

func (s *UserService) Delete(_ context.Context, caller policy.Caller, id uuid.UUID) error {
	if !policy.CanModifyUser(caller, id) {
		s.metrics.AuthorizationDeniedTotal.WithLabelValues("delete_user").Inc()
		return domain.ErrForbidden
	}

	if !s.users.Delete(id) {
		return domain.ErrUserNotFound
	}

	s.log.Info().
		Str("user_id", id.String()).
		Str("caller_id", caller.ID.String()).
		Msg("user deleted")

	return nil
}
