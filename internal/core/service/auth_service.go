package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/classifieds-system/internal/core/domain"
	"github.com/99minutos/classifieds-system/internal/core/ports"
	"github.com/99minutos/classifieds-system/internal/pkg/metrics"
)

// AuthService implements login and bearer token authentication.
type AuthService struct {
	users   ports.UserStore
	tokens  ports.TokenStore
	metrics *metrics.Metrics
	log     zerolog.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(users ports.UserStore, tokens ports.TokenStore, m *metrics.Metrics, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, metrics: m, log: log}
}

// Login verifies the credentials and issues a fresh token.
func (s *AuthService) Login(_ context.Context, username, password string) (string, domain.User, error) {
	if username == "" || password == "" {
		s.metrics.LoginsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	user, ok := s.users.VerifyCredential(username, password)
	if !ok {
		s.metrics.LoginsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		s.log.Info().Str("username", username).Msg("login rejected")
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("login: %w", err)
	}

	s.metrics.LoginsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	s.metrics.TokensIssuedTotal.Inc()
	s.log.Info().Str("user_id", user.ID.String()).Msg("token issued")

	return token, user, nil
}

// Authenticate resolves a bearer token to its user. Unknown and expired
// tokens fail, and so do tokens whose user has since been deleted.
func (s *AuthService) Authenticate(_ context.Context, token string) (domain.User, error) {
	userID, ok := s.tokens.Resolve(token)
	if !ok {
		s.metrics.TokenResolutionsTotal.WithLabelValues(metrics.ResultRejected).Inc()
		return domain.User{}, domain.ErrUnauthorized
	}

	user, ok := s.users.Get(userID)
	if !ok {
		s.metrics.TokenResolutionsTotal.WithLabelValues(metrics.ResultRejected).Inc()
		s.log.Debug().Str("user_id", userID.String()).Msg("token belongs to a deleted user")
		return domain.User{}, domain.ErrUnauthorized
	}

	s.metrics.TokenResolutionsTotal.WithLabelValues(metrics.ResultValid).Inc()
	return user, nil
}
