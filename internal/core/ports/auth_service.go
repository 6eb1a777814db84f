package ports

import (
	"context"

	"github.com/99minutos/classifieds-system/internal/core/domain"
)

// AuthService logs users in and turns bearer tokens back into users.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, domain.User, error)
	Authenticate(ctx context.Context, token string) (domain.User, error)
}
