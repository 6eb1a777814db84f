package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/99minutos/classifieds-system/internal/core/domain"
	"github.com/99minutos/classifieds-system/internal/core/policy"
)

// RegisterUserInput is the DTO passed from the transport layer to UserService.
type RegisterUserInput struct {
	Username string
	Password string
	Role     domain.Role // defaults to domain.RoleUser when empty
}

// UpdateUserInput carries the fields a PATCH request supplied. Password is
// plaintext here; the service turns it into a stored credential.
type UpdateUserInput struct {
	Username *string
	Password *string
	Role     *domain.Role
}

type UserService interface {
	Register(ctx context.Context, in RegisterUserInput) (domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, caller policy.Caller, id uuid.UUID, in UpdateUserInput) (domain.User, error)
	Delete(ctx context.Context, caller policy.Caller, id uuid.UUID) error
}
