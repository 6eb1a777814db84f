package ports

import (
	"github.com/google/uuid"

	"github.com/99minutos/classifieds-system/internal/core/domain"
)

// UserStore owns user records and the username uniqueness invariant.
type UserStore interface {
	// Create fails with domain.ErrDuplicateUsername if the username is taken.
	Create(username, credential string, role domain.Role) (domain.User, error)
	Get(id uuid.UUID) (domain.User, bool)
	// List returns every user ordered by creation time, oldest first.
	List() []domain.User
	// Update applies a partial update. It fails with domain.ErrUserNotFound
	// or domain.ErrDuplicateUsername and leaves the record untouched on failure.
	Update(id uuid.UUID, patch domain.UserPatch) (domain.User, error)
	Delete(id uuid.UUID) bool
	VerifyCredential(username, credential string) (domain.User, bool)
}
