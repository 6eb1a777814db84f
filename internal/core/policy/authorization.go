// Package policy decides whether a resolved caller may act on a resource.
// Every function is pure: the caller's identity is resolved beforehand and
// no store is consulted here.
package policy

import (
	"github.com/google/uuid"

	"github.com/99minutos/classifieds-system/internal/core/domain"
)

// Caller is the identity behind an authenticated request.
type Caller struct {
	ID       uuid.UUID
	Username string
	Role     domain.Role
}

// CallerFrom builds a Caller from a user snapshot.
func CallerFrom(u domain.User) Caller {
	return Caller{ID: u.ID, Username: u.Username, Role: u.Role}
}

func (c Caller) IsAdmin() bool {
	return c.Role == domain.RoleAdmin
}

// CanListUsers allows admins only.
func CanListUsers(c Caller) bool {
	return c.IsAdmin()
}

// CanModifyUser allows admins and the account owner.
func CanModifyUser(c Caller, targetID uuid.UUID) bool {
	return c.IsAdmin() || c.ID == targetID
}

// CanModifyAdvertisement allows admins and the user whose username matches
// the listing's author.
func CanModifyAdvertisement(c Caller, author string) bool {
	return c.IsAdmin() || c.Username == author
}
