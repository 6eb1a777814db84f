package ports

import "github.com/google/uuid"

// TokenStore issues opaque bearer tokens and resolves them back to a user id.
type TokenStore interface {
	Issue(userID uuid.UUID) (string, error)
	// Resolve reports false for unknown and expired tokens. Expired tokens
	// are removed on the lookup that finds them expired.
	Resolve(token string) (uuid.UUID, bool)
}
