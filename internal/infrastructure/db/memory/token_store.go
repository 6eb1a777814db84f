package memory

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/99minutos/classifieds-system/internal/core/ports"
	"github.com/99minutos/classifieds-system/internal/pkg/clock"
)

const (
	// DefaultTokenTTL is how long an issued token stays valid.
	DefaultTokenTTL = 48 * time.Hour

	tokenBytes = 32
)

var _ ports.TokenStore = (*TokenStore)(nil)

type tokenEntry struct {
	userID    uuid.UUID
	expiresAt time.Time
}

// TokenStore keeps bearer tokens in memory. Tokens are never renewed and never
// swept; an expired token is dropped the first time it is looked up.
type TokenStore struct {
	mu      sync.Mutex
	entries map[string]tokenEntry
	ttl     time.Duration
	clock   clock.Clock
	random  io.Reader
}

// NewTokenStore returns an empty store. A non-positive ttl means
// DefaultTokenTTL.
func NewTokenStore(clk clock.Clock, ttl time.Duration) *TokenStore {
	if clk == nil {
		clk = clock.System
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenStore{
		entries: make(map[string]tokenEntry),
		ttl:     ttl,
		clock:   clk,
		random:  rand.Reader,
	}
}

// Issue records a new random token for userID. Collisions between 256-bit
// tokens are not checked for.
func (s *TokenStore) Issue(userID uuid.UUID) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(s.random, buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[token] = tokenEntry{
		userID:    userID,
		expiresAt: s.clock.Now().Add(s.ttl),
	}
	return token, nil
}

// Resolve returns the user id behind token. A token is valid strictly before
// its expiry instant.
func (s *TokenStore) Resolve(token string) (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[token]
	if !ok {
		return uuid.Nil, false
	}
	if !s.clock.Now().Before(entry.expiresAt) {
		delete(s.entries, token)
		return uuid.Nil, false
	}
	return entry.userID, true
}
