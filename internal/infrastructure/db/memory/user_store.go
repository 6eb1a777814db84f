// Package memory holds the in-process stores backing the marketplace. Each
// store owns its map and guards it with its own lock; there is no
// coordination across stores.
package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/99minutos/classifieds-system/internal/core/domain"
	"github.com/99minutos/classifieds-system/internal/core/ports"
	"github.com/99minutos/classifieds-system/internal/pkg/clock"
)

// CredentialMatcher compares a stored credential with one supplied at login.
type CredentialMatcher func(stored, supplied string) bool

// ExactMatch treats credentials as opaque strings compared for equality.
func ExactMatch(stored, supplied string) bool {
	return stored == supplied
}

var _ ports.UserStore = (*UserStore)(nil)

type userRecord struct {
	user domain.User
	seq  uint64 // insertion order, breaks created_at ties
}

// UserStore keeps user records in memory and enforces username uniqueness.
type UserStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*userRecord
	seq     uint64
	clock   clock.Clock
	match   CredentialMatcher
}

// NewUserStore returns an empty store. A nil clock means clock.System and a
// nil matcher means ExactMatch.
func NewUserStore(clk clock.Clock, match CredentialMatcher) *UserStore {
	if clk == nil {
		clk = clock.System
	}
	if match == nil {
		match = ExactMatch
	}
	return &UserStore{
		records: make(map[uuid.UUID]*userRecord),
		clock:   clk,
		match:   match,
	}
}

// Create inserts a new user. The uniqueness check and the insert happen under
// the same lock.
func (s *UserStore) Create(username, credential string, role domain.Role) (domain.User, error) {
	if role == "" {
		role = domain.RoleUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.usernameTaken(username, uuid.Nil) {
		return domain.User{}, domain.ErrDuplicateUsername
	}

	id := freshID(func(id uuid.UUID) bool {
		_, taken := s.records[id]
		return taken
	})

	s.seq++
	rec := &userRecord{
		user: domain.User{
			ID:         id,
			Username:   username,
			Credential: credential,
			Role:       role,
			CreatedAt:  s.clock.Now(),
		},
		seq: s.seq,
	}
	s.records[id] = rec
	return rec.user, nil
}

func (s *UserStore) Get(id uuid.UUID) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return domain.User{}, false
	}
	return rec.user, true
}

// List copies every record while the read lock is held, then sorts the
// copies oldest first.
func (s *UserStore) List() []domain.User {
	s.mu.RLock()
	recs := make([]userRecord, 0, len(s.records))
	for _, rec := range s.records {
		recs = append(recs, *rec)
	}
	s.mu.RUnlock()

	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].user.CreatedAt.Equal(recs[j].user.CreatedAt) {
			return recs[i].user.CreatedAt.Before(recs[j].user.CreatedAt)
		}
		return recs[i].seq < recs[j].seq
	})

	out := make([]domain.User, len(recs))
	for i, rec := range recs {
		out[i] = rec.user
	}
	return out
}

func (s *UserStore) Update(id uuid.UUID, patch domain.UserPatch) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}

	if patch.Username != nil && *patch.Username != rec.user.Username {
		if s.usernameTaken(*patch.Username, id) {
			return domain.User{}, domain.ErrDuplicateUsername
		}
	}

	if patch.Username != nil {
		rec.user.Username = *patch.Username
	}
	if patch.Credential != nil {
		rec.user.Credential = *patch.Credential
	}
	if patch.Role != nil {
		rec.user.Role = *patch.Role
	}
	return rec.user, nil
}

func (s *UserStore) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	return true
}

// VerifyCredential scans for the record holding username whose stored
// credential the matcher accepts.
func (s *UserStore) VerifyCredential(username, credential string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.user.Username == username && s.match(rec.user.Credential, credential) {
			return rec.user, true
		}
	}
	return domain.User{}, false
}

// usernameTaken must be called with s.mu held. The record with id except is
// ignored.
func (s *UserStore) usernameTaken(username string, except uuid.UUID) bool {
	for id, rec := range s.records {
		if id != except && rec.user.Username == username {
			return true
		}
	}
	return false
}

// freshID draws random ids until one is not taken.
func freshID(taken func(uuid.UUID) bool) uuid.UUID {
	for {
		id := uuid.New()
		if !taken(id) {
			return id
		}
	}
}
