package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/99minutos/classifieds-system/internal/core/domain"
)

func TestCanListUsers(t *testing.T) {
	assert.True(t, CanListUsers(Caller{ID: uuid.New(), Role: domain.RoleAdmin}))
	assert.False(t, CanListUsers(Caller{ID: uuid.New(), Role: domain.RoleUser}))
}

func TestCanModifyUser(t *testing.T) {
	self := uuid.New()
	other := uuid.New()

	cases := []struct {
		name   string
		caller Caller
		target uuid.UUID
		want   bool
	}{
		{"owner", Caller{ID: self, Role: domain.RoleUser}, self, true},
		{"stranger", Caller{ID: self, Role: domain.RoleUser}, other, false},
		{"admin on other", Caller{ID: self, Role: domain.RoleAdmin}, other, true},
		{"admin on self", Caller{ID: self, Role: domain.RoleAdmin}, self, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanModifyUser(tc.caller, tc.target))
		})
	}
}

func TestCanModifyAdvertisement(t *testing.T) {
	alice := Caller{ID: uuid.New(), Username: "alice", Role: domain.RoleUser}
	bob := Caller{ID: uuid.New(), Username: "bob", Role: domain.RoleUser}
	admin := Caller{ID: uuid.New(), Username: "root", Role: domain.RoleAdmin}

	cases := []struct {
		name   string
		caller Caller
		author string
		want   bool
	}{
		{"author", alice, "alice", true},
		{"non-author", bob, "alice", false},
		{"author match is case-sensitive", alice, "Alice", false},
		{"admin", admin, "alice", true},
		{"admin on orphaned listing", admin, "deleted-user", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanModifyAdvertisement(tc.caller, tc.author))
		})
	}
}

func TestCallerFrom(t *testing.T) {
	u := domain.User{ID: uuid.New(), Username: "alice", Credential: "secret", Role: domain.RoleAdmin}
	c := CallerFrom(u)
	assert.Equal(t, Caller{ID: u.ID, Username: u.Username, Role: u.Role}, c)
	assert.True(t, c.IsAdmin())
}
