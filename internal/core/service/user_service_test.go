package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/classifieds-system/internal/core/domain"
	"github.com/99minutos/classifieds-system/internal/core/policy"
	"github.com/99minutos/classifieds-system/internal/core/ports"
)

func TestUserService_Register(t *testing.T) {
	f := newFixture(t, nil)

	u, err := f.userSvc.Register(context.Background(), ports.RegisterUserInput{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, u.Role)
	assert.Equal(t, epoch, u.CreatedAt)

	admin, err := f.userSvc.Register(context.Background(), ports.RegisterUserInput{Username: "root", Password: "pw", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
}

func TestUserService_Register_Duplicate(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	bob, err := f.userSvc.Register(ctx, ports.RegisterUserInput{Username: "bob", Password: "first"})
	require.NoError(t, err)

	_, err = f.userSvc.Register(ctx, ports.RegisterUserInput{Username: "bob", Password: "second", Role: domain.RoleAdmin})
	require.ErrorIs(t, err, domain.ErrDuplicateUsername)

	got, err := f.userSvc.Get(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, bob, got)
}

func TestUserService_Get_NotFound(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.userSvc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_List(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	for _, name := range []string{"zed", "amy"} {
		_, err := f.userSvc.Register(ctx, ports.RegisterUserInput{Username: name, Password: "pw"})
		require.NoError(t, err)
		f.clock.Advance(time.Second)
	}

	users, err := f.userSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "zed", users[0].Username)
	assert.Equal(t, "amy", users[1].Username)
}

func TestUserService_Update_Authorization(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	alice, err := f.userSvc.Register(ctx, ports.RegisterUserInput{Username: "alice", Password: "a"})
	require.NoError(t, err)
	bob, err := f.userSvc.Register(ctx, ports.RegisterUserInput{Username: "bob", Password: "b"})
	require.NoError(t, err)
	root, err := f.userSvc.Register(ctx, ports.RegisterUserInput{Username: "root", Password: "r", Role: domain.RoleAdmin})
	require.NoError(t, err)

	name := "bobby"
	_, err = f.userSvc.Update(ctx, policy.CallerFrom(alice), bob.ID, ports.UpdateUserInput{Username: &name})
	require.ErrorIs(t, err, domain.ErrForbidden)

	got, err := f.userSvc.Get(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)

	updated, err := f.userSvc.Update(ctx, policy.CallerFrom(root), bob.ID, ports.UpdateUserInput{Username: &name})
	require.NoError(t, err)
	assert.Equal(t, "bobby", updated.Username)

	admin := domain.RoleAdmin
	updated, err = f.userSvc.Update(ctx, policy.CallerFrom(alice), alice.ID, ports.UpdateUserInput{Role: &admin})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, updated.Role)
	assert.Equal(t, alice.CreatedAt, updated.CreatedAt)
}

func TestUserService_Update_ForbiddenBeforeNotFound(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	alice, err := f.userSvc.Register(ctx, ports.RegisterUserInput{Username: "alice", Password: "a"})
	require.NoError(t, err)
	root, err := f.userSvc.Register(ctx, ports.RegisterUserInput{Username: "root", Password: "r", Role: domain.RoleAdmin})
	require.NoError(t, err)

	missing := uuid.New()
	_, err = f.userSvc.Update(ctx, policy.CallerFrom(alice), missing, ports.UpdateUserInput{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.userSvc.Update(ctx, policy.CallerFrom(root), missing, ports.UpdateUserInput{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_Update_DuplicateUsername(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	alice, err := f.userSvc.Register(ctx, ports.RegisterUserInput{Username: "alice", Password: "a"})
	require.NoError(t, err)
	_, err = f.userSvc.Register(ctx, ports.RegisterUserInput{Username: "bob", Password: "b"})
	require.NoError(t, err)

	taken := "bob"
	_, err = f.userSvc.Update(ctx, policy.CallerFrom(alice), alice.ID, ports.UpdateUserInput{Username: &taken})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestUserService_Delete(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	alice, err := f.userSvc.Register(ctx, ports.RegisterUserInput{Username: "alice", Password: "a"})
	require.NoError(t, err)
	bob, err := f.userSvc.Register(ctx, ports.RegisterUserInput{Username: "bob", Password: "b"})
	require.NoError(t, err)
	root, err := f.userSvc.Register(ctx, ports.RegisterUserInput{Username: "root", Password: "r", Role: domain.RoleAdmin})
	require.NoError(t, err)

	assert.ErrorIs(t, f.userSvc.Delete(ctx, policy.CallerFrom(alice), bob.ID), domain.ErrForbidden)
	assert.NoError(t, f.userSvc.Delete(ctx, policy.CallerFrom(root), bob.ID))
	assert.ErrorIs(t, f.userSvc.Delete(ctx, policy.CallerFrom(root), bob.ID), domain.ErrUserNotFound)
	assert.NoError(t, f.userSvc.Delete(ctx, policy.CallerFrom(alice), alice.ID))

	_, err = f.userSvc.Get(ctx, alice.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_Delete_KeepsAdvertisements(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	alice, err := f.userSvc.Register(ctx, ports.RegisterUserInput{Username: "alice", Password: "a"})
	require.NoError(t, err)
	ad, err := f.adSvc.Create(ctx, policy.CallerFrom(alice), ports.CreateAdvertisementInput{Title: "Bike", Price: 100})
	require.NoError(t, err)

	require.NoError(t, f.userSvc.Delete(ctx, policy.CallerFrom(alice), alice.ID))

	got, err := f.adSvc.Get(ctx, ad.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Author)
}
