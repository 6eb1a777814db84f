package service

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/classifieds-system/internal/infrastructure/db/memory"
	"github.com/99minutos/classifieds-system/internal/pkg/clock"
	"github.com/99minutos/classifieds-system/internal/pkg/metrics"
)

var epoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	clock   *clock.Manual
	users   *memory.UserStore
	ads     *memory.AdvertisementStore
	tokens  *memory.TokenStore
	auth    *AuthService
	userSvc *UserService
	adSvc   *AdvertisementService
}

// newFixture wires every service over fresh in-memory stores. Passwords are
// stored as given unless creds says otherwise.
func newFixture(t *testing.T, creds Credentials) *fixture {
	t.Helper()
	if creds == nil {
		creds = PlainCredentials{}
	}

	clk := clock.NewManual(epoch)
	m := metrics.NewNop()
	log := zerolog.Nop()

	users := memory.NewUserStore(clk, creds.Match)
	ads := memory.NewAdvertisementStore(clk)
	tokens := memory.NewTokenStore(clk, memory.DefaultTokenTTL)

	return &fixture{
		clock:   clk,
		users:   users,
		ads:     ads,
		tokens:  tokens,
		auth:    NewAuthService(users, tokens, m, log),
		userSvc: NewUserService(users, creds, m, log),
		adSvc:   NewAdvertisementService(ads, m, log),
	}
}
