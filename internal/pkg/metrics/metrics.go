// Package metrics defines the custom Prometheus metrics for the classifieds
// API. It is the single source of truth for metric names, labels, and help
// strings.
//
// Build one Metrics per registry with New; the HTTP layer exposes that same
// registry on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "classifieds"

// Label values shared by callers.
const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultValid    = "valid"
	ResultRejected = "rejected"
)

// Metrics bundles every business metric the services record.
type Metrics struct {
	// UsersRegisteredTotal counts accounts created through the API.
	UsersRegisteredTotal prometheus.Counter

	// LoginsTotal counts login attempts.
	// Label:
	//   - result: "success" or "failure"
	LoginsTotal *prometheus.CounterVec

	// TokensIssuedTotal counts bearer tokens handed out.
	TokensIssuedTotal prometheus.Counter

	// TokenResolutionsTotal counts bearer token lookups.
	// Label:
	//   - result: "valid", or "rejected" for unknown, expired, or orphaned tokens
	TokenResolutionsTotal *prometheus.CounterVec

	// AdvertisementsCreatedTotal counts newly created listings.
	AdvertisementsCreatedTotal prometheus.Counter

	// AuthorizationDeniedTotal counts requests refused by an ownership or role check.
	// Label:
	//   - action: e.g. "list_users", "update_user", "delete_advertisement"
	AuthorizationDeniedTotal *prometheus.CounterVec
}

// New registers all metrics with reg. It panics if any of them is already
// registered there, so call it once per registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		UsersRegisteredTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_registered_total",
			Help:      "Total number of user accounts created.",
		}),
		LoginsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Total number of login attempts, labelled by result.",
		}, []string{"result"}),
		TokensIssuedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_issued_total",
			Help:      "Total number of bearer tokens issued.",
		}),
		TokenResolutionsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_resolutions_total",
			Help:      "Total number of bearer token lookups, labelled by result.",
		}, []string{"result"}),
		AdvertisementsCreatedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "advertisements_created_total",
			Help:      "Total number of advertisements created.",
		}),
		AuthorizationDeniedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "authorization_denied_total",
			Help:      "Total number of requests refused by an authorization check.",
		}, []string{"action"}),
	}
}

// NewNop returns metrics registered on a throwaway registry, for tests and
// callers that do not export metrics.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
