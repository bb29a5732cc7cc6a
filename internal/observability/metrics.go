// Package observability holds prometheus metric vectors shared across packages.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// AuthFailures counts rejected authentications by reason.
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_auth_failures_total",
		Help: "Total number of rejected authentications by reason",
	}, []string{"reason"})

	// TokensRevoked counts tokens added to the revocation set.
	TokensRevoked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_tokens_revoked_total",
		Help: "Total number of bearer tokens revoked via logout",
	})
)
