// Package metrics defines the custom Prometheus metrics for the content API.
// It is the single source of truth for metric names, labels, and help
// strings. Request-level metrics (latency, status codes) come from the
// echoprometheus middleware; everything here is domain-specific.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "contentapi"

// AuthAttemptsTotal counts protected-request authentications by outcome.
// Label:
//   - outcome: "success", "missing_credential", "invalid_token",
//     "unknown_user", "store_error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts on protected routes, by outcome.",
	},
	[]string{"outcome"},
)

// TokensIssuedTotal counts credentials issued at the transport boundary.
// Label:
//   - flow: "login" or "signup"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of signed credentials issued.",
	},
	[]string{"flow"},
)

// RateLimitRejectedTotal counts requests rejected by the rate limiter.
var RateLimitRejectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ratelimit_rejected_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
)
