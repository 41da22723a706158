// Package metrics defines and registers the custom Prometheus metrics for
// the learnhub API. It is the single source of truth for metric names,
// labels, and help strings.
//
// All metrics are registered with the default registry at package load via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "learnhub"

// AuthAttemptsTotal counts authentication resolutions by the session
// middleware.
// Label:
//   - outcome: "ok", "missing_token", or "unknown_token"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of session-token authentication attempts.",
	},
	[]string{"outcome"},
)

// AuthDenialsTotal counts authorization denials by the predicate that
// short-circuited the chain.
// Label:
//   - check: "owner", "admin", "course_owner", "course_owner_or_admin"
var AuthDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denials_total",
		Help:      "Total number of authorization denials, by failing check.",
	},
	[]string{"check"},
)

// SessionsIssuedTotal counts session tokens issued at login.
var SessionsIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_issued_total",
		Help:      "Total number of session tokens issued.",
	},
)

// RateLimitedTotal counts requests rejected by the rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected with 429.",
	},
)

// AuditEventsTotal counts audit events by outcome.
// Label:
//   - result: "stored", "failed", or "dropped"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events, by outcome.",
	},
	[]string{"result"},
)

// AuditQueueDepth tracks the number of events waiting in each audit worker
// channel.
// Label:
//   - worker_id: numeric worker index
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each worker channel.",
	},
	[]string{"worker_id"},
)
