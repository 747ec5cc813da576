// Package metrics defines all custom Prometheus metrics for the Mercado
// storefront client. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mercado"

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionActionOutcomes counts terminal outcome events dispatched to the
// central store.
// Labels:
//   - action: the session action name (e.g. "AUTHENTICATED", "LOGIN")
//   - outcome: "success" or "fail"
var SessionActionOutcomes = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_action_outcomes_total",
		Help:      "Total number of terminal session action outcomes, by action and result.",
	},
	[]string{"action", "outcome"},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestDuration measures round-trip time of calls to the remote
// platform API.
// Labels:
//   - endpoint: logical endpoint name (e.g. "jwt_create", "users_me")
//   - status: HTTP status code, or "error" when no response arrived
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of requests against the remote platform API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint", "status"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsTotal counts delivered transient messages by severity.
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of user-visible notifications delivered, by severity.",
	},
	[]string{"severity"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogCacheTotal counts catalog cache lookups.
// Label:
//   - result: "hit" (fresh snapshot served) or "miss" (upstream fetched)
var CatalogCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_cache_total",
		Help:      "Total number of catalog cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
