// Package metrics defines and registers all custom Prometheus metrics for
// the clinic gateway. It is the single source of truth for metric names,
// labels, and help strings. Metrics self-register with the default
// registry via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vetgate"

// ── Navigation metrics ────────────────────────────────────────────────────────

// NavigationsTotal counts gate decisions per navigation.
// Labels:
//   - decision: "allow", "redirect_login", "redirect_home", "redirect_override"
//   - role: the session role at decision time, or "anonymous"
var NavigationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "navigations_total",
		Help:      "Total number of routing-gate decisions, by decision and role.",
	},
	[]string{"decision", "role"},
)

// LoginsTotal counts login attempts at the gateway.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Backend client metrics ────────────────────────────────────────────────────

// BackendRequestsTotal counts requests sent to the clinic backend.
// Labels:
//   - method: HTTP method
//   - outcome: "ok", "http_error" (non-2xx), "network_error"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests to the clinic backend, by outcome.",
	},
	[]string{"method", "outcome"},
)

// BackendRequestDuration measures backend round-trip time.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of clinic backend round trips.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// ── Audit trail metrics ───────────────────────────────────────────────────────

// AuditDroppedTotal counts navigation audit entries dropped because a
// worker queue was full.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of navigation audit entries dropped under backpressure.",
	},
)

// AuditQueueDepth tracks the number of audit entries waiting per worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each worker channel.",
	},
	[]string{"worker_id"},
)
