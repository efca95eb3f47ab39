// Package metrics defines and registers all custom Prometheus metrics for the
// roster auth API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at init time; the
// /metrics endpoint in the router exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "roster"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (all failures are undifferentiated, matching
//     the response contract)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful user registrations.
// Label:
//   - role: the role assigned to the new user ("admin", "supervisor", "nurse")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of users registered, by role.",
	},
	[]string{"role"},
)

// TokenRejectionsTotal counts bearer tokens rejected by the auth middleware
// (missing header, bad signature, expired, malformed).
var TokenRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of bearer tokens rejected by the auth middleware.",
	},
)

// ── Audit pipeline metrics ────────────────────────────────────────────────────

// AuditEventsProcessedTotal counts audit events persisted successfully.
// Label:
//   - action: the audit action (e.g. "login_failed")
var AuditEventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_processed_total",
		Help:      "Total number of audit events successfully persisted.",
	},
	[]string{"action"},
)

// AuditEventsErrorsTotal counts audit events that failed processing.
var AuditEventsErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_errors_total",
		Help:      "Total number of audit events that failed processing.",
	},
)

// AuditEventsDroppedTotal counts audit events dropped because the worker
// queue was full. A non-zero value means the audit trail has gaps.
var AuditEventsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_dropped_total",
		Help:      "Total number of audit events dropped due to a full queue.",
	},
)

// AuditQueueDepth tracks the current number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
