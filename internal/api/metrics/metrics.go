// Package metrics defines and registers all custom Prometheus metrics for the
// identity service. It is the single source of truth for metric names, labels,
// and help strings; promauto registers everything with the default registry at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "identity"

// RegistrationsTotal counts registration attempts by outcome.
// Label:
//   - outcome: "created", "validation_error", "conflict", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by outcome.",
	},
	[]string{"outcome"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - outcome: "success", "validation_error", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// TokenVerificationsTotal counts bearer-token checks at the access gate.
// Label:
//   - result: "ok" or "rejected"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of access-gate token verifications, by result.",
	},
	[]string{"result"},
)

// AuditEventsTotal counts audit trail entries successfully persisted.
// Label:
//   - action: "registered", "login_succeeded", or "login_rejected"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events written to the trail, by action.",
	},
	[]string{"action"},
)

// AuditDroppedTotal counts audit events dropped because a worker buffer was full.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of audit events dropped due to a full worker queue.",
	},
)

// AuditQueueDepth tracks the number of events waiting in each worker channel.
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
