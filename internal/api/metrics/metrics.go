// Package metrics defines and registers the custom Prometheus metrics of the
// customer API. Metrics are registered with the default registry on import
// and exposed by the router on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "customer_api"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "locked" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "duplicate_username", "duplicate_email" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts auth gate decisions.
// Label:
//   - outcome: "valid", "missing", "expired", "malformed" or "payload"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token checks at the auth gate, by outcome.",
	},
	[]string{"outcome"},
)

// ── Customer metrics ──────────────────────────────────────────────────────────

// CustomerOperationsTotal counts customer CRUD calls.
// Labels:
//   - op: "create", "list", "get", "update" or "delete"
//   - result: "success", "not_found" or "error"
var CustomerOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "customer_operations_total",
		Help:      "Total number of customer operations, by operation and result.",
	},
	[]string{"op", "result"},
)
