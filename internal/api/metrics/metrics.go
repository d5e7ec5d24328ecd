// Package metrics defines and registers all custom Prometheus metrics for
// the projecthub API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics use promauto and register with the default registry at package
// load; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "projecthub"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts that reached the store.
// Labels:
//   - role: "admin" or "user"
//   - result: "ok" or "duplicate"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - role: the role presented with the credentials
//   - result: "ok" or "invalid_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// ── Project metrics ───────────────────────────────────────────────────────────

// ProjectOpsTotal counts successful project write operations.
// Label:
//   - op: "create", "update", or "delete"
var ProjectOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "project_operations_total",
		Help:      "Total number of successful project write operations, by operation.",
	},
	[]string{"op"},
)
