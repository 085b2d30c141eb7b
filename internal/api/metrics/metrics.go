// Package metrics defines and registers all custom Prometheus metrics for the
// collection system API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "collection"

// SubmissionsCreatedTotal counts newly created submissions.
// Label:
//   - zone_kind: "existing" (zone reference) or "proposed" (new-zone name)
var SubmissionsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_created_total",
		Help:      "Total number of submissions created, by zone kind.",
	},
	[]string{"zone_kind"},
)

// ModerationsTotal counts moderation decisions.
// Labels:
//   - status: "verified" or "rejected"
//   - outcome: "applied" or "noop" (already in target state)
var ModerationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moderations_total",
		Help:      "Total number of moderation decisions, by target status and outcome.",
	},
	[]string{"status", "outcome"},
)

// SubmissionsDeletedTotal counts owner deletions of submissions.
var SubmissionsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_deleted_total",
		Help:      "Total number of submissions deleted by their owners.",
	},
)

// AuthorizationDeniedTotal counts requests rejected by the access gate.
// Label:
//   - reason: "forbidden" or "suspended"
var AuthorizationDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denied_total",
		Help:      "Total number of operations denied by the access control gate.",
	},
	[]string{"reason"},
)
