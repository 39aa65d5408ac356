// Package metrics holds the Prometheus metrics that describe forum activity.
// HTTP metrics live with the HTTP middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Entity kinds used as label values.
const (
	KindQuestion = "question"
	KindAnswer   = "answer"
	KindComment  = "comment"
)

// Business metrics track forum content and its lifecycle
var (
	// EntitiesTotal is refreshed periodically from row counts.
	EntitiesTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "forum_entities_total",
			Help: "Number of stored forum entities by kind",
		},
		[]string{"kind"},
	)

	// EntitiesCreatedTotal counts successful creations.
	EntitiesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_entities_created_total",
			Help: "Total number of forum entities created",
		},
		[]string{"kind"},
	)

	// CascadeDeletedTotal counts rows removed by delete operations, children included.
	CascadeDeletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_cascade_deleted_total",
			Help: "Total number of entities removed by delete operations",
		},
		[]string{"kind"},
	)

	// CascadeFailuresTotal counts delete operations that stopped part way.
	// stage names the step that failed, e.g. fetch_answers or remove_question.
	CascadeFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_cascade_failures_total",
			Help: "Total number of delete operations aborted by a storage failure",
		},
		[]string{"stage"},
	)

	// MembershipRejectionsTotal counts lookups of a child through the wrong parent.
	MembershipRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_membership_rejections_total",
			Help: "Total number of child lookups rejected because the parent does not own the child",
		},
		[]string{"kind"},
	)
)

// Database metrics track database pool usage
var (
	DBConnectionsInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Number of database connections currently in use",
		},
	)

	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)
)
