// Package metrics defines and registers the custom Prometheus metrics for
// the capacity system. It is the single source of truth for metric names,
// labels, and help strings; HTTP-level request metrics come from the
// echoprometheus middleware and are not duplicated here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "capacity"

// ── Snapshot metrics ──────────────────────────────────────────────────────────

// SnapshotLoadDuration measures how long one consistent roster read takes.
// Label:
//   - source: "store" (direct MongoDB read) or "cache" (Redis hit)
var SnapshotLoadDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "snapshot_load_duration_seconds",
		Help:      "Duration of loading one point-in-time roster snapshot.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"source"},
)

// SnapshotCacheTotal counts snapshot cache decisions.
// Label:
//   - result: "hit" (served from Redis) or "miss" (loaded from the store)
var SnapshotCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_cache_total",
		Help:      "Total number of snapshot cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// SnapshotEntities tracks the size of the most recently loaded snapshot.
// Label:
//   - entity: "engineers", "projects", or "assignments"
var SnapshotEntities = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "snapshot_entities",
		Help:      "Entity counts in the most recently loaded roster snapshot.",
	},
	[]string{"entity"},
)

// ── Engine metrics ────────────────────────────────────────────────────────────

// ComputationDuration measures one engine request end-to-end.
// Label:
//   - operation: "capacity", "suitability", "calendar", "upcoming", "analytics"
var ComputationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "computation_duration_seconds",
		Help:      "Duration of engine computations by operation.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
	},
	[]string{"operation"},
)

// ComputationErrorsTotal counts failed engine requests.
// Label:
//   - operation: same values as ComputationDuration
var ComputationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "computation_errors_total",
		Help:      "Total number of engine requests that failed.",
	},
	[]string{"operation"},
)
