// Package metrics exposes the Prometheus collectors of the aggregation and
// track components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "navcore"

var (
	// Aggregation metrics
	AggregationBatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "aggregation",
		Name:      "batches_total",
		Help:      "Total distance and time batches by result",
	}, []string{"operation", "result"})

	AggregationIndicesRecomputed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "aggregation",
		Name:      "indices_recomputed_total",
		Help:      "Total absolute entries recomputed",
	})

	AggregationRecomputeSpan = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "aggregation",
		Name:      "recompute_span_indices",
		Help:      "Number of indices walked per recomputation",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})

	AggregationNotifications = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "aggregation",
		Name:      "listener_notifications_total",
		Help:      "Total listener invocations",
	})

	// Track metrics
	TrackSimplifications = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "track",
		Name:      "simplifications_total",
		Help:      "Total Douglas-Peucker simplification runs",
	})

	TrackPositionsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "track",
		Name:      "positions_dropped_total",
		Help:      "Total positions found insignificant by simplification",
	})
)

// Batch results
const (
	ResultApplied  = "applied"
	ResultRejected = "rejected"
)
