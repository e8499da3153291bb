package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_operations_total",
			Help: "Catalog cache operations",
		},
		[]string{"op"}, // hit|miss|populate|invalidate|error
	)
)

var (
	SweepRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_sweep_runs_total",
			Help: "Number of completed sweep passes",
		},
		[]string{"sweep"},
	)
	SweepOrdersProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_sweep_orders_processed_total",
			Help: "Orders transitioned by the sweeper",
		},
		[]string{"sweep"},
	)
	SweepOrdersFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_sweep_orders_failed_total",
			Help: "Per-order update failures during a sweep pass",
		},
		[]string{"sweep"},
	)
)

var (
	OrderEventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_published_total",
			Help: "Order lifecycle events published to Kafka",
		},
		[]string{"topic"},
	)
	OrderEventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_failed_total",
			Help: "Order lifecycle events failed to publish",
		},
		[]string{"topic"},
	)
)

func MustRegister() {
	prometheus.MustRegister(
		CacheOps,
		SweepRuns, SweepOrdersProcessed, SweepOrdersFailed,
		OrderEventsPublished, OrderEventsFailed,
	)
}
