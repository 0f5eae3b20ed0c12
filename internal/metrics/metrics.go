// Package metrics defines Prometheus metrics for the UDAM marketplace.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "udam"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	RateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	})
)

// Health metrics.
var (
	HealthyGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthy",
		Help:      "1 if the service is alive.",
	})

	ReadyGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ready",
		Help:      "1 if the datastore is reachable.",
	})
)

// Inventory metrics.
var (
	UnitsReservedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inventory_units_reserved_total",
		Help:      "Total units reserved by new orders.",
	})

	UnitsRestoredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inventory_units_restored_total",
		Help:      "Total units returned to listings.",
	})

	UnitsSoldTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inventory_units_sold_total",
		Help:      "Total units consumed by settled orders.",
	})

	ReservationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inventory_reservation_failures_total",
		Help:      "Total reservations rejected for insufficient inventory.",
	})
)

// Order metrics.
var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created.",
	})

	OrderTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_transitions_total",
		Help:      "Total order state transitions by action and resulting state.",
	}, []string{"action", "state"})

	OrderConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_version_conflicts_total",
		Help:      "Total optimistic version conflicts retried on order updates.",
	})
)

// Escrow metrics.
var (
	EscrowMintedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "escrow_tokens_minted_total",
		Help:      "Total escrow tokens minted.",
	})

	EscrowSettlementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "escrow_settlements_total",
		Help:      "Total escrow tokens settled by terminal status.",
	}, []string{"status"})

	EscrowSettledAmountTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "escrow_settled_amount_total",
		Help:      "Total settled escrow amount in minor units by terminal status.",
	}, []string{"status"})
)

// Dispute metrics.
var (
	DisputesOpenedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "disputes_opened_total",
		Help:      "Total disputes opened by buyers.",
	})

	DisputeDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dispute_decisions_total",
		Help:      "Total resolved disputes by favored party and source.",
	}, []string{"decision", "source"})

	WindowExpirationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "window_expirations_total",
		Help:      "Total elapsed dispute and counter windows applied.",
	}, []string{"window"})

	SweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "window_sweep_duration_seconds",
		Help:      "Duration of window expiry sweeps in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	SchedulerNextSweepTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_sweep_timestamp",
		Help:      "Unix timestamp of the next scheduled window sweep.",
	})
)

// Reputation metrics.
var (
	ReviewsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_submitted_total",
		Help:      "Total reviews submitted.",
	})

	ReviewScores = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "review_scores",
		Help:      "Distribution of submitted review scores.",
		Buckets:   prometheus.LinearBuckets(1, 1, 5), // 1..5
	})
)

// Notification metrics.
var (
	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of failed participant notifications.",
	})

	NotificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Duration of notification webhook calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)
