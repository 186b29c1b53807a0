package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	notificationsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "garden_shop",
			Subsystem: "notifications",
			Name:      "processed_total",
			Help:      "Total number of successfully delivered order notifications",
		},
	)

	notificationsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "garden_shop",
			Subsystem: "notifications",
			Name:      "failed_total",
			Help:      "Total number of failed notification deliveries",
		},
	)

	notificationsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "garden_shop",
			Subsystem: "notifications",
			Name:      "dlq_total",
			Help:      "Total number of notifications written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "garden_shop",
			Subsystem: "notifications",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	notificationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "garden_shop",
			Subsystem: "notifications",
			Name:      "processing_duration_seconds",
			Help:      "Histogram of notification processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	notificationsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "garden_shop",
			Subsystem: "notifications",
			Name:      "in_progress",
			Help:      "Number of notifications currently being processed",
		},
	)
)

var (
	ordersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "garden_shop",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Total number of placed orders",
		},
	)

	stockConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "garden_shop",
			Subsystem: "orders",
			Name:      "stock_conflicts_total",
			Help:      "Total number of orders rejected for insufficient stock",
		},
	)

	statusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "garden_shop",
			Subsystem: "orders",
			Name:      "status_updates_total",
			Help:      "Total number of accepted status updates by resulting status",
		},
		[]string{"status"},
	)

	stockAdjustments = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "garden_shop",
			Subsystem: "stock",
			Name:      "adjustments_total",
			Help:      "Total number of manual stock adjustments by direction",
		},
		[]string{"direction"},
	)

	quotesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "garden_shop",
			Subsystem: "quotes",
			Name:      "created_total",
			Help:      "Total number of created quotes",
		},
	)

	usersRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "garden_shop",
			Subsystem: "users",
			Name:      "registered_total",
			Help:      "Total number of registered customers",
		},
	)

	chatReplies = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "garden_shop",
			Subsystem: "chat",
			Name:      "replies_total",
			Help:      "Total number of assistant replies by intent",
		},
		[]string{"intent"},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		notificationsProcessed,
		notificationsFailed,
		notificationsDLQ,
		commitErrors,
		notificationDuration,
		notificationsInProgress,

		ordersPlaced,
		stockConflicts,
		statusChanges,
		stockAdjustments,
		quotesCreated,
		usersRegistered,
		chatReplies,
	)
}
