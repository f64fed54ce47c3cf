package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobmarket_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jobmarket_http_request_duration_seconds",
			Help:    "Histogram of response durations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	// ApplicationEvents counts state machine events by kind and resulting status
	ApplicationEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobmarket_application_events_total",
			Help: "Application submissions and status transitions",
		},
		[]string{"kind", "status"},
	)

	NotificationsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobmarket_notifications_created_total",
			Help: "Notification rows written by the fan-out",
		},
		[]string{"status"},
	)

	NotificationDeliveryFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobmarket_notification_delivery_failures_total",
			Help: "Committed notifications the delivery publisher failed to hand off",
		},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestCount,
			RequestDuration,
			ApplicationEvents,
			NotificationsCreated,
			NotificationDeliveryFailures,
		)
	})
}
