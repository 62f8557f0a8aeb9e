package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "projetflow_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "projetflow_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	NotificationsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "projetflow_notifications_created_total",
		Help: "Assignment notifications written.",
	})

	NotificationPublishFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "projetflow_notification_publish_failures_total",
		Help: "Notification events that could not be published to the broker.",
	})

	UploadedBytesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "projetflow_uploaded_bytes_total",
		Help: "Bytes written to storage by kind (attachment, photo).",
	}, []string{"kind"})
)
