package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// StatSubmissions counts stat upserts per platform and outcome.
	StatSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stat_submissions_total",
			Help: "Total number of platform stat submissions",
		},
		[]string{"platform", "status"},
	)

	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"status"},
	)
)

// Register adds all collectors to reg. Safe to call once per registry.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{RequestDuration, RequestTotal, StatSubmissions, LoginAttempts} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}
