// console/gateway/metrics.go
package gateway

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the gateway's Prometheus collectors; the console serves it
// on /metrics.
var Registry = prometheus.NewRegistry()

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aptmgr_console",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Logical backend requests by final status (0 = transport failure).",
		},
		[]string{"method", "route", "status"},
	)

	attemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aptmgr_console",
			Subsystem: "gateway",
			Name:      "attempts_total",
			Help:      "Individual HTTP attempts, including retries.",
		},
		[]string{"method", "route", "outcome"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aptmgr_console",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Duration of logical backend requests including retry delays.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		},
		[]string{"method", "route"},
	)
)

func init() {
	Registry.MustRegister(requestsTotal, attemptsTotal, requestDuration)
}

func observeAttempt(req *Request, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	attemptsTotal.WithLabelValues(req.Method, RouteLabel(req.URL), outcome).Inc()
}

func observeRequest(req *Request, status int, start time.Time) {
	route := RouteLabel(req.URL)
	requestsTotal.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(req.Method, route).Observe(time.Since(start).Seconds())
}
