package metrics

import (
	"net/http"
	"strconv"
	"time"

	"Airframe/internal/httpx"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Requests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airframe_requests_total",
			Help: "Total number of tool requests by status code",
		},
		[]string{"tool", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "airframe_request_duration_seconds",
			Help:    "Duration of tool requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"tool"},
	)

	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airframe_recommendations_total",
			Help: "Recommendations served per mission type",
		},
		[]string{"mission_type", "available"},
	)

	FlightTimeWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "airframe_flight_time_warnings_total",
			Help: "Recommendations that carried the high flight time warning",
		},
	)
)

// Instrument counts and times every call of next under the given tool label.
func Instrument(tool string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := httpx.NewStatusWriter(w)
		next(sw, r)
		Requests.WithLabelValues(tool, strconv.Itoa(sw.Status)).Inc()
		RequestDuration.WithLabelValues(tool).Observe(time.Since(start).Seconds())
	}
}

// ObserveRecommendation records one served recommendation.
func ObserveRecommendation(missionType string, available, warned bool) {
	if !available {
		missionType = "unknown"
	}
	Recommendations.WithLabelValues(missionType, strconv.FormatBool(available)).Inc()
	if warned {
		FlightTimeWarnings.Inc()
	}
}
