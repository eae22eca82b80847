package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/prithvinet/backend/internal/domain"
)

// Metrics groups the service's collectors on one registry
type Metrics struct {
	Registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	simulations     *prometheus.CounterVec
	classifications *prometheus.CounterVec
	logins          *prometheus.CounterVec
}

// New registers all collectors on a fresh registry
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "prithvi",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "prithvi",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		simulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "prithvi",
			Name:      "simulations_total",
			Help:      "Scenario simulations by resulting risk level.",
		}, []string{"risk_level"}),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "prithvi",
			Name:      "aqi_classifications_total",
			Help:      "Readings served by AQI status bucket.",
		}, []string{"status"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "prithvi",
			Name:      "logins_total",
			Help:      "Successful logins by role.",
		}, []string{"role"}),
	}

	m.Registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.simulations,
		m.classifications,
		m.logins,
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveRequest records one HTTP request
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveSimulation records one simulator run
func (m *Metrics) ObserveSimulation(risk domain.RiskLevel) {
	if m == nil {
		return
	}
	m.simulations.WithLabelValues(string(risk)).Inc()
}

// ObserveReadings records the status bucket of each served reading
func (m *Metrics) ObserveReadings(readings []domain.AirQualityReading) {
	if m == nil {
		return
	}
	for _, r := range readings {
		m.classifications.WithLabelValues(string(r.Status)).Inc()
	}
}

// ObserveLogin records a successful login
func (m *Metrics) ObserveLogin(role domain.Role) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(string(role)).Inc()
}
