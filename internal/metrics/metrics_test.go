package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/prithvinet/backend/internal/domain"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveSimulation(domain.RiskMedium)
	m.ObserveSimulation(domain.RiskMedium)
	m.ObserveLogin(domain.RoleCitizen)
	m.ObserveReadings([]domain.AirQualityReading{
		{Status: domain.StatusGood},
		{Status: domain.StatusGood},
		{Status: domain.StatusHazardous},
	})
	m.ObserveRequest("/api/v1/dashboard", "GET", 200, 12*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.simulations.WithLabelValues("Medium")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues("citizen")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.classifications.WithLabelValues("Good")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/v1/dashboard", "GET", "200")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveSimulation(domain.RiskLow)
		m.ObserveLogin(domain.RoleCitizen)
		m.ObserveReadings(nil)
		m.ObserveRequest("/", "GET", 200, time.Millisecond)
	})
}
