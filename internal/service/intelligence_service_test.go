package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prithvinet/backend/internal/domain"
	"github.com/prithvinet/backend/internal/repository/postgres"
)

func newIntelligence(t *testing.T, mlURL string) *IntelligenceService {
	t.Helper()
	source := testSource()
	monitoring := NewMonitoringService(source, postgres.NewMockRepository(), nil, testLogger())
	t.Cleanup(monitoring.WaitBackground)
	return NewIntelligenceService(monitoring, NewMLBridge(mlURL, source, testLogger()), testLogger())
}

func points(values ...int) []domain.ForecastPoint {
	out := make([]domain.ForecastPoint, 0, len(values))
	for _, v := range values {
		out = append(out, domain.ForecastPoint{AQI: v})
	}
	return out
}

func TestForecastTrend(t *testing.T) {
	tests := []struct {
		name     string
		forecast []domain.ForecastPoint
		want     domain.Trend
	}{
		{"empty", nil, domain.TrendStable},
		{"single", points(150), domain.TrendStable},
		{"improving", points(150, 140, 139), domain.TrendImproving},
		{"exactly ten lower", points(150, 140), domain.TrendStable},
		{"worsening", points(100, 111), domain.TrendWorsening},
		{"exactly ten higher", points(100, 110), domain.TrendStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForecastTrend(tt.forecast))
		})
	}
}

func TestForecastAverage(t *testing.T) {
	assert.Equal(t, 0, ForecastAverage(nil))
	assert.Equal(t, 150, ForecastAverage(points(150)))
	assert.Equal(t, 101, ForecastAverage(points(100, 101)))
	assert.Equal(t, -2, ForecastAverage(points(-2, -3)))
	assert.Equal(t, 120, ForecastAverage(points(110, 120, 130)))
}

func TestRecommendations(t *testing.T) {
	urgent := Recommendations(151)
	require.Len(t, urgent, 9)
	assert.True(t, strings.HasPrefix(urgent[0], "URGENT"))
	assert.Equal(t, "Deploy mobile air purification units in critical areas.", urgent[8])

	precaution := Recommendations(150)
	require.Len(t, precaution, 7)
	assert.Equal(t, "Issue precautionary health advisory for outdoor activities.", precaution[0])

	base := Recommendations(100)
	assert.Equal(t, baseRecommendations, base)

	base[0] = "mutated"
	assert.NotEqual(t, "mutated", Recommendations(50)[0])
}

func TestIntelligenceService_InsightsMock(t *testing.T) {
	svc := newIntelligence(t, "")

	in, err := svc.Insights(context.Background(), "Delhi")
	require.NoError(t, err)

	assert.Equal(t, 210, in.Reading.AQI)
	assert.Equal(t, domain.RiskHigh, in.RiskLevel)
	assert.True(t, in.IsMock)
	assert.Len(t, in.Forecast, 7)
	assert.Len(t, in.Recommendations, 9)
	assert.Equal(t, ForecastTrend(in.Forecast), in.Trend)
	assert.Equal(t, ForecastAverage(in.Forecast), in.ForecastAverage)

	_, err = svc.Insights(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, ErrCityNotFound)
}

func TestIntelligenceService_InsightsFromMLService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.ForecastRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, "Chennai", req.City)
		assert.Equal(t, 40, req.BaseAQI)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.ForecastResponse{
			Forecast: []domain.ForecastPoint{
				{Date: "2026-01-20", AQI: 40, Confidence: 95},
				{Date: "2026-01-21", AQI: 65, Confidence: 90},
			},
			Model: "prophet",
		})
	}))
	defer srv.Close()

	svc := newIntelligence(t, srv.URL)
	in, err := svc.Insights(context.Background(), "Chennai")
	require.NoError(t, err)

	assert.False(t, in.IsMock)
	assert.Equal(t, domain.TrendWorsening, in.Trend)
	assert.Equal(t, 53, in.ForecastAverage)
	assert.Equal(t, domain.RiskLow, in.RiskLevel)
	assert.Len(t, in.Recommendations, 5)
}

func TestIntelligenceService_Report(t *testing.T) {
	svc := newIntelligence(t, "")

	name, body, err := svc.Report(context.Background(), "Delhi")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(name, "AI_Report_Delhi_"))
	assert.True(t, strings.HasSuffix(name, ".txt"))
	assert.Contains(t, string(body), "Current AQI: 210")
	assert.Contains(t, string(body), "Risk Level: High")
	assert.Contains(t, string(body), "1. URGENT")
}
