package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/prithvinet/backend/internal/aqi"
	"github.com/prithvinet/backend/internal/domain"
	"github.com/prithvinet/backend/internal/export"
	"github.com/prithvinet/backend/pkg/utils"
)

const forecastDays = 7

// trendThreshold is how far the forecast must move to count as a trend
const trendThreshold = 10

var baseRecommendations = []string{
	"Deploy additional air quality monitoring stations in high-traffic zones.",
	"Implement traffic management during peak pollution hours.",
	"Increase green cover in identified pollution hotspots.",
	"Enforce stricter emission norms for industrial units.",
	"Launch public awareness campaigns on air quality.",
}

// IntelligenceService produces forecasts and recommendations per city
type IntelligenceService struct {
	monitoring *MonitoringService
	ml         *MLBridge
	logger     *zap.Logger
	now        func() time.Time
}

// NewIntelligenceService creates a new intelligence service
func NewIntelligenceService(monitoring *MonitoringService, ml *MLBridge, logger *zap.Logger) *IntelligenceService {
	return &IntelligenceService{
		monitoring: monitoring,
		ml:         ml,
		logger:     logger,
		now:        time.Now,
	}
}

// Insights builds the intelligence view for one city
func (s *IntelligenceService) Insights(ctx context.Context, city string) (domain.Insights, error) {
	reading, err := s.monitoring.Reading(ctx, city)
	if err != nil {
		return domain.Insights{}, err
	}

	forecast, err := s.ml.Forecast(ctx, domain.ForecastRequest{
		City:    city,
		BaseAQI: reading.AQI,
		Days:    forecastDays,
	})
	if err != nil {
		return domain.Insights{}, fmt.Errorf("intelligence: failed to forecast %s: %w", city, err)
	}

	return domain.Insights{
		Reading:         reading,
		Classification:  aqi.Classify(float64(reading.AQI)),
		Forecast:        forecast.Forecast,
		Trend:           ForecastTrend(forecast.Forecast),
		ForecastAverage: ForecastAverage(forecast.Forecast),
		RiskLevel:       aqi.RiskLevelFor(float64(reading.AQI)),
		Recommendations: Recommendations(reading.AQI),
		IsMock:          forecast.IsMock,
		GeneratedAt:     s.now(),
	}, nil
}

// Report renders the downloadable text report and its filename
func (s *IntelligenceService) Report(ctx context.Context, city string) (string, []byte, error) {
	in, err := s.Insights(ctx, city)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("Intelligence report generated",
		zap.String("city", city),
		zap.String("trend", string(in.Trend)),
	)

	return export.IntelligenceFilename(city, in.GeneratedAt), []byte(export.IntelligenceText(in, in.GeneratedAt)), nil
}

// ForecastTrend compares the last forecast day against the first
func ForecastTrend(forecast []domain.ForecastPoint) domain.Trend {
	if len(forecast) == 0 {
		return domain.TrendStable
	}
	first := forecast[0].AQI
	last := forecast[len(forecast)-1].AQI
	switch {
	case last < first-trendThreshold:
		return domain.TrendImproving
	case last > first+trendThreshold:
		return domain.TrendWorsening
	default:
		return domain.TrendStable
	}
}

// ForecastAverage is the rounded mean forecast AQI, 0 for an empty forecast
func ForecastAverage(forecast []domain.ForecastPoint) int {
	if len(forecast) == 0 {
		return 0
	}
	total := 0
	for _, p := range forecast {
		total += p.AQI
	}
	return utils.RoundInt(float64(total) / float64(len(forecast)))
}

// Recommendations returns the action list for an AQI level
func Recommendations(value int) []string {
	switch {
	case value > 150:
		out := []string{
			"URGENT: Issue immediate health advisory for sensitive groups.",
			"Activate emergency response protocols in affected zones.",
		}
		out = append(out, baseRecommendations...)
		return append(out,
			"Consider temporary shutdown of non-essential industrial activities.",
			"Deploy mobile air purification units in critical areas.",
		)
	case value > 100:
		out := []string{"Issue precautionary health advisory for outdoor activities."}
		out = append(out, baseRecommendations...)
		return append(out, "Increase frequency of road cleaning and dust suppression.")
	default:
		return append([]string(nil), baseRecommendations...)
	}
}
