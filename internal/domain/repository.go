package domain

import (
	"context"
	"time"
)

// Dashboard aggregates the overview page
type Dashboard struct {
	AverageAQI      int                 `json:"averageAqi"`
	AverageBadge    string              `json:"averageBadge"`
	CitiesMonitored int                 `json:"citiesMonitored"`
	ActiveAlerts    int                 `json:"activeAlerts"`
	Alerts          []Alert             `json:"alerts"`
	Cities          []ClassifiedReading `json:"cities"`
	Timestamp       time.Time           `json:"timestamp"`
}

// ClassifiedReading pairs a reading with its display classification
type ClassifiedReading struct {
	AirQualityReading
	Classification Classification `json:"classification"`
}

// CityDetail is the monitoring view for one city
type CityDetail struct {
	Reading        AirQualityReading     `json:"reading"`
	Classification Classification        `json:"classification"`
	Pollutants     []PollutantAssessment `json:"pollutants"`
	Compliance     ComplianceSummary     `json:"compliance"`
	Trend          []TrendPoint          `json:"trend"`
}

// Ranking is a city's position on the public leaderboard
type Ranking struct {
	Rank  int    `json:"rank"`
	City  string `json:"city"`
	Score int    `json:"score"`
	Trend string `json:"trend"`
}

// AwarenessContent is an educational card
type AwarenessContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// DataRepository defines the interface for data persistence
// This follows the Dependency Inversion Principle - domain defines the interface
type DataRepository interface {
	// SaveReadings persists a snapshot of city readings
	SaveReadings(ctx context.Context, readings []AirQualityReading) error

	// SaveSimulation persists a simulator run
	SaveSimulation(ctx context.Context, run SimulationRun) error

	// GetHistoricalReadings retrieves readings for a city
	GetHistoricalReadings(ctx context.Context, city string, from, to time.Time) ([]AirQualityReading, error)

	// Health checks database connectivity
	Health(ctx context.Context) error
}
