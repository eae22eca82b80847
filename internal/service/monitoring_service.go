package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/prithvinet/backend/internal/aqi"
	"github.com/prithvinet/backend/internal/domain"
	"github.com/prithvinet/backend/internal/geo"
	"github.com/prithvinet/backend/internal/metrics"
	"github.com/prithvinet/backend/internal/mockdata"
	"github.com/prithvinet/backend/pkg/utils"
)

const (
	DefaultHistoryHours = 24
	MaxHistoryHours     = 720
)

// NearestResult is a map click resolved to a monitored city
type NearestResult struct {
	City       domain.City `json:"city"`
	DistanceKm float64     `json:"distance_km"`
}

// MonitoringService serves live readings and persists every snapshot
type MonitoringService struct {
	source  mockdata.Source
	repo    DataRepository
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time

	wgBg sync.WaitGroup // tracks background goroutines for graceful shutdown
}

// NewMonitoringService creates a new monitoring service
func NewMonitoringService(
	source mockdata.Source,
	repo DataRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *MonitoringService {
	return &MonitoringService{
		source:  source,
		repo:    repo,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// WaitBackground blocks until all background save goroutines complete.
// Call during graceful shutdown to avoid dropped writes.
func (s *MonitoringService) WaitBackground() {
	s.wgBg.Wait()
}

// Snapshot generates readings for every city and persists them asynchronously
func (s *MonitoringService) Snapshot(ctx context.Context) []domain.AirQualityReading {
	readings := s.source.Readings(s.now())
	s.metrics.ObserveReadings(readings)

	// Persist data to database asynchronously (tracked for graceful shutdown)
	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.repo.SaveReadings(bgCtx, readings); err != nil {
			s.logger.Error("Failed to save readings",
				zap.Int("count", len(readings)),
				zap.Error(err),
			)
		}
	}()

	return readings
}

// Reading returns the current reading for one city. Only full
// snapshots are persisted.
func (s *MonitoringService) Reading(ctx context.Context, city string) (domain.AirQualityReading, error) {
	r, ok := s.source.Reading(city, s.now())
	if !ok {
		return domain.AirQualityReading{}, fmt.Errorf("%w: %s", ErrCityNotFound, city)
	}
	return r, nil
}

// Cities lists the monitored cities
func (s *MonitoringService) Cities() []domain.City {
	return s.source.Cities()
}

// CityDetail builds the monitoring view for one city
func (s *MonitoringService) CityDetail(ctx context.Context, city string) (domain.CityDetail, error) {
	reading, err := s.Reading(ctx, city)
	if err != nil {
		return domain.CityDetail{}, err
	}

	pollutants := aqi.Evaluate(reading)
	return domain.CityDetail{
		Reading:        reading,
		Classification: aqi.Classify(float64(reading.AQI)),
		Pollutants:     pollutants,
		Compliance:     aqi.Summarize(pollutants),
		Trend:          s.source.Trend(reading.AQI, s.now()),
	}, nil
}

// Dashboard aggregates the overview page
func (s *MonitoringService) Dashboard(ctx context.Context) domain.Dashboard {
	now := s.now()
	readings := s.Snapshot(ctx)
	alerts := mockdata.Alerts(now)

	cities := make([]domain.ClassifiedReading, 0, len(readings))
	total := 0
	for _, r := range readings {
		total += r.AQI
		cities = append(cities, domain.ClassifiedReading{
			AirQualityReading: r,
			Classification:    aqi.Classify(float64(r.AQI)),
		})
	}

	avg := 0
	if len(readings) > 0 {
		avg = utils.RoundInt(float64(total) / float64(len(readings)))
	}

	active := 0
	for _, a := range alerts {
		if a.Severity == domain.SeverityHigh {
			active++
		}
	}

	return domain.Dashboard{
		AverageAQI:      avg,
		AverageBadge:    aqi.Headline(float64(avg)),
		CitiesMonitored: len(readings),
		ActiveAlerts:    active,
		Alerts:          alerts,
		Cities:          cities,
		Timestamp:       now,
	}
}

// NearestCity resolves a coordinate to the closest monitored city
func (s *MonitoringService) NearestCity(lat, lng float64) (NearestResult, error) {
	city, km, ok := geo.Nearest(s.source.Cities(), lat, lng)
	if !ok {
		return NearestResult{}, ErrCityNotFound
	}
	return NearestResult{City: city, DistanceKm: km}, nil
}

// History returns stored readings for the last hours, newest first
func (s *MonitoringService) History(ctx context.Context, city string, hours int) ([]domain.AirQualityReading, error) {
	if hours < 1 || hours > MaxHistoryHours {
		return nil, ErrInvalidHours
	}
	if _, ok := s.source.City(city); !ok {
		return nil, fmt.Errorf("%w: %s", ErrCityNotFound, city)
	}

	to := s.now()
	from := to.Add(-time.Duration(hours) * time.Hour)
	readings, err := s.repo.GetHistoricalReadings(ctx, city, from, to)
	if err != nil {
		return nil, fmt.Errorf("monitoring: failed to load history: %w", err)
	}
	if readings == nil {
		readings = []domain.AirQualityReading{}
	}
	return readings, nil
}
