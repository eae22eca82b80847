package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/prithvinet/backend/internal/domain"
	"github.com/prithvinet/backend/internal/mockdata"
)

// Zero variation keeps readings pinned to the base AQI
func testSource() *mockdata.Generator {
	return mockdata.NewWithCatalog(42, []mockdata.CityProfile{
		{City: domain.City{Name: "Delhi", State: "Delhi", Lat: 28.6139, Lng: 77.2090}, BaseAQI: 210},
		{City: domain.City{Name: "Chennai", State: "Tamil Nadu", Lat: 13.0827, Lng: 80.2707}, BaseAQI: 40},
	})
}

var errRepoDown = errors.New("repository unavailable")

type failingRepo struct{}

func (failingRepo) SaveReadings(context.Context, []domain.AirQualityReading) error { return errRepoDown }
func (failingRepo) SaveSimulation(context.Context, domain.SimulationRun) error { return errRepoDown }
func (failingRepo) Health(context.Context) error { return errRepoDown }
func (failingRepo) GetHistoricalReadings(context.Context, string, time.Time, time.Time) ([]domain.AirQualityReading, error) {
	return nil, errRepoDown
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
