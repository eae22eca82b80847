package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prithvinet/backend/internal/domain"
	"github.com/prithvinet/backend/internal/metrics"
	"github.com/prithvinet/backend/internal/repository/postgres"
)

func TestMonitoringService_Dashboard(t *testing.T) {
	repo := postgres.NewMockRepository()
	svc := NewMonitoringService(testSource(), repo, metrics.New(), testLogger())

	d := svc.Dashboard(context.Background())
	svc.WaitBackground()

	assert.Equal(t, 125, d.AverageAQI)
	assert.Equal(t, "Unhealthy", d.AverageBadge)
	assert.Equal(t, 2, d.CitiesMonitored)
	assert.Equal(t, 2, d.ActiveAlerts)
	assert.Len(t, d.Alerts, 5)
	require.Len(t, d.Cities, 2)
	assert.Equal(t, domain.StatusVeryUnhealthy, d.Cities[0].Classification.Status)
	assert.Equal(t, domain.StatusGood, d.Cities[1].Classification.Status)

	stored, err := svc.History(context.Background(), "Delhi", DefaultHistoryHours)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 210, stored[0].AQI)
}

func TestMonitoringService_CityDetail(t *testing.T) {
	svc := NewMonitoringService(testSource(), postgres.NewMockRepository(), nil, testLogger())

	detail, err := svc.CityDetail(context.Background(), "Delhi")
	require.NoError(t, err)

	assert.Equal(t, "Delhi", detail.Reading.City)
	assert.Equal(t, domain.StatusVeryUnhealthy, detail.Classification.Status)
	require.Len(t, detail.Pollutants, 6)
	assert.Equal(t, domain.PM25, detail.Pollutants[0].Name)
	assert.Len(t, detail.Trend, 24)
	assert.Equal(t, 6, detail.Compliance.Safe+detail.Compliance.Warning+detail.Compliance.Danger)

	_, err = svc.CityDetail(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, ErrCityNotFound)

	// single-city reads are not persisted
	svc.WaitBackground()
	stored, err := svc.History(context.Background(), "Delhi", DefaultHistoryHours)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestMonitoringService_History(t *testing.T) {
	svc := NewMonitoringService(testSource(), postgres.NewMockRepository(), nil, testLogger())

	for _, hours := range []int{0, -1, MaxHistoryHours + 1} {
		_, err := svc.History(context.Background(), "Delhi", hours)
		assert.ErrorIs(t, err, ErrInvalidHours, "hours=%d", hours)
	}

	_, err := svc.History(context.Background(), "Atlantis", 24)
	assert.ErrorIs(t, err, ErrCityNotFound)

	empty, err := svc.History(context.Background(), "Chennai", MaxHistoryHours)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestMonitoringService_RepositoryFailure(t *testing.T) {
	svc := NewMonitoringService(testSource(), failingRepo{}, nil, testLogger())

	readings := svc.Snapshot(context.Background())
	svc.WaitBackground()
	assert.Len(t, readings, 2)

	_, err := svc.History(context.Background(), "Delhi", 24)
	assert.ErrorIs(t, err, errRepoDown)
}

func TestMonitoringService_NearestCity(t *testing.T) {
	svc := NewMonitoringService(testSource(), postgres.NewMockRepository(), nil, testLogger())

	got, err := svc.NearestCity(13.0, 80.2)
	require.NoError(t, err)
	assert.Equal(t, "Chennai", got.City.Name)
	assert.Less(t, got.DistanceKm, 15.0)
	assert.Len(t, svc.Cities(), 2)
}
