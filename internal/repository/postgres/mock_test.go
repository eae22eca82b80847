package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prithvinet/backend/internal/domain"
)

func TestMockRepository_History(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository()
	base := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

	for h := 0; h < 5; h++ {
		require.NoError(t, repo.SaveReadings(ctx, []domain.AirQualityReading{
			{City: "Delhi", AQI: 180 + h, Timestamp: base.Add(time.Duration(h) * time.Hour)},
			{City: "Pune", AQI: 70 + h, Timestamp: base.Add(time.Duration(h) * time.Hour)},
		}))
	}

	got, err := repo.GetHistoricalReadings(ctx, "Delhi", base.Add(time.Hour), base.Add(3*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 183, got[0].AQI, "newest first")
	assert.Equal(t, 181, got[2].AQI)

	none, err := repo.GetHistoricalReadings(ctx, "Atlantis", base, base.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMockRepository_Retention(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository()
	now := time.Now()

	batch := make([]domain.AirQualityReading, 0, mockRetention+10)
	for i := 0; i < mockRetention+10; i++ {
		batch = append(batch, domain.AirQualityReading{City: fmt.Sprintf("c%d", i%3), Timestamp: now})
	}
	require.NoError(t, repo.SaveReadings(ctx, batch))

	repo.mu.RLock()
	assert.Len(t, repo.readings, mockRetention)
	repo.mu.RUnlock()

	got, err := repo.GetHistoricalReadings(ctx, "c0", now.Add(-time.Minute), now.Add(time.Minute))
	require.NoError(t, err)
	assert.Len(t, got, historyLimit)
}

func TestMockRepository_Simulations(t *testing.T) {
	repo := NewMockRepository()
	run := domain.SimulationRun{ID: uuid.New(), Params: domain.DefaultScenario()}

	require.NoError(t, repo.SaveSimulation(context.Background(), run))
	assert.Equal(t, []domain.SimulationRun{run}, repo.Simulations())
	assert.NoError(t, repo.Health(context.Background()))
}

func TestMockRepository_SimulationRetention(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository()

	var last domain.SimulationRun
	for i := 0; i < mockRetention+10; i++ {
		last = domain.SimulationRun{ID: uuid.New()}
		require.NoError(t, repo.SaveSimulation(ctx, last))
	}

	runs := repo.Simulations()
	require.Len(t, runs, mockRetention)
	assert.Equal(t, last.ID, runs[len(runs)-1].ID)
}
