package postgres

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/prithvinet/backend/internal/domain"
)

// mockRetention bounds how many readings and runs the mock keeps
const mockRetention = 5000

// MockRepository implements domain.DataRepository in memory for demo mode
type MockRepository struct {
	mu          sync.RWMutex
	readings    []domain.AirQualityReading
	simulations []domain.SimulationRun
}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

// SaveReadings keeps the most recent readings in memory
func (r *MockRepository) SaveReadings(ctx context.Context, readings []domain.AirQualityReading) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.readings = append(r.readings, readings...)
	if over := len(r.readings) - mockRetention; over > 0 {
		r.readings = append([]domain.AirQualityReading(nil), r.readings[over:]...)
	}
	return nil
}

// SaveSimulation keeps the most recent runs in memory
func (r *MockRepository) SaveSimulation(ctx context.Context, run domain.SimulationRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.simulations = append(r.simulations, run)
	if over := len(r.simulations) - mockRetention; over > 0 {
		r.simulations = append([]domain.SimulationRun(nil), r.simulations[over:]...)
	}
	return nil
}

// GetHistoricalReadings filters stored readings, newest first
func (r *MockRepository) GetHistoricalReadings(ctx context.Context, city string, from, to time.Time) ([]domain.AirQualityReading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.AirQualityReading
	for _, d := range r.readings {
		if d.City != city || d.Timestamp.Before(from) || d.Timestamp.After(to) {
			continue
		}
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > historyLimit {
		out = out[:historyLimit]
	}
	return out, nil
}

// Simulations returns a copy of logged runs
func (r *MockRepository) Simulations() []domain.SimulationRun {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.SimulationRun(nil), r.simulations...)
}

// Health always returns nil in mock mode
func (r *MockRepository) Health(ctx context.Context) error {
	return nil
}
