package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/prithvinet/backend/internal/aqi"
	"github.com/prithvinet/backend/internal/domain"
	"github.com/prithvinet/backend/internal/metrics"
	"github.com/prithvinet/backend/internal/session"
)

// SimulationOutcome is a finished run plus its baseline comparison
type SimulationOutcome struct {
	Run             domain.SimulationRun   `json:"run"`
	Comparison      []domain.ComparisonRow `json:"comparison"`
	EmissionsChange domain.EmissionsChange `json:"emissionsChange"`
	Advisory        string                 `json:"advisory"`
}

// ParameterSheet describes the simulator inputs
type ParameterSheet struct {
	Defaults domain.ScenarioParameters `json:"defaults"`
	Bounds   []domain.ParameterBound   `json:"bounds"`
	Baseline domain.ScenarioResult     `json:"baseline"`
}

// SimulatorService runs what-if scenarios and logs them
type SimulatorService struct {
	repo    DataRepository
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time

	wgBg sync.WaitGroup
}

// NewSimulatorService creates a new simulator service
func NewSimulatorService(repo DataRepository, m *metrics.Metrics, logger *zap.Logger) *SimulatorService {
	return &SimulatorService{
		repo:    repo,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// WaitBackground blocks until pending run logs are written
func (s *SimulatorService) WaitBackground() {
	s.wgBg.Wait()
}

// Parameters returns the slider defaults, ranges and baseline figures
func (s *SimulatorService) Parameters() ParameterSheet {
	d := domain.DefaultScenario()
	return ParameterSheet{
		Defaults: d,
		Bounds:   d.Bounds(),
		Baseline: aqi.Baseline(),
	}
}

// Run simulates a scenario. sess is nil for anonymous runs.
func (s *SimulatorService) Run(ctx context.Context, sess *session.Session, params domain.ScenarioParameters) SimulationOutcome {
	result := aqi.Simulate(params)
	run := domain.SimulationRun{
		ID:        uuid.New(),
		Params:    params,
		Result:    result,
		CreatedAt: s.now(),
	}
	if sess != nil {
		run.UserID = sess.User.ID
		run.Role = sess.User.Role
	}

	s.metrics.ObserveSimulation(result.RiskLevel)

	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.repo.SaveSimulation(bgCtx, run); err != nil {
			s.logger.Error("Failed to save simulation run",
				zap.String("run_id", run.ID.String()),
				zap.Error(err),
			)
		}
	}()

	s.logger.Debug("Simulation complete",
		zap.String("run_id", run.ID.String()),
		zap.Int("predicted_aqi", result.PredictedAQI),
		zap.String("risk_level", string(result.RiskLevel)),
	)

	return SimulationOutcome{
		Run:             run,
		Comparison:      aqi.Compare(result),
		EmissionsChange: aqi.EmissionsChange(result.Emissions),
		Advisory:        aqi.Advisory(result.RiskLevel),
	}
}
