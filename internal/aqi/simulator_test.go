package aqi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prithvinet/backend/internal/domain"
)

func TestSimulate_Defaults(t *testing.T) {
	got := Simulate(domain.DefaultScenario())

	assert.Equal(t, domain.ScenarioResult{
		PredictedAQI:        132,
		Emissions:           790,
		SustainabilityScore: 61,
		RiskLevel:           domain.RiskMedium,
	}, got)
}

func TestSimulate_SliderExtremes(t *testing.T) {
	got := Simulate(domain.ScenarioParameters{
		ProductionChange: 50,
		RenewableEnergy:  0,
		UrbanExpansion:   200,
		WasteReduction:   0,
	})

	assert.LessOrEqual(t, got.PredictedAQI, 300)
	assert.GreaterOrEqual(t, got.SustainabilityScore, 0)
	assert.Equal(t, 230, got.PredictedAQI)
	assert.Equal(t, 1500, got.Emissions)
	assert.Equal(t, 5, got.SustainabilityScore)
	assert.Equal(t, domain.RiskHigh, got.RiskLevel)
}

func TestSimulate_ClampsOutputsNotInputs(t *testing.T) {
	high := Simulate(domain.ScenarioParameters{UrbanExpansion: 1000})
	assert.Equal(t, 300, high.PredictedAQI)
	assert.Equal(t, 0, high.SustainabilityScore)
	assert.Equal(t, domain.RiskHigh, high.RiskLevel)

	low := Simulate(domain.ScenarioParameters{RenewableEnergy: 500})
	assert.Equal(t, 20, low.PredictedAQI)
	assert.Equal(t, 100, low.SustainabilityScore)
	assert.Equal(t, domain.RiskLow, low.RiskLevel)

	// emissions are never clamped
	assert.Equal(t, -1500, low.Emissions)
}

func TestSimulate_BestCaseSliders(t *testing.T) {
	got := Simulate(domain.ScenarioParameters{
		ProductionChange: -50,
		RenewableEnergy:  100,
		UrbanExpansion:   0,
		WasteReduction:   100,
	})

	assert.Equal(t, 50, got.PredictedAQI)
	assert.Equal(t, -300, got.Emissions)
	assert.Equal(t, 100, got.SustainabilityScore)
	assert.Equal(t, domain.RiskLow, got.RiskLevel)
}

func TestSimulate_Idempotent(t *testing.T) {
	p := domain.ScenarioParameters{ProductionChange: 13, RenewableEnergy: 47, UrbanExpansion: 121, WasteReduction: 9}
	assert.Equal(t, Simulate(p), Simulate(p))
}

func TestRiskLevelFor(t *testing.T) {
	assert.Equal(t, domain.RiskLow, RiskLevelFor(100))
	assert.Equal(t, domain.RiskMedium, RiskLevelFor(101))
	assert.Equal(t, domain.RiskMedium, RiskLevelFor(200))
	assert.Equal(t, domain.RiskHigh, RiskLevelFor(201))
}

func TestCompare(t *testing.T) {
	rows := Compare(Simulate(domain.DefaultScenario()))

	assert.Equal(t, []domain.ComparisonRow{
		{Name: "AQI", Current: 125, Predicted: 132},
		{Name: "Emissions (tons)", Current: 1000, Predicted: 790},
		{Name: "Sustainability (%)", Current: 50, Predicted: 61},
	}, rows)
}

func TestBaseline(t *testing.T) {
	assert.Equal(t, domain.ScenarioResult{
		PredictedAQI:        125,
		Emissions:           1000,
		SustainabilityScore: 50,
		RiskLevel:           domain.RiskMedium,
	}, Baseline())

	for _, row := range Compare(Baseline()) {
		assert.Equal(t, row.Current, row.Predicted, row.Name)
	}
}

func TestEmissionsChange(t *testing.T) {
	tests := []struct {
		emissions int
		want      domain.EmissionsChange
	}{
		{790, domain.EmissionsChange{Percent: -21, Direction: domain.DirectionDown}},
		{1500, domain.EmissionsChange{Percent: 50, Direction: domain.DirectionUp}},
		{1000, domain.EmissionsChange{Percent: 0, Direction: domain.DirectionUp}},
		{995, domain.EmissionsChange{Percent: 0, Direction: domain.DirectionDown}},
		{-300, domain.EmissionsChange{Percent: -130, Direction: domain.DirectionDown}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EmissionsChange(tt.emissions), "emissions=%d", tt.emissions)
	}
}

func TestAdvisory(t *testing.T) {
	assert.Equal(t, "Environmental conditions are projected to be within safe limits.", Advisory(domain.RiskLow))
	assert.Contains(t, Advisory(domain.RiskMedium), "Monitoring recommended")
	assert.Contains(t, Advisory(domain.RiskHigh), "Immediate intervention")
	assert.Empty(t, Advisory(domain.RiskLevel("Unknown")))
}
