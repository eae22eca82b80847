package aqi

import (
	"github.com/prithvinet/backend/internal/domain"
	"github.com/prithvinet/backend/pkg/utils"
)

// Baseline values of the scenario model
const (
	BaseAQI            = 125.0
	BaseEmissions      = 1000.0
	BaseSustainability = 50.0
)

// Output clamps. Inputs are never clamped.
const (
	minPredictedAQI   = 20.0
	maxPredictedAQI   = 300.0
	minSustainability = 0.0
	maxSustainability = 100.0
)

// Simulate applies the fixed linear impact model to the sliders
func Simulate(p domain.ScenarioParameters) domain.ScenarioResult {
	aqiRaw := BaseAQI +
		p.ProductionChange*0.5 -
		p.RenewableEnergy*0.3 +
		p.UrbanExpansion*0.4 -
		p.WasteReduction*0.2
	predicted := utils.RoundInt(utils.Clamp(aqiRaw, minPredictedAQI, maxPredictedAQI))

	emissions := utils.RoundInt(BaseEmissions +
		p.ProductionChange*10 -
		p.RenewableEnergy*5 -
		p.WasteReduction*3)

	sustainabilityRaw := BaseSustainability +
		p.RenewableEnergy*0.5 +
		p.WasteReduction*0.3 -
		p.UrbanExpansion*0.2 -
		p.ProductionChange*0.1
	sustainability := utils.RoundInt(utils.Clamp(sustainabilityRaw, minSustainability, maxSustainability))

	return domain.ScenarioResult{
		PredictedAQI:        predicted,
		Emissions:           emissions,
		SustainabilityScore: sustainability,
		RiskLevel:           RiskLevelFor(float64(predicted)),
	}
}

// RiskLevelFor maps an AQI to Low (<=100), Medium (<=200) or High
func RiskLevelFor(value float64) domain.RiskLevel {
	switch {
	case value <= 100:
		return domain.RiskLow
	case value <= 200:
		return domain.RiskMedium
	default:
		return domain.RiskHigh
	}
}

// Baseline is the unmodified model state the sliders are compared against
func Baseline() domain.ScenarioResult {
	return domain.ScenarioResult{
		PredictedAQI:        int(BaseAQI),
		Emissions:           int(BaseEmissions),
		SustainabilityScore: int(BaseSustainability),
		RiskLevel:           RiskLevelFor(BaseAQI),
	}
}

// Compare lines a result up against the baseline for the comparison chart
func Compare(r domain.ScenarioResult) []domain.ComparisonRow {
	base := Baseline()
	return []domain.ComparisonRow{
		{Name: "AQI", Current: base.PredictedAQI, Predicted: r.PredictedAQI},
		{Name: "Emissions (tons)", Current: base.Emissions, Predicted: r.Emissions},
		{Name: "Sustainability (%)", Current: base.SustainabilityScore, Predicted: r.SustainabilityScore},
	}
}

// EmissionsChange is the percent change of emissions against the baseline
func EmissionsChange(emissions int) domain.EmissionsChange {
	pct := utils.RoundInt((float64(emissions) - BaseEmissions) / BaseEmissions * 100)
	dir := domain.DirectionUp
	if float64(emissions) < BaseEmissions {
		dir = domain.DirectionDown
	}
	return domain.EmissionsChange{Percent: pct, Direction: dir}
}

var advisories = map[domain.RiskLevel]string{
	domain.RiskLow:    "Environmental conditions are projected to be within safe limits.",
	domain.RiskMedium: "Some environmental parameters may exceed safe thresholds. Monitoring recommended.",
	domain.RiskHigh:   "Critical environmental risks detected. Immediate intervention recommended.",
}

// Advisory returns the guidance text shown for a risk level
func Advisory(level domain.RiskLevel) string {
	return advisories[level]
}
