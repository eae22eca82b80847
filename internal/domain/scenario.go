package domain

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel is the simulator's three-way classification
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// ScenarioParameters are the four what-if sliders. Values outside
// the slider bounds are accepted as-is.
type ScenarioParameters struct {
	ProductionChange float64 `json:"productionChange"`
	RenewableEnergy  float64 `json:"renewableEnergy"`
	UrbanExpansion   float64 `json:"urbanExpansion"`
	WasteReduction   float64 `json:"wasteReduction"`
}

// DefaultScenario returns the initial slider positions
func DefaultScenario() ScenarioParameters {
	return ScenarioParameters{
		ProductionChange: 0,
		RenewableEnergy:  30,
		UrbanExpansion:   50,
		WasteReduction:   20,
	}
}

// ParameterBound describes one slider for UI consumers
type ParameterBound struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
	Unit    string  `json:"unit"`
}

// Bounds lists the slider ranges. Informational only.
func (ScenarioParameters) Bounds() []ParameterBound {
	d := DefaultScenario()
	return []ParameterBound{
		{Name: "productionChange", Label: "Production Change", Min: -50, Max: 50, Default: d.ProductionChange, Unit: "%"},
		{Name: "renewableEnergy", Label: "Renewable Energy Adoption", Min: 0, Max: 100, Default: d.RenewableEnergy, Unit: "%"},
		{Name: "urbanExpansion", Label: "Urban Expansion", Min: 0, Max: 200, Default: d.UrbanExpansion, Unit: "area units"},
		{Name: "wasteReduction", Label: "Waste Reduction", Min: 0, Max: 100, Default: d.WasteReduction, Unit: "%"},
	}
}

// ScenarioResult is the simulator output
type ScenarioResult struct {
	PredictedAQI        int       `json:"predictedAqi"`
	Emissions           int       `json:"emissions"`
	SustainabilityScore int       `json:"sustainabilityScore"`
	RiskLevel           RiskLevel `json:"riskLevel"`
}

// Direction is which way a figure moved against the baseline
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// EmissionsChange is the emissions delta against the baseline, in percent
type EmissionsChange struct {
	Percent   int       `json:"percent"`
	Direction Direction `json:"direction"`
}

// ComparisonRow pairs a baseline value with its simulated counterpart
type ComparisonRow struct {
	Name      string `json:"name"`
	Current   int    `json:"current"`
	Predicted int    `json:"predicted"`
}

// SimulationRun is a logged simulator invocation
type SimulationRun struct {
	ID        uuid.UUID          `json:"id"`
	UserID    string             `json:"user_id"`
	Role      Role               `json:"role"`
	Params    ScenarioParameters `json:"params"`
	Result    ScenarioResult     `json:"result"`
	CreatedAt time.Time          `json:"created_at"`
}
