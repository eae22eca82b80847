package aqi

import "github.com/prithvinet/backend/internal/domain"

// WHO guideline limits
const (
	LimitPM25 = 15.0
	LimitPM10 = 45.0
	LimitNO2  = 25.0
	LimitSO2  = 40.0
	LimitO3   = 100.0
	LimitCO   = 4.0
)

const (
	unitMicrograms = "ug/m3"
	unitMilligrams = "mg/m3"
)

// Limit returns the WHO limit for a pollutant, 0 if unknown
func Limit(p domain.Pollutant) float64 {
	switch p {
	case domain.PM25:
		return LimitPM25
	case domain.PM10:
		return LimitPM10
	case domain.NO2:
		return LimitNO2
	case domain.SO2:
		return LimitSO2
	case domain.O3:
		return LimitO3
	case domain.CO:
		return LimitCO
	}
	return 0
}

// Unit returns the display unit for a pollutant
func Unit(p domain.Pollutant) string {
	if p == domain.CO {
		return unitMilligrams
	}
	return unitMicrograms
}

// ComplianceFor grades a value against a limit.
// value <= limit is Safe, value <= 2*limit is Warning, above that Danger.
func ComplianceFor(value, limit float64) domain.ComplianceStatus {
	switch {
	case value <= limit:
		return domain.ComplianceSafe
	case value <= limit*2:
		return domain.ComplianceWarning
	default:
		return domain.ComplianceDanger
	}
}

// Assess builds the assessment row for one pollutant
func Assess(p domain.Pollutant, value float64) domain.PollutantAssessment {
	limit := Limit(p)
	return domain.PollutantAssessment{
		Name:     p,
		Value:    value,
		Unit:     Unit(p),
		WHOLimit: limit,
		Status:   ComplianceFor(value, limit),
	}
}

// Evaluate returns six assessments in the order PM2.5, PM10, NO2, SO2, O3, CO
func Evaluate(r domain.AirQualityReading) []domain.PollutantAssessment {
	pollutants := domain.Pollutants()
	out := make([]domain.PollutantAssessment, 0, len(pollutants))
	for _, p := range pollutants {
		out = append(out, Assess(p, r.Concentration(p)))
	}
	return out
}

// Summarize counts statuses and reports the worst one. An empty slice is Safe.
func Summarize(assessments []domain.PollutantAssessment) domain.ComplianceSummary {
	s := domain.ComplianceSummary{Worst: domain.ComplianceSafe}
	for _, a := range assessments {
		switch a.Status {
		case domain.ComplianceSafe:
			s.Safe++
		case domain.ComplianceWarning:
			s.Warning++
			if s.Worst == domain.ComplianceSafe {
				s.Worst = domain.ComplianceWarning
			}
		case domain.ComplianceDanger:
			s.Danger++
			s.Worst = domain.ComplianceDanger
		}
	}
	return s
}
