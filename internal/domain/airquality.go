package domain

import "time"

// AQIStatus is the six-way AQI bucket. The string values are matched
// literally by UI styling, do not change them.
type AQIStatus string

const (
	StatusGood               AQIStatus = "Good"
	StatusModerate           AQIStatus = "Moderate"
	StatusUnhealthySensitive AQIStatus = "Unhealthy for Sensitive Groups"
	StatusUnhealthy          AQIStatus = "Unhealthy"
	StatusVeryUnhealthy      AQIStatus = "Very Unhealthy"
	StatusHazardous          AQIStatus = "Hazardous"
)

// Severity returns the bucket index, 0 for Good through 5 for Hazardous.
// Unknown statuses return -1.
func (s AQIStatus) Severity() int {
	switch s {
	case StatusGood:
		return 0
	case StatusModerate:
		return 1
	case StatusUnhealthySensitive:
		return 2
	case StatusUnhealthy:
		return 3
	case StatusVeryUnhealthy:
		return 4
	case StatusHazardous:
		return 5
	}
	return -1
}

// Classification is the display triple derived from an AQI value
type Classification struct {
	Status AQIStatus `json:"status"`
	Color  string    `json:"color"`
	Class  string    `json:"class"`
}

// Pollutant names a measured pollutant
type Pollutant string

const (
	PM25 Pollutant = "PM2.5"
	PM10 Pollutant = "PM10"
	NO2  Pollutant = "NO2"
	SO2  Pollutant = "SO2"
	O3   Pollutant = "O3"
	CO   Pollutant = "CO"
)

// Pollutants returns the canonical pollutant order
func Pollutants() []Pollutant {
	return []Pollutant{PM25, PM10, NO2, SO2, O3, CO}
}

// AirQualityReading is one city's snapshot
type AirQualityReading struct {
	City      string    `json:"city"`
	AQI       int       `json:"aqi"`
	Status    AQIStatus `json:"status"`
	PM25      float64   `json:"pm25"`
	PM10      float64   `json:"pm10"`
	NO2       float64   `json:"no2"`
	SO2       float64   `json:"so2"`
	O3        float64   `json:"o3"`
	CO        float64   `json:"co"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp"`
}

// Concentration returns the measured value for a pollutant, 0 if unknown
func (r AirQualityReading) Concentration(p Pollutant) float64 {
	switch p {
	case PM25:
		return r.PM25
	case PM10:
		return r.PM10
	case NO2:
		return r.NO2
	case SO2:
		return r.SO2
	case O3:
		return r.O3
	case CO:
		return r.CO
	}
	return 0
}

// ComplianceStatus classifies a concentration against its WHO limit
type ComplianceStatus string

const (
	ComplianceSafe    ComplianceStatus = "Safe"
	ComplianceWarning ComplianceStatus = "Warning"
	ComplianceDanger  ComplianceStatus = "Danger"
)

// PollutantAssessment is one row of the compliance table
type PollutantAssessment struct {
	Name     Pollutant        `json:"name"`
	Value    float64          `json:"value"`
	Unit     string           `json:"unit"`
	WHOLimit float64          `json:"whoLimit"`
	Status   ComplianceStatus `json:"status"`
}

// ComplianceSummary counts assessments per status
type ComplianceSummary struct {
	Safe    int              `json:"safe"`
	Warning int              `json:"warning"`
	Danger  int              `json:"danger"`
	Worst   ComplianceStatus `json:"worst"`
}

// City is a monitored location
type City struct {
	Name  string  `json:"name" yaml:"name"`
	State string  `json:"state" yaml:"state"`
	Lat   float64 `json:"lat" yaml:"lat"`
	Lng   float64 `json:"lng" yaml:"lng"`
}

// AlertSeverity grades an alert
type AlertSeverity string

const (
	SeverityLow    AlertSeverity = "Low"
	SeverityMedium AlertSeverity = "Medium"
	SeverityHigh   AlertSeverity = "High"
)

// Alert is an advisory raised for a city
type Alert struct {
	ID        string        `json:"id"`
	City      string        `json:"city"`
	Message   string        `json:"message"`
	Severity  AlertSeverity `json:"severity"`
	Timestamp time.Time     `json:"timestamp"`
}
