package domain

import "time"

// ForecastPoint is one day of the AQI forecast
type ForecastPoint struct {
	Date       string `json:"date"`
	AQI        int    `json:"aqi"`
	Confidence int    `json:"confidence"`
}

// TrendPoint is one hour of AQI history
type TrendPoint struct {
	Time time.Time `json:"time"`
	AQI  int       `json:"aqi"`
}

// Trend is the forecast direction
type Trend string

const (
	TrendImproving Trend = "Improving"
	TrendWorsening Trend = "Worsening"
	TrendStable    Trend = "Stable"
)

// ForecastRequest is sent to the ML service
type ForecastRequest struct {
	City    string `json:"city"`
	BaseAQI int    `json:"base_aqi"`
	Days    int    `json:"days"`
}

// ForecastResponse is the ML service's reply
type ForecastResponse struct {
	Forecast []ForecastPoint `json:"forecast"`
	Model    string          `json:"model,omitempty"`
	IsMock   bool            `json:"is_mock"`
}

// Insights bundles the intelligence view for one city
type Insights struct {
	Reading         AirQualityReading `json:"reading"`
	Classification  Classification    `json:"classification"`
	Forecast        []ForecastPoint   `json:"forecast"`
	Trend           Trend             `json:"trend"`
	ForecastAverage int               `json:"forecastAverage"`
	RiskLevel       RiskLevel         `json:"riskLevel"`
	Recommendations []string          `json:"recommendations"`
	IsMock          bool              `json:"is_mock"`
	GeneratedAt     time.Time         `json:"generated_at"`
}
