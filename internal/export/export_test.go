package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/prithvinet/backend/internal/aqi"
	"github.com/prithvinet/backend/internal/domain"
)

var sampleReading = domain.AirQualityReading{
	City: "Delhi", AQI: 190,
	PM25: 120, PM10: 180, NO2: 40, SO2: 20, O3: 60, CO: 2,
}

func TestPollutantCSV(t *testing.T) {
	out, err := PollutantCSV(aqi.Evaluate(sampleReading))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "Metric,Value,Unit,WHO Limit,Status", lines[0])
	assert.Equal(t, "PM2.5,120,ug/m3,15,Danger", lines[1])
	assert.Equal(t, "NO2,40,ug/m3,25,Warning", lines[3])
	assert.Equal(t, "CO,2,mg/m3,4,Safe", lines[6])
}

func TestPollutantXLSX(t *testing.T) {
	out, err := PollutantXLSX("Delhi", aqi.Evaluate(sampleReading))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 8)
	assert.Equal(t, "Delhi", rows[0][0])
	assert.Equal(t, PollutantHeader, rows[1])
	assert.Equal(t, []string{"PM2.5", "120", "ug/m3", "15", "Danger"}, rows[2])
	assert.Equal(t, "CO", rows[7][0])
}

func TestFilenames(t *testing.T) {
	now := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "Delhi_air_quality_2026-01-20.csv", PollutantFilename("Delhi", "csv", now))
	assert.Equal(t, "AI_Report_Pune_2026-01-20.txt", IntelligenceFilename("Pune", now))
	assert.Equal(t, "Weekly_Pollution_Summary.txt", ReportFilename("Weekly  Pollution Summary"))
}

func TestReportText(t *testing.T) {
	out := ReportText(domain.Report{Title: "Weekly Pollution Summary", Type: domain.ReportSummary, Date: "2026-01-14", Status: domain.ReportGenerated})
	assert.Contains(t, out, "Title: Weekly Pollution Summary\n")
	assert.Contains(t, out, "Type: Summary\n")
	assert.Contains(t, out, "Status: Generated\n")
}

func TestIntelligenceText(t *testing.T) {
	in := domain.Insights{
		Reading:         sampleReading,
		Trend:           domain.TrendWorsening,
		RiskLevel:       domain.RiskMedium,
		Forecast:        []domain.ForecastPoint{{Date: "2026-01-20", AQI: 192, Confidence: 97}},
		Recommendations: []string{"First", "Second"},
	}

	out := IntelligenceText(in, time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC))
	assert.Contains(t, out, "City: Delhi\n")
	assert.Contains(t, out, "Current AQI: 190\n")
	assert.Contains(t, out, "Trend: Worsening\n")
	assert.Contains(t, out, "Risk Level: Medium\n")
	assert.Contains(t, out, "2026-01-20: AQI 192 (Confidence: 97%)\n")
	assert.Contains(t, out, "2. Second\n")
}
