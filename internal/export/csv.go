// Package export renders monitoring data and reports as downloadable files.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/prithvinet/backend/internal/domain"
)

// PollutantHeader is the column order of pollutant exports
var PollutantHeader = []string{"Metric", "Value", "Unit", "WHO Limit", "Status"}

// PollutantCSV renders the compliance table as CSV
func PollutantCSV(assessments []domain.PollutantAssessment) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(PollutantHeader); err != nil {
		return nil, fmt.Errorf("export: failed to write csv header: %w", err)
	}
	for _, a := range assessments {
		if err := w.Write(pollutantRow(a)); err != nil {
			return nil, fmt.Errorf("export: failed to write csv row %s: %w", a.Name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func pollutantRow(a domain.PollutantAssessment) []string {
	return []string{
		string(a.Name),
		formatNumber(a.Value),
		a.Unit,
		formatNumber(a.WHOLimit),
		string(a.Status),
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PollutantFilename names a city's export, e.g. Delhi_air_quality_2026-01-20.csv
func PollutantFilename(city, ext string, now time.Time) string {
	return fmt.Sprintf("%s_air_quality_%s.%s", city, now.Format("2006-01-02"), ext)
}

// ReportFilename turns a report title into a file name
func ReportFilename(title string) string {
	return strings.Join(strings.Fields(title), "_") + ".txt"
}

// IntelligenceFilename names the AI report download
func IntelligenceFilename(city string, now time.Time) string {
	return fmt.Sprintf("AI_Report_%s_%s.txt", city, now.Format("2006-01-02"))
}
