package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/prithvinet/backend/internal/domain"
)

// ReportText renders a catalog report download
func ReportText(r domain.Report) string {
	var b strings.Builder
	b.WriteString("PRITHVI-NET Report\n")
	b.WriteString("==================\n")
	fmt.Fprintf(&b, "Title: %s\n", r.Title)
	fmt.Fprintf(&b, "Type: %s\n", r.Type)
	fmt.Fprintf(&b, "Date: %s\n", r.Date)
	fmt.Fprintf(&b, "Status: %s\n", r.Status)
	b.WriteString("\nThis is a sample report content for demonstration purposes.\n")
	b.WriteString("In production, this would contain actual environmental data and analysis.\n")
	return b.String()
}

// IntelligenceText renders the AI insights report for one city
func IntelligenceText(in domain.Insights, generated time.Time) string {
	var b strings.Builder
	b.WriteString("PRITHVI-NET AI Intelligence Report\n")
	fmt.Fprintf(&b, "City: %s\n", in.Reading.City)
	fmt.Fprintf(&b, "Generated: %s\n", generated.Format(time.RFC1123))

	b.WriteString("\n--- Summary ---\n")
	fmt.Fprintf(&b, "Current AQI: %d\n", in.Reading.AQI)
	fmt.Fprintf(&b, "Trend: %s\n", in.Trend)
	fmt.Fprintf(&b, "Risk Level: %s\n", in.RiskLevel)

	fmt.Fprintf(&b, "\n--- %d-Day Forecast ---\n", len(in.Forecast))
	for _, f := range in.Forecast {
		fmt.Fprintf(&b, "%s: AQI %d (Confidence: %d%%)\n", f.Date, f.AQI, f.Confidence)
	}

	b.WriteString("\n--- AI Recommendations ---\n")
	for i, r := range in.Recommendations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}
	return b.String()
}
