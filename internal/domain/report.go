package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidReportType is returned for an unknown report filter
var ErrInvalidReportType = errors.New("invalid report type")

// ReportType categorizes a report
type ReportType string

const (
	ReportCompliance ReportType = "Compliance"
	ReportAnalytics  ReportType = "Analytics"
	ReportAudit      ReportType = "Audit"
	ReportSummary    ReportType = "Summary"
)

// ReportTypeAll disables type filtering
const ReportTypeAll = "All"

// ParseReportType accepts "All" (returned as empty) or a known type
func ParseReportType(s string) (ReportType, error) {
	switch ReportType(s) {
	case ReportCompliance, ReportAnalytics, ReportAudit, ReportSummary:
		return ReportType(s), nil
	}
	if s == "" || s == ReportTypeAll {
		return "", nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidReportType, s)
}

// ReportStatus is the generation state
type ReportStatus string

const (
	ReportGenerated ReportStatus = "Generated"
	ReportPending   ReportStatus = "Pending"
	ReportFailed    ReportStatus = "Failed"
)

// Report is a catalog entry
type Report struct {
	ID     string       `json:"id"`
	Title  string       `json:"title"`
	Type   ReportType   `json:"type"`
	Date   string       `json:"date"`
	Status ReportStatus `json:"status"`
}

// PeriodStats is one row of the historical comparison
type PeriodStats struct {
	Period     string `json:"period"`
	AvgAQI     int    `json:"avgAqi"`
	Compliance int    `json:"compliance"`
}
