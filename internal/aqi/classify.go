// Package aqi holds the pure air-quality scoring functions: AQI bucketing,
// WHO compliance checks and the linear scenario model. Nothing here performs
// I/O or keeps state, and every function is total over float64.
package aqi

import "github.com/prithvinet/backend/internal/domain"

type bucket struct {
	max    float64
	status domain.AQIStatus
	color  string
	class  string
}

// Upper bounds are inclusive, first match wins.
var buckets = []bucket{
	{50, domain.StatusGood, "hsl(145, 60%, 45%)", "aqi-good"},
	{100, domain.StatusModerate, "hsl(45, 90%, 50%)", "aqi-moderate"},
	{150, domain.StatusUnhealthySensitive, "hsl(30, 90%, 50%)", "aqi-unhealthy-sensitive"},
	{200, domain.StatusUnhealthy, "hsl(15, 85%, 50%)", "aqi-unhealthy"},
	{300, domain.StatusVeryUnhealthy, "hsl(340, 70%, 45%)", "aqi-very-unhealthy"},
}

var hazardous = domain.Classification{
	Status: domain.StatusHazardous,
	Color:  "hsl(0, 60%, 40%)",
	Class:  "aqi-hazardous",
}

// Classify maps an AQI value to its status bucket, color token and style class.
// Negative values land in Good; anything above 300 (and NaN) is Hazardous.
func Classify(value float64) domain.Classification {
	for _, b := range buckets {
		if value <= b.max {
			return domain.Classification{Status: b.status, Color: b.color, Class: b.class}
		}
	}
	return hazardous
}

// StatusFor returns only the bucket
func StatusFor(value float64) domain.AQIStatus {
	return Classify(value).Status
}

// ColorFor returns only the color token
func ColorFor(value float64) string {
	return Classify(value).Color
}

// ClassFor returns only the style class
func ClassFor(value float64) string {
	return Classify(value).Class
}

// AllStatuses lists the buckets from best to worst
func AllStatuses() []domain.AQIStatus {
	out := make([]domain.AQIStatus, 0, len(buckets)+1)
	for _, b := range buckets {
		out = append(out, b.status)
	}
	return append(out, hazardous.Status)
}

// Headline is the coarse three-way badge shown next to the average AQI
func Headline(value float64) string {
	switch {
	case value <= 50:
		return string(domain.StatusGood)
	case value <= 100:
		return string(domain.StatusModerate)
	default:
		return string(domain.StatusUnhealthy)
	}
}
