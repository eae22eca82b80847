package mockdata

import (
	"time"

	"github.com/prithvinet/backend/internal/domain"
)

// Alerts returns the standing advisories, timestamped relative to now
func Alerts(now time.Time) []domain.Alert {
	ago := func(minutes int) time.Time { return now.Add(-time.Duration(minutes) * time.Minute) }
	return []domain.Alert{
		{ID: "1", City: "Delhi", Message: "AQI exceeds 180. Avoid outdoor activities.", Severity: domain.SeverityHigh, Timestamp: ago(15)},
		{ID: "2", City: "Lucknow", Message: "PM2.5 levels rising. Health advisory issued.", Severity: domain.SeverityHigh, Timestamp: ago(45)},
		{ID: "3", City: "Kanpur", Message: "Industrial emissions detected above threshold.", Severity: domain.SeverityMedium, Timestamp: ago(90)},
		{ID: "4", City: "Kolkata", Message: "Moderate air quality. Sensitive groups advised caution.", Severity: domain.SeverityMedium, Timestamp: ago(120)},
		{ID: "5", City: "Ahmedabad", Message: "Dust storm warning. AQI may increase.", Severity: domain.SeverityLow, Timestamp: ago(180)},
	}
}

// Products returns the lifecycle-tracked products
func Products() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Electronic Components", Category: "Electronics", LifecycleStage: domain.StageManufacturing, CarbonFootprint: 125, Progress: 35},
		{ID: "2", Name: "Plastic Containers", Category: "Packaging", LifecycleStage: domain.StageDistribution, CarbonFootprint: 45, Progress: 60},
		{ID: "3", Name: "Textile Materials", Category: "Fashion", LifecycleStage: domain.StageUse, CarbonFootprint: 78, Progress: 75},
		{ID: "4", Name: "Metal Alloys", Category: "Industrial", LifecycleStage: domain.StageRawMaterials, CarbonFootprint: 210, Progress: 15},
		{ID: "5", Name: "Glass Products", Category: "Consumer Goods", LifecycleStage: domain.StageEndOfLife, CarbonFootprint: 38, Progress: 95},
	}
}

// MaterialListings returns the marketplace offers
func MaterialListings() []domain.MaterialListing {
	return []domain.MaterialListing{
		{ID: "1", Material: "Recycled Aluminum", Quantity: 500, Unit: "kg", Location: "Mumbai", Price: 85000, Seller: "MetalCycle Industries"},
		{ID: "2", Material: "PET Plastic Flakes", Quantity: 1200, Unit: "kg", Location: "Delhi", Price: 42000, Seller: "GreenPoly Solutions"},
		{ID: "3", Material: "Copper Wire Scrap", Quantity: 300, Unit: "kg", Location: "Pune", Price: 195000, Seller: "E-Waste Handlers"},
		{ID: "4", Material: "Cotton Textile Waste", Quantity: 800, Unit: "kg", Location: "Ahmedabad", Price: 24000, Seller: "Fabric Recyclers Co."},
		{ID: "5", Material: "Glass Cullet", Quantity: 2000, Unit: "kg", Location: "Chennai", Price: 18000, Seller: "Crystal Clear Recycling"},
	}
}

// ConsumerProducts returns consumer items with greener alternatives
func ConsumerProducts() []domain.ConsumerProduct {
	return []domain.ConsumerProduct{
		{ID: "1", Name: "Smartphone XR Pro", SustainabilityScore: 72, Alternatives: []string{"EcoPhone Z1", "GreenTech Mobile"}, RepairSuggestions: []string{"Battery replacement", "Screen repair available"}},
		{ID: "2", Name: "Cotton T-Shirt", SustainabilityScore: 85, Alternatives: []string{"Organic Cotton Tee", "Bamboo Fabric Shirt"}, RepairSuggestions: []string{"Local tailor alterations", "Patch repair kits"}},
		{ID: "3", Name: "Plastic Water Bottle", SustainabilityScore: 35, Alternatives: []string{"Steel Flask", "Glass Bottle", "Bamboo Bottle"}, RepairSuggestions: []string{"Consider switching to reusable"}},
		{ID: "4", Name: "LED Television", SustainabilityScore: 68, Alternatives: []string{"Solar-powered Display", "Refurbished Models"}, RepairSuggestions: []string{"Panel repair services", "Component replacement"}},
	}
}

// Reports returns the report catalog
func Reports() []domain.Report {
	return []domain.Report{
		{ID: "1", Title: "Monthly Air Quality Compliance Report", Type: domain.ReportCompliance, Date: "2026-01-20", Status: domain.ReportGenerated},
		{ID: "2", Title: "Industrial Emissions Analytics Q4", Type: domain.ReportAnalytics, Date: "2026-01-18", Status: domain.ReportGenerated},
		{ID: "3", Title: "Environmental Audit - Northern Region", Type: domain.ReportAudit, Date: "2026-01-15", Status: domain.ReportGenerated},
		{ID: "4", Title: "Weekly Pollution Summary", Type: domain.ReportSummary, Date: "2026-01-14", Status: domain.ReportGenerated},
		{ID: "5", Title: "Sustainability Performance Report", Type: domain.ReportAnalytics, Date: "2026-01-10", Status: domain.ReportGenerated},
		{ID: "6", Title: "February Compliance Assessment", Type: domain.ReportCompliance, Date: "2026-02-01", Status: domain.ReportPending},
	}
}

// HistoricalStats returns the quarterly comparison, newest first
func HistoricalStats() []domain.PeriodStats {
	return []domain.PeriodStats{
		{Period: "Q4 2025", AvgAQI: 142, Compliance: 78},
		{Period: "Q3 2025", AvgAQI: 128, Compliance: 82},
		{Period: "Q2 2025", AvgAQI: 115, Compliance: 85},
		{Period: "Q1 2025", AvgAQI: 135, Compliance: 80},
	}
}

// AwarenessContent returns the public education cards
func AwarenessContent() []domain.AwarenessContent {
	return []domain.AwarenessContent{
		{Title: "Understanding AQI", Description: "Learn what Air Quality Index means and how it affects your health.", Type: "educational"},
		{Title: "Reducing Your Carbon Footprint", Description: "Simple steps to minimize your environmental impact daily.", Type: "tips"},
		{Title: "Circular Economy Benefits", Description: "How recycling and reusing materials helps the environment.", Type: "educational"},
		{Title: "Health Precautions During Poor AQI", Description: "Protective measures when air quality deteriorates.", Type: "health"},
	}
}
