package service

import (
	"fmt"
	"strconv"

	"github.com/prithvinet/backend/internal/domain"
	"github.com/prithvinet/backend/internal/export"
	"github.com/prithvinet/backend/internal/mockdata"
)

// ReportListing is the reports page payload
type ReportListing struct {
	Reports    []domain.Report      `json:"reports"`
	Historical []domain.PeriodStats `json:"historical"`
}

// Awareness is the public awareness page payload
type Awareness struct {
	Rankings []domain.Ranking          `json:"rankings"`
	Content  []domain.AwarenessContent `json:"content"`
}

// EconomyService serves the circular economy hub
type EconomyService struct{}

// NewEconomyService creates a new economy service
func NewEconomyService() *EconomyService {
	return &EconomyService{}
}

// Marketplace returns products, listings and consumer guidance
func (s *EconomyService) Marketplace() domain.Marketplace {
	products := mockdata.Products()
	for i := range products {
		products[i].LifecycleProgress = LifecycleProgress(products[i].LifecycleStage)
	}
	consumer := mockdata.ConsumerProducts()

	return domain.Marketplace{
		KPIs: []domain.KPI{
			{Title: "CO2 Saved", Value: "12.5 tons", Badge: "This Month"},
			{Title: "Materials Diverted", Value: "8,450 kg"},
			{Title: "Active Exchanges", Value: "28"},
			{Title: "Reward Points", Value: "2,450", Badge: "Gold Tier"},
			{Title: "Products Tracked", Value: strconv.Itoa(len(consumer))},
		},
		Products:         products,
		Listings:         mockdata.MaterialListings(),
		ConsumerProducts: consumer,
	}
}

// LifecycleProgress is the percentage of the lifecycle a stage has reached.
// Unknown stages report 0.
func LifecycleProgress(stage domain.LifecycleStage) int {
	stages := domain.LifecycleStages()
	for i, st := range stages {
		if st == stage {
			return (i + 1) * 100 / len(stages)
		}
	}
	return 0
}

// ReportService serves the report catalog
type ReportService struct{}

// NewReportService creates a new report service
func NewReportService() *ReportService {
	return &ReportService{}
}

// List filters the catalog by type; "" and "All" return everything
func (s *ReportService) List(reportType string) (ReportListing, error) {
	t, err := domain.ParseReportType(reportType)
	if err != nil {
		return ReportListing{}, err
	}

	reports := []domain.Report{}
	for _, r := range mockdata.Reports() {
		if t == "" || r.Type == t {
			reports = append(reports, r)
		}
	}
	return ReportListing{Reports: reports, Historical: mockdata.HistoricalStats()}, nil
}

// Get looks a report up by id
func (s *ReportService) Get(id string) (domain.Report, error) {
	for _, r := range mockdata.Reports() {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Report{}, fmt.Errorf("%w: %s", ErrReportNotFound, id)
}

// Download renders a report as a text file
func (s *ReportService) Download(id string) (string, []byte, error) {
	r, err := s.Get(id)
	if err != nil {
		return "", nil, err
	}
	return export.ReportFilename(r.Title), []byte(export.ReportText(r)), nil
}

// AwarenessService serves the public awareness page
type AwarenessService struct {
	source mockdata.Source
}

// NewAwarenessService creates a new awareness service
func NewAwarenessService(source mockdata.Source) *AwarenessService {
	return &AwarenessService{source: source}
}

// Content returns the leaderboard and education cards
func (s *AwarenessService) Content() Awareness {
	return Awareness{
		Rankings: s.source.Rankings(),
		Content:  mockdata.AwarenessContent(),
	}
}
