// Package mockdata produces range-bounded synthetic readings for the UI.
// All randomness flows through one seeded source so tests get fixed output.
package mockdata

import (
	_ "embed"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/prithvinet/backend/internal/aqi"
	"github.com/prithvinet/backend/internal/domain"
	"github.com/prithvinet/backend/pkg/utils"
)

//go:embed cities.yaml
var citiesYAML []byte

// Defaults for cities without their own profile
const (
	defaultBaseAQI   = 80
	defaultVariation = 20
)

const (
	forecastDays = 7
	trendHours   = 24
)

// Source is what services need from a data generator
type Source interface {
	Cities() []domain.City
	City(name string) (domain.City, bool)
	Readings(now time.Time) []domain.AirQualityReading
	Reading(city string, now time.Time) (domain.AirQualityReading, bool)
	Forecast(baseAQI int, now time.Time) []domain.ForecastPoint
	Trend(baseAQI int, now time.Time) []domain.TrendPoint
	Rankings() []domain.Ranking
}

// CityProfile is a catalog entry
type CityProfile struct {
	domain.City `yaml:",inline"`
	BaseAQI     float64 `yaml:"base_aqi"`
	Variation   float64 `yaml:"variation"`
}

type catalogFile struct {
	Cities []CityProfile `yaml:"cities"`
}

// LoadCatalog parses a YAML city catalog, filling profile defaults
func LoadCatalog(data []byte) ([]CityProfile, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("mockdata: failed to parse city catalog: %w", err)
	}
	if len(f.Cities) == 0 {
		return nil, fmt.Errorf("mockdata: city catalog is empty")
	}
	for i := range f.Cities {
		if f.Cities[i].BaseAQI == 0 {
			f.Cities[i].BaseAQI = defaultBaseAQI
		}
		if f.Cities[i].Variation == 0 {
			f.Cities[i].Variation = defaultVariation
		}
	}
	return f.Cities, nil
}

// Generator is the seeded implementation of Source
type Generator struct {
	mu      sync.Mutex
	rng     *rand.Rand
	catalog []CityProfile
}

// New creates a generator over the embedded catalog. Seed 0 means time-based.
func New(seed int64) (*Generator, error) {
	catalog, err := LoadCatalog(citiesYAML)
	if err != nil {
		return nil, err
	}
	return NewWithCatalog(seed, catalog), nil
}

// NewWithCatalog creates a generator over a caller-supplied catalog
func NewWithCatalog(seed int64, catalog []CityProfile) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng:     rand.New(rand.NewSource(seed)),
		catalog: catalog,
	}
}

// Cities returns the catalog cities in order
func (g *Generator) Cities() []domain.City {
	out := make([]domain.City, 0, len(g.catalog))
	for _, p := range g.catalog {
		out = append(out, p.City)
	}
	return out
}

// City looks a city up by exact name
func (g *Generator) City(name string) (domain.City, bool) {
	for _, p := range g.catalog {
		if p.Name == name {
			return p.City, true
		}
	}
	return domain.City{}, false
}

// Readings generates one reading per catalog city
func (g *Generator) Readings(now time.Time) []domain.AirQualityReading {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]domain.AirQualityReading, 0, len(g.catalog))
	for _, p := range g.catalog {
		out = append(out, g.reading(p, now))
	}
	return out
}

// Reading generates a reading for a single city
func (g *Generator) Reading(city string, now time.Time) (domain.AirQualityReading, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, p := range g.catalog {
		if p.Name == city {
			return g.reading(p, now), true
		}
	}
	return domain.AirQualityReading{}, false
}

// reading must be called with g.mu held
func (g *Generator) reading(p CityProfile, now time.Time) domain.AirQualityReading {
	value := utils.RoundInt(p.BaseAQI + (g.rng.Float64()-0.5)*p.Variation)
	return domain.AirQualityReading{
		City:      p.Name,
		AQI:       value,
		Status:    aqi.StatusFor(float64(value)),
		PM25:      utils.RoundHalfUp(float64(value)*0.6 + g.rng.Float64()*20),
		PM10:      utils.RoundHalfUp(float64(value)*0.9 + g.rng.Float64()*30),
		NO2:       utils.RoundHalfUp(25 + g.rng.Float64()*45),
		SO2:       utils.RoundHalfUp(12 + g.rng.Float64()*28),
		O3:        utils.RoundHalfUp(35 + g.rng.Float64()*55),
		CO:        utils.RoundHalfUp(0.8 + g.rng.Float64()*1.5),
		Lat:       p.Lat,
		Lng:       p.Lng,
		Timestamp: now,
	}
}

// Forecast generates a 7-day outlook drifting around baseAQI
func (g *Generator) Forecast(baseAQI int, now time.Time) []domain.ForecastPoint {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]domain.ForecastPoint, 0, forecastDays)
	for i := 0; i < forecastDays; i++ {
		jitter := (g.rng.Float64() - 0.5) * 30
		step := -3.0
		if g.rng.Float64() > 0.5 {
			step = 3
		}
		out = append(out, domain.ForecastPoint{
			Date:       now.AddDate(0, 0, i).Format("2006-01-02"),
			AQI:        utils.RoundInt(float64(baseAQI) + jitter + float64(i)*step),
			Confidence: utils.RoundInt(95 - float64(i)*5 + g.rng.Float64()*5),
		})
	}
	return out
}

// Trend generates 24 hourly points, oldest first
func (g *Generator) Trend(baseAQI int, now time.Time) []domain.TrendPoint {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]domain.TrendPoint, 0, trendHours)
	for i := trendHours - 1; i >= 0; i-- {
		wave := math.Sin(float64(i)*0.5) * 20
		noise := (g.rng.Float64() - 0.5) * 15
		out = append(out, domain.TrendPoint{
			Time: now.Add(-time.Duration(i) * time.Hour),
			AQI:  utils.RoundInt(float64(baseAQI) + wave + noise),
		})
	}
	return out
}

// Rankings scores the catalog cities for the public leaderboard
func (g *Generator) Rankings() []domain.Ranking {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]domain.Ranking, 0, len(g.catalog))
	for i, p := range g.catalog {
		trend := "down"
		score := utils.RoundInt(85 - float64(i)*3 + g.rng.Float64()*10)
		if g.rng.Float64() > 0.5 {
			trend = "up"
		}
		out = append(out, domain.Ranking{Rank: i + 1, City: p.Name, Score: score, Trend: trend})
	}

	sort.SliceStable(out, func(a, b int) bool { return out[a].Score > out[b].Score })
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
