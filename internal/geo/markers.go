package geo

import (
	"math"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/prithvinet/backend/internal/aqi"
	"github.com/prithvinet/backend/internal/domain"
	"github.com/prithvinet/backend/pkg/utils"
)

// Marker radius bounds in pixels
const (
	minRadius = 8.0
	maxRadius = 20.0
)

// Radius sizes a map marker by AQI
func Radius(value int) float64 {
	return utils.Clamp(float64(value)/15, minRadius, maxRadius)
}

// Marker builds a GeoJSON point feature for a reading
func Marker(r domain.AirQualityReading) *geojson.Feature {
	c := aqi.Classify(float64(r.AQI))
	return &geojson.Feature{
		ID:       r.City,
		Geometry: geom.NewPointFlat(geom.XY, []float64{r.Lng, r.Lat}),
		Properties: map[string]interface{}{
			"city":      r.City,
			"aqi":       r.AQI,
			"status":    string(c.Status),
			"color":     c.Color,
			"class":     c.Class,
			"radius":    Radius(r.AQI),
			"timestamp": r.Timestamp,
		},
	}
}

// Markers builds the feature collection rendered on the pollution map
func Markers(readings []domain.AirQualityReading) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(readings))}
	for _, r := range readings {
		fc.Features = append(fc.Features, Marker(r))
	}
	return fc
}

// Nearest returns the city closest to a point and its distance in km.
// ok is false when cities is empty.
func Nearest(cities []domain.City, lat, lng float64) (city domain.City, km float64, ok bool) {
	km = math.Inf(1)
	for _, c := range cities {
		d := utils.Haversine(lat, lng, c.Lat, c.Lng)
		if d < km {
			city, km, ok = c, d, true
		}
	}
	if !ok {
		return domain.City{}, 0, false
	}
	return city, utils.RoundTo(km, 1), true
}
