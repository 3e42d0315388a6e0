package utils

import (
	"math"
	"strings"
)

const (
	earthRadiusKm = 6371.0
	// AverageSpeedKmh is the assumed travel speed between stops.
	AverageSpeedKmh = 20.0
)

// Haversine returns the great-circle distance between two points in km.
// Invalid coordinates yield +Inf so distance filters drop the point
// instead of the request failing.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	for _, v := range []float64{lat1, lon1, lat2, lon2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return math.Inf(1)
		}
	}

	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

var categoryTimeMap = map[string]float64{
	"food":        1.5,
	"cafe":        1.5,
	"nature_park": 1.0,
	"lake":        1.0,
	"mall":        2.0,
	"religious":   1.0,
	"other":       1.5,
}

// EstimateVisitTime returns the assumed visit duration in hours for a category.
func EstimateVisitTime(category string) float64 {
	if t, ok := categoryTimeMap[NormalizeCategory(category)]; ok {
		return t
	}
	return 1.5
}

// NormalizeCategory is the single source of truth for category matching.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// NormalizeTag folds a tag or weather-suitability value for comparison.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// NormalizePlaceName lowercases a place name and strips any parenthetical
// qualifier, e.g. "Lalbagh (West Gate)" -> "lalbagh".
func NormalizePlaceName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if i := strings.Index(name, "("); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}
