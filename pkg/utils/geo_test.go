package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineZeroDistance(t *testing.T) {
	assert.InDelta(t, 0, Haversine(12.9716, 77.5946, 12.9716, 77.5946), 1e-9)
}

func TestHaversineSymmetry(t *testing.T) {
	a := Haversine(12.9716, 77.5946, 12.9352, 77.6245)
	b := Haversine(12.9352, 77.6245, 12.9716, 77.5946)
	assert.InDelta(t, a, b, 1e-9)
	assert.Greater(t, a, 0.0)
}

func TestHaversineKnownDistance(t *testing.T) {
	// Cubbon Park to Lalbagh is roughly 4 km.
	d := Haversine(12.9763, 77.5929, 12.9507, 77.5848)
	assert.InDelta(t, 3.0, d, 1.0)
}

func TestHaversineInvalidCoordinates(t *testing.T) {
	assert.True(t, math.IsInf(Haversine(math.NaN(), 77.59, 12.97, 77.59), 1))
	assert.True(t, math.IsInf(Haversine(12.97, 77.59, math.Inf(1), 77.59), 1))
}

func TestEstimateVisitTime(t *testing.T) {
	tests := []struct {
		category string
		want     float64
	}{
		{"food", 1.5},
		{"Cafe", 1.5},
		{"nature_park", 1.0},
		{"lake", 1.0},
		{"mall", 2.0},
		{"religious", 1.0},
		{"museum", 1.5},
		{"", 1.5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateVisitTime(tt.category), "category %q", tt.category)
	}
}

func TestNormalizePlaceName(t *testing.T) {
	assert.Equal(t, "lalbagh", NormalizePlaceName("Lalbagh (West Gate)"))
	assert.Equal(t, "cubbon park", NormalizePlaceName("  Cubbon Park "))
	assert.Equal(t, "", NormalizePlaceName("   "))
}
