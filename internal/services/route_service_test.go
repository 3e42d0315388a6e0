package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanchar/internal/models/domain_models"
)

func scoredAt(id, name, category string, lat, lon float64) domain_models.ScoredCandidate {
	return domain_models.ScoredCandidate{
		Place: domain_models.Place{
			ID: id, Name: name, Category: category,
			Latitude: lat, Longitude: lon,
		},
		FinalScore: 0.8,
	}
}

func TestBuildRouteFirstCandidateAlwaysAdmitted(t *testing.T) {
	r := NewRouteService()

	candidates := []domain_models.ScoredCandidate{
		scoredAt("p1", "Third Wave Coffee", "cafe", 12.9705, 77.5946),
	}

	// 0.01 hours is far below the cafe's 1.5 hour visit time.
	entries := r.BuildRoute(candidates, 12.97, 77.59, 0.01, DefaultMaxStops)
	require.Len(t, entries, 1)
	assert.Equal(t, "p1", entries[0].PlaceID)
}

func TestBuildRouteRespectsTimeBudget(t *testing.T) {
	r := NewRouteService()

	// Cafe about 0.5 km out, park about 2 km further, mall about 10 km away.
	// With 2.0 hours: cafe (1.5h visit) admitted, park (1.0h + travel) does
	// not fit the remaining ~0.5h, mall does not either.
	candidates := []domain_models.ScoredCandidate{
		scoredAt("cafe", "Blue Tokai", "cafe", 12.9745, 77.59),
		scoredAt("park", "Cubbon Park", "nature_park", 12.988, 77.59),
		scoredAt("lake", "Sankey Tank", "lake", 12.975, 77.592),
	}

	entries := r.BuildRoute(candidates, 12.97, 77.59, 2.0, DefaultMaxStops)
	require.NotEmpty(t, entries)
	assert.Equal(t, "cafe", entries[0].PlaceID)

	total := 0.0
	for i, e := range entries {
		if i > 0 {
			total += e.VisitTimeHr
		}
	}
	// Later stops fit within what remained after the first.
	assert.LessOrEqual(t, total, 2.0-1.5+0.01)
}

func TestBuildRouteCapsStops(t *testing.T) {
	r := NewRouteService()

	candidates := make([]domain_models.ScoredCandidate, 0, 6)
	for i := 0; i < 6; i++ {
		candidates = append(candidates, scoredAt(
			string(rune('a'+i)), "Spot "+string(rune('A'+i)), "lake",
			12.97+float64(i)*0.001, 77.59,
		))
	}

	entries := r.BuildRoute(candidates, 12.97, 77.59, 100, DefaultMaxStops)
	assert.LessOrEqual(t, len(entries), DefaultMaxStops)
}

func TestBuildRouteSkipsInvalidCoordinates(t *testing.T) {
	r := NewRouteService()

	bad := scoredAt("bad", "Nowhere", "cafe", math.NaN(), 77.59)
	good := scoredAt("good", "Somewhere", "cafe", 12.9705, 77.5946)

	entries := r.BuildRoute([]domain_models.ScoredCandidate{bad, good}, 12.97, 77.59, 3.0, DefaultMaxStops)
	require.Len(t, entries, 1)
	assert.Equal(t, "good", entries[0].PlaceID)
}

func TestBuildRouteDeduplicatesSamePlace(t *testing.T) {
	r := NewRouteService()

	candidates := []domain_models.ScoredCandidate{
		scoredAt("g1", "Lalbagh (West Gate)", "nature_park", 12.9507, 77.5848),
		scoredAt("g2", "Lalbagh (East Gate)", "nature_park", 12.9500, 77.5900),
	}

	entries := r.BuildRoute(candidates, 12.95, 77.585, 10, DefaultMaxStops)
	require.Len(t, entries, 1)
	assert.Equal(t, "g1", entries[0].PlaceID)
}

func TestBuildRouteEmptyInput(t *testing.T) {
	r := NewRouteService()
	assert.Empty(t, r.BuildRoute(nil, 12.97, 77.59, 3.0, DefaultMaxStops))
}

func TestBuildRouteEntryFields(t *testing.T) {
	r := NewRouteService()

	c := scoredAt("p1", "Third Wave Coffee", "cafe", 12.9705, 77.5946)
	c.Place.BudgetMin = 200
	c.Place.BudgetMax = 500
	c.Place.Area = "MG Road"

	entries := r.BuildRoute([]domain_models.ScoredCandidate{c}, 12.97, 77.59, 3.0, DefaultMaxStops)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, 1.5, e.VisitTimeHr)
	assert.Equal(t, "₹200-500", e.BudgetRange)
	assert.Contains(t, e.MapsURL, "google.com/maps/search")
	assert.Equal(t, 0.8, e.Score)
}

func TestMapsSearchURL(t *testing.T) {
	u := MapsSearchURL("Cubbon Park", "MG Road")
	assert.Contains(t, u, "query=Cubbon+Park+MG+Road")
}
