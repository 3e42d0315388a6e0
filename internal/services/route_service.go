package services

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"sanchar/internal/models/domain_models"
	"sanchar/pkg/utils"
)

// DefaultMaxStops caps a generated route; session modes may raise it to 5.
const DefaultMaxStops = 3

// RouteServiceInterface turns an ordered candidate set into an itinerary.
type RouteServiceInterface interface {
	BuildRoute(candidates []domain_models.ScoredCandidate, originLat, originLon, timeAvailableHours float64, maxStops int) []domain_models.PlanEntry
}

type RouteService struct{}

func NewRouteService() RouteServiceInterface {
	return &RouteService{}
}

// BuildRoute greedily walks the candidates in their given order, tracking the
// current position and the remaining time budget. The first candidate is
// always admitted so even a tiny budget yields a non-empty plan; every later
// candidate must fit travel + visit time. Single pass, no backtracking: this
// trades optimality for determinism, deliberately (no TSP here).
func (r *RouteService) BuildRoute(
	candidates []domain_models.ScoredCandidate,
	originLat, originLon, timeAvailableHours float64,
	maxStops int,
) []domain_models.PlanEntry {
	if len(candidates) == 0 {
		return nil
	}
	if maxStops <= 0 {
		maxStops = DefaultMaxStops
	}

	var selected []domain_models.PlanEntry
	remaining := timeAvailableHours
	curLat, curLon := originLat, originLon

	for _, c := range candidates {
		if len(selected) >= maxStops {
			break
		}

		dist := utils.Haversine(curLat, curLon, c.Place.Latitude, c.Place.Longitude)
		if math.IsInf(dist, 1) {
			continue
		}

		visitTime := utils.EstimateVisitTime(c.Place.Category)
		travelTime := dist / utils.AverageSpeedKmh
		totalTime := visitTime + travelTime

		if len(selected) > 0 && remaining < totalTime {
			continue
		}

		selected = append(selected, domain_models.PlanEntry{
			PlaceID:     c.Place.ID,
			PlaceName:   c.Place.Name,
			Category:    c.Place.Category,
			DistanceKm:  roundKm(dist),
			VisitTimeHr: visitTime,
			BudgetRange: fmt.Sprintf("₹%.0f-%.0f", c.Place.BudgetMin, c.Place.BudgetMax),
			FamousFor:   c.Place.FamousFor,
			Area:        c.Place.Area,
			Score:       c.FinalScore,
			MapsURL:     MapsSearchURL(c.Place.Name, c.Place.Area),
		})

		remaining -= totalTime
		curLat, curLon = c.Place.Latitude, c.Place.Longitude
	}

	return dedupeEntries(selected)
}

// dedupeEntries drops later stops whose category and normalized name match an
// earlier stop, e.g. two gates of the same park.
func dedupeEntries(entries []domain_models.PlanEntry) []domain_models.PlanEntry {
	type key struct{ category, name string }
	seen := make(map[key]bool, len(entries))
	out := entries[:0]
	for _, e := range entries {
		k := key{
			category: utils.NormalizeCategory(e.Category),
			name:     utils.NormalizePlaceName(e.PlaceName),
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, e)
	}
	return out
}

// MapsSearchURL builds a Google Maps search link for a place.
func MapsSearchURL(name, area string) string {
	query := strings.ReplaceAll(strings.TrimSpace(name+" "+area), " ", "+")
	return "https://www.google.com/maps/search/?api=1&query=" + url.PathEscape(query)
}

func roundKm(v float64) float64 {
	return math.Round(v*100) / 100
}
