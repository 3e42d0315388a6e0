package services

import (
	"context"
	"math"
	"sort"

	"sanchar/internal/models/domain_models"
	"sanchar/internal/repositories"
	"sanchar/pkg/utils"
)

const (
	gemFirstPassRadiusKm  = 5.0
	gemSecondPassRadiusKm = 20.0
	gemResultLimit        = 5
)

// HiddenGem is a curated discovery result.
type HiddenGem struct {
	Place      domain_models.Place `json:"place"`
	DistanceKm float64             `json:"distance_km"`
	HiddenRank float64             `json:"hidden_rank"`
}

// HiddenGemServiceInterface finds genuinely non-touristy places near a named
// location.
type HiddenGemServiceInterface interface {
	Explore(ctx context.Context, preferredLocation string) ([]HiddenGem, error)
}

type HiddenGemService struct {
	placeRepo repositories.PlaceRepository
	scoring   ScoringServiceInterface
	geocode   GeocodeServiceInterface
}

func NewHiddenGemService(
	placeRepo repositories.PlaceRepository,
	scoring ScoringServiceInterface,
	geocode GeocodeServiceInterface,
) HiddenGemServiceInterface {
	return &HiddenGemService{
		placeRepo: placeRepo,
		scoring:   scoring,
		geocode:   geocode,
	}
}

// Explore runs a 5 km pass, widening to 20 km when the first comes back
// empty, and returns the top 5 curated gems ranked by hidden rank then
// distance. An unresolvable location yields an empty result, not an error.
func (h *HiddenGemService) Explore(ctx context.Context, preferredLocation string) ([]HiddenGem, error) {
	if preferredLocation == "" {
		return []HiddenGem{}, nil
	}

	lat, lon, ok := h.geocode.Resolve(ctx, preferredLocation)
	if !ok {
		return []HiddenGem{}, nil
	}

	results := h.findWithin(lat, lon, gemFirstPassRadiusKm)
	if len(results) == 0 {
		results = h.findWithin(lat, lon, gemSecondPassRadiusKm)
	}

	if len(results) > gemResultLimit {
		results = results[:gemResultLimit]
	}
	return results, nil
}

func (h *HiddenGemService) findWithin(lat, lon, radiusKm float64) []HiddenGem {
	results := make([]HiddenGem, 0)

	for _, place := range h.placeRepo.All() {
		if !h.scoring.IsCuratedHiddenGem(place) {
			continue
		}

		dist := utils.Haversine(lat, lon, place.Latitude, place.Longitude)
		if dist > radiusKm {
			continue
		}

		results = append(results, HiddenGem{
			Place:      place,
			DistanceKm: math.Round(dist*100) / 100,
			HiddenRank: h.scoring.HiddenGemRank(place),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].HiddenRank != results[j].HiddenRank {
			return results[i].HiddenRank > results[j].HiddenRank
		}
		return results[i].DistanceKm < results[j].DistanceKm
	})

	return results
}
