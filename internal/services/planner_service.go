package services

import (
	"context"
	"strings"

	"sanchar/internal/models/domain_models"
	"sanchar/internal/repositories"
	"sanchar/pkg/utils"
)

const (
	initialRadiusKm       = 5.0
	nearbyRadiusKm        = 2.0
	maxRadiusKm           = 50.0
	minCandidatesForStop  = 3
	candidatesPerBand     = 2
	maxConfigurableStops  = 5
	radiusExpansionFactor = 1.5
)

// radiusLadder is the expansion sequence used when a search yields too few
// candidates.
var radiusLadder = []float64{10.0, 20.0, 50.0}

// RebuildOptions parameterize a pipeline re-run from a stored search context.
type RebuildOptions struct {
	ExcludeIDs     map[string]bool
	CategoryFilter string
	Diversify      bool
	Narration      string
}

// PlannerServiceInterface runs the full recommendation pipeline: normalize →
// locate → filter → score → route → narrate.
type PlannerServiceInterface interface {
	GeneratePlan(ctx context.Context, input domain_models.PlanInput) (*domain_models.Plan, domain_models.SearchContext, error)
	// Rebuild re-runs filtering, scoring and routing from a stored search
	// context. Returns the rebuilt plan and the candidate pool size; a zero
	// pool yields a nil plan and the caller decides the degraded response.
	Rebuild(intent domain_models.Intent, search *domain_models.SearchContext, opts RebuildOptions) (*domain_models.Plan, int)
	// NearbyPool is the radius-filtered place set a conversational edit
	// starts from.
	NearbyPool(search *domain_models.SearchContext) []domain_models.Place
}

type PlannerService struct {
	placeRepo repositories.PlaceRepository
	intents   IntentServiceInterface
	filter    FilterServiceInterface
	route     RouteServiceInterface
	narrator  NarratorServiceInterface
	geocode   GeocodeServiceInterface
}

func NewPlannerService(
	placeRepo repositories.PlaceRepository,
	intents IntentServiceInterface,
	filter FilterServiceInterface,
	route RouteServiceInterface,
	narrator NarratorServiceInterface,
	geocode GeocodeServiceInterface,
) PlannerServiceInterface {
	return &PlannerService{
		placeRepo: placeRepo,
		intents:   intents,
		filter:    filter,
		route:     route,
		narrator:  narrator,
		geocode:   geocode,
	}
}

func (p *PlannerService) GeneratePlan(ctx context.Context, input domain_models.PlanInput) (*domain_models.Plan, domain_models.SearchContext, error) {
	if p.placeRepo.Count() == 0 {
		return nil, domain_models.SearchContext{}, utils.ErrDatasetUnavailable
	}

	intent := p.intents.BuildIntent(ctx, input)

	search := domain_models.SearchContext{
		OriginLat: input.StartLat,
		OriginLon: input.StartLon,
		SearchLat: input.StartLat,
		SearchLon: input.StartLon,
		RadiusKm:  initialRadiusKm,
		MaxPlaces: normalizeMaxPlaces(input.MaxPlaces),
	}
	if input.UseCurrentLocation {
		search.RadiusKm = nearbyRadiusKm
	} else if intent.PreferredLocation != "" {
		if lat, lon, ok := p.geocode.Resolve(ctx, intent.PreferredLocation); ok {
			search.SearchLat, search.SearchLon = lat, lon
		}
	}

	nearby := p.NearbyPool(&search)
	for i := 0; len(nearby) < minCandidatesForStop && i < len(radiusLadder); i++ {
		if radiusLadder[i] <= search.RadiusKm {
			continue
		}
		search.RadiusKm = radiusLadder[i]
		nearby = p.NearbyPool(&search)
	}

	plan := &domain_models.Plan{
		Intent:           intent,
		SearchRadiusUsed: search.RadiusKm,
		TotalPlacesFound: len(nearby),
	}

	if len(nearby) == 0 {
		plan.Entries = []domain_models.PlanEntry{}
		plan.Narration = "No places found within the search area. Try expanding your search radius."
		plan.RecalculateSummary()
		return plan, search, nil
	}

	candidates := p.filter.BuildCandidates(nearby, intent, search.OriginLat, search.OriginLon)
	candidates = p.filter.BucketByDistance(candidates, candidatesPerBand)
	candidates = p.filter.DiversifyByCategory(candidates)

	plan.Entries = p.route.BuildRoute(candidates, search.OriginLat, search.OriginLon, intent.TimeAvailableHours, search.MaxPlaces)
	plan.Narration = p.narrator.Narrate(ctx, intent, plan.Entries)
	plan.RecalculateSummary()

	return plan, search, nil
}

func (p *PlannerService) Rebuild(intent domain_models.Intent, search *domain_models.SearchContext, opts RebuildOptions) (*domain_models.Plan, int) {
	pool := make([]domain_models.Place, 0)
	for _, place := range p.NearbyPool(search) {
		if opts.ExcludeIDs[place.ID] {
			continue
		}
		category := utils.NormalizeCategory(place.Category)
		if opts.CategoryFilter != "" {
			// An explicit category request overrides the cumulative denylist.
			if !categoryMatches(category, opts.CategoryFilter) {
				continue
			}
		} else if search.IsExcluded(category) {
			continue
		}
		pool = append(pool, place)
	}

	if len(pool) == 0 {
		return nil, 0
	}

	candidates := p.filter.BuildCandidates(pool, intent, search.OriginLat, search.OriginLon)
	if opts.Diversify {
		candidates = p.filter.BucketByDistance(candidates, candidatesPerBand)
		candidates = p.filter.DiversifyByCategory(candidates)
	}

	plan := &domain_models.Plan{
		Intent:           intent,
		Entries:          p.route.BuildRoute(candidates, search.OriginLat, search.OriginLon, intent.TimeAvailableHours, search.MaxPlaces),
		Narration:        opts.Narration,
		SearchRadiusUsed: search.RadiusKm,
		TotalPlacesFound: len(pool),
	}
	plan.RecalculateSummary()

	return plan, len(pool)
}

func (p *PlannerService) NearbyPool(search *domain_models.SearchContext) []domain_models.Place {
	nearby := make([]domain_models.Place, 0)
	for _, place := range p.placeRepo.All() {
		d := utils.Haversine(search.SearchLat, search.SearchLon, place.Latitude, place.Longitude)
		if d <= search.RadiusKm {
			nearby = append(nearby, place)
		}
	}
	return nearby
}

func normalizeMaxPlaces(n int) int {
	if n <= 0 {
		return DefaultMaxStops
	}
	if n > maxConfigurableStops {
		return maxConfigurableStops
	}
	return n
}

// categoryMatches is a case-insensitive substring match in either direction,
// so "park" finds "nature_park" and "nature park" finds "park".
func categoryMatches(normalizedCategory, filter string) bool {
	filter = utils.NormalizeCategory(filter)
	if filter == "" {
		return false
	}
	return strings.Contains(normalizedCategory, filter) || strings.Contains(filter, normalizedCategory)
}
