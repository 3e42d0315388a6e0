package services

import (
	"context"
	"errors"
	"strings"

	"sanchar/internal/models/domain_models"
)

// fakePlaceRepo is an in-memory PlaceRepository for tests.
type fakePlaceRepo struct {
	places []domain_models.Place
}

func (f *fakePlaceRepo) All() []domain_models.Place { return f.places }
func (f *fakePlaceRepo) Count() int                 { return len(f.places) }

func (f *fakePlaceRepo) ResolveArea(query string) (float64, float64, bool) {
	query = strings.ToLower(query)
	for _, p := range f.places {
		if strings.Contains(strings.ToLower(p.Area), query) {
			return p.Latitude, p.Longitude, true
		}
	}
	return 0, 0, false
}

// fakeGeocode resolves every query to a fixed point, or fails when ok=false.
type fakeGeocode struct {
	lat, lon float64
	ok       bool
}

func (f *fakeGeocode) Resolve(ctx context.Context, placeName string) (float64, float64, bool) {
	return f.lat, f.lon, f.ok
}

// fakeIntentAgent returns canned responses for intent extraction and narration.
type fakeIntentAgent struct {
	intentJSON string
	narration  string
	err        error
}

func (f *fakeIntentAgent) ExtractIntentJSON(ctx context.Context, userInputJSON string) (string, error) {
	return f.intentJSON, f.err
}

func (f *fakeIntentAgent) GenerateNarration(ctx context.Context, intentJSON, planJSON string) (string, error) {
	return f.narration, f.err
}

func (f *fakeIntentAgent) Close() error { return nil }

// fakeClassifier returns a fixed command token.
type fakeClassifier struct {
	token string
	err   error
}

func (f *fakeClassifier) ClassifyCommand(ctx context.Context, message string, placeNames, categories []string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

var errAgentDown = errors.New("agent down")

// bengaluruPlaces is a small dataset clustered around (12.97, 77.59).
// Offsets of 0.01 degrees latitude are roughly 1.1 km.
func bengaluruPlaces() []domain_models.Place {
	return []domain_models.Place{
		{
			ID: "p1", Name: "Third Wave Coffee", Category: "cafe",
			Latitude: 12.9705, Longitude: 77.5946,
			BudgetMin: 200, BudgetMax: 500,
			Tags: []string{"solo", "couple"}, Vibe: "chill",
			WeatherSuitability: []string{"indoor", "all"},
			PopularityScore:    7.0, DataQualityScore: 0.9,
			Area: "MG Road",
		},
		{
			ID: "p2", Name: "Cubbon Park", Category: "nature_park",
			Latitude: 12.9763, Longitude: 77.5929,
			BudgetMin: 0, BudgetMax: 100,
			Tags: []string{"nature", "family"}, Vibe: "chill",
			WeatherSuitability: []string{"sunny", "clear"},
			PopularityScore:    9.0, DataQualityScore: 0.8,
			Area: "MG Road",
		},
		{
			ID: "p3", Name: "Phoenix Mall", Category: "mall",
			Latitude: 12.9950, Longitude: 77.6970,
			BudgetMin: 500, BudgetMax: 2000,
			Tags: []string{"friends"}, Vibe: "fun",
			WeatherSuitability: []string{"indoor"},
			PopularityScore:    8.5, DataQualityScore: 0.95,
			Area: "Whitefield",
		},
		{
			ID: "p4", Name: "Secret Garden Viewpoint", Category: "nature_park",
			Latitude: 12.9650, Longitude: 77.5880,
			BudgetMin: 0, BudgetMax: 50,
			Tags: []string{"solo", "nature"}, Vibe: "chill",
			WeatherSuitability: []string{"clear"},
			PopularityScore:    4.0, DataQualityScore: 0.85,
			IsHiddenGem: true, FamousFor: "sunset views",
			Area: "Basavanagudi",
		},
		{
			ID: "p5", Name: "Ulsoor Lake", Category: "lake",
			Latitude: 12.9810, Longitude: 77.6200,
			BudgetMin: 0, BudgetMax: 100,
			Tags: []string{"couple", "nature"}, Vibe: "romantic",
			WeatherSuitability: []string{"clear", "sunny"},
			PopularityScore:    7.5, DataQualityScore: 0.7,
			Area: "Ulsoor",
		},
	}
}

func defaultIntent() domain_models.Intent {
	return domain_models.Intent{
		Vibe:               []string{"chill"},
		BudgetMin:          0,
		BudgetMax:          1000,
		TimeAvailableHours: 3.0,
		Weather:            "clear",
	}
}

// newTestPlanner wires the real pipeline over the fake repo, with collaborator
// fallbacks active (nil agents).
func newTestPlanner(repo *fakePlaceRepo) PlannerServiceInterface {
	scoring := NewScoringService()
	filter := NewFilterService(scoring)
	return NewPlannerService(
		repo,
		NewIntentService(nil),
		filter,
		NewRouteService(),
		NewNarratorService(nil),
		&fakeGeocode{},
	)
}
