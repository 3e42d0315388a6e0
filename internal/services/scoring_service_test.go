package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sanchar/internal/models/domain_models"
)

func TestVibeScore(t *testing.T) {
	s := NewScoringService()

	park := domain_models.Place{Category: "nature_park", Tags: []string{"family"}, Vibe: "chill"}
	mall := domain_models.Place{Category: "mall", Tags: []string{"friends"}, Vibe: "fun"}

	// "chill" expands to nature/park/lake synonyms, matching the park category.
	assert.Equal(t, 1.0, s.VibeScore(park, []string{"chill"}))
	// Tag match via the mood expansion.
	assert.Equal(t, 1.0, s.VibeScore(park, []string{"family"}))
	// A miss still scores 0.5, never 0.
	assert.Equal(t, 0.5, s.VibeScore(mall, []string{"romantic"}))
	// Unknown moods fall through as literal keywords.
	assert.Equal(t, 1.0, s.VibeScore(mall, []string{"mall"}))
}

func TestWeatherScore(t *testing.T) {
	s := NewScoringService()

	indoor := domain_models.Place{WeatherSuitability: []string{"indoor"}}
	sunny := domain_models.Place{WeatherSuitability: []string{"sunny", "clear"}}
	allWeather := domain_models.Place{WeatherSuitability: []string{"all"}}
	unmarked := domain_models.Place{}

	assert.Equal(t, 1.0, s.WeatherScore(sunny, "sunny"))
	assert.Equal(t, 0.9, s.WeatherScore(indoor, "rainy"))
	assert.Equal(t, 0.8, s.WeatherScore(allWeather, "rainy"))
	assert.Equal(t, 0.4, s.WeatherScore(unmarked, "rainy"))
	// Exact match wins over the all-weather fallback.
	both := domain_models.Place{WeatherSuitability: []string{"all", "sunny"}}
	assert.Equal(t, 1.0, s.WeatherScore(both, "sunny"))
}

func TestScoreCompositeWeights(t *testing.T) {
	s := NewScoringService()

	place := domain_models.Place{
		Category:           "cafe",
		Vibe:               "chill",
		WeatherSuitability: []string{"indoor"},
	}
	intent := domain_models.Intent{Vibe: []string{"adventure"}, Weather: "rainy"}

	final, vibe, weather := s.Score(place, intent)
	assert.Equal(t, 0.5, vibe)
	assert.Equal(t, 0.9, weather)
	assert.InDelta(t, 0.6*0.5+0.4*0.9, final, 1e-9)
}

func TestIsValidHiddenGem(t *testing.T) {
	s := NewScoringService()

	gem := domain_models.Place{IsHiddenGem: true, PopularityScore: 5.0}
	tooPopular := domain_models.Place{IsHiddenGem: true, PopularityScore: 8.3}
	atCeiling := domain_models.Place{IsHiddenGem: true, PopularityScore: 8.2}
	unflagged := domain_models.Place{IsHiddenGem: false, PopularityScore: 2.0}

	assert.True(t, s.IsValidHiddenGem(gem))
	assert.True(t, s.IsValidHiddenGem(atCeiling))
	assert.False(t, s.IsValidHiddenGem(tooPopular))
	assert.False(t, s.IsValidHiddenGem(unflagged))
}

func TestIsCuratedHiddenGem(t *testing.T) {
	s := NewScoringService()

	viewpoint := domain_models.Place{
		IsHiddenGem: true, PopularityScore: 4.0,
		Name: "Secret Garden Viewpoint", Category: "nature_park",
	}
	diner := domain_models.Place{
		IsHiddenGem: true, PopularityScore: 4.0,
		Name: "Tucked Away Diner", Category: "food",
	}
	keywordHit := domain_models.Place{
		IsHiddenGem: true, PopularityScore: 4.0,
		Name: "Hilltop Point", Category: "viewpoint",
		FamousFor: "rooftop cafe with a view",
	}

	assert.True(t, s.IsCuratedHiddenGem(viewpoint))
	assert.False(t, s.IsCuratedHiddenGem(diner), "dining categories are excluded")
	assert.False(t, s.IsCuratedHiddenGem(keywordHit), "touristy keywords disqualify")
}

func TestHiddenGemRank(t *testing.T) {
	s := NewScoringService()

	obscure := domain_models.Place{PopularityScore: 3.0, DataQualityScore: 0.9}
	popular := domain_models.Place{PopularityScore: 8.0, DataQualityScore: 0.9}

	assert.InDelta(t, 7.9, s.HiddenGemRank(obscure), 1e-9)
	assert.Greater(t, s.HiddenGemRank(obscure), s.HiddenGemRank(popular))
}
