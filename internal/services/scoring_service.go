package services

import (
	"strings"

	"sanchar/internal/models/domain_models"
	"sanchar/pkg/utils"
)

// Scoring weights. Stable on purpose: tests and the deterministic candidate
// ordering depend on them.
const (
	vibeWeight    = 0.6
	weatherWeight = 0.4

	vibeMatchScore = 1.0
	vibeMissScore  = 0.5

	weatherExactScore  = 1.0
	weatherIndoorScore = 0.9
	weatherAllScore    = 0.8
	weatherMissScore   = 0.4

	hiddenGemPopularityCeiling = 8.2
)

// moodTagMap expands a requested mood into the dataset tags it matches.
var moodTagMap = map[string][]string{
	"chill":    {"solo", "couple", "family", "nature", "park", "lake"},
	"fun":      {"friends", "adventure"},
	"romantic": {"couple"},
	"family":   {"family"},
	"solo":     {"solo"},
}

// curatedGemKeywords disqualify a place from the strict hidden-gem list when
// they appear in its name or famous_for text.
var curatedGemKeywords = []string{
	"restaurant", "cafe", "bistro", "hotel", "temple",
	"brewery", "bar", "pub", "resort",
}

// curatedGemCategories are common dining/food categories excluded from the
// strict hidden-gem list.
var curatedGemCategories = []string{"food", "cafe", "restaurant"}

type ScoringServiceInterface interface {
	Score(place domain_models.Place, intent domain_models.Intent) (final, vibe, weather float64)
	VibeScore(place domain_models.Place, vibes []string) float64
	WeatherScore(place domain_models.Place, weather string) float64
	IsValidHiddenGem(place domain_models.Place) bool
	IsCuratedHiddenGem(place domain_models.Place) bool
	HiddenGemRank(place domain_models.Place) float64
}

type ScoringService struct{}

func NewScoringService() ScoringServiceInterface {
	return &ScoringService{}
}

// Score computes the weighted composite plus sub-scores for explainability.
func (s *ScoringService) Score(place domain_models.Place, intent domain_models.Intent) (float64, float64, float64) {
	vibe := s.VibeScore(place, intent.Vibe)
	weather := s.WeatherScore(place, intent.Weather)
	return vibeWeight*vibe + weatherWeight*weather, vibe, weather
}

// VibeScore matches the expanded mood tags against the place's tags and
// category. A miss still scores 0.5 so vibe alone never empties the pool.
func (s *ScoringService) VibeScore(place domain_models.Place, vibes []string) float64 {
	expanded := make([]string, 0, len(vibes))
	for _, v := range vibes {
		v = utils.NormalizeTag(v)
		if synonyms, ok := moodTagMap[v]; ok {
			expanded = append(expanded, synonyms...)
		} else if v != "" {
			expanded = append(expanded, v)
		}
	}

	category := utils.NormalizeCategory(place.Category)
	vibeText := utils.NormalizeTag(place.Vibe)

	for _, kw := range expanded {
		if strings.Contains(category, kw) || strings.Contains(vibeText, kw) {
			return vibeMatchScore
		}
		for _, tag := range place.Tags {
			if utils.NormalizeTag(tag) == kw {
				return vibeMatchScore
			}
		}
	}

	return vibeMissScore
}

// WeatherScore never returns 0 so adverse weather degrades a place rather
// than excluding it.
func (s *ScoringService) WeatherScore(place domain_models.Place, weather string) float64 {
	weather = utils.NormalizeTag(weather)

	suits := func(tag string) bool {
		for _, w := range place.WeatherSuitability {
			if utils.NormalizeTag(w) == tag {
				return true
			}
		}
		return false
	}

	switch {
	case weather != "" && suits(weather):
		return weatherExactScore
	case weather == "rainy" && suits("indoor"):
		return weatherIndoorScore
	case suits("all") || suits("all-weather"):
		return weatherAllScore
	default:
		return weatherMissScore
	}
}

// IsValidHiddenGem requires the dataset flag plus a popularity ceiling.
func (s *ScoringService) IsValidHiddenGem(place domain_models.Place) bool {
	return place.IsHiddenGem && place.PopularityScore <= hiddenGemPopularityCeiling
}

// IsCuratedHiddenGem further excludes dining categories and touristy keyword
// matches, biasing the discovery feature toward genuinely non-touristy spots.
func (s *ScoringService) IsCuratedHiddenGem(place domain_models.Place) bool {
	if !s.IsValidHiddenGem(place) {
		return false
	}

	category := utils.NormalizeCategory(place.Category)
	for _, c := range curatedGemCategories {
		if strings.Contains(category, c) {
			return false
		}
	}

	text := strings.ToLower(place.Name + " " + place.FamousFor)
	for _, kw := range curatedGemKeywords {
		if strings.Contains(text, kw) {
			return false
		}
	}

	return true
}

// HiddenGemRank rewards low popularity and high data confidence.
func (s *ScoringService) HiddenGemRank(place domain_models.Place) float64 {
	return (10 - place.PopularityScore) + place.DataQualityScore
}
