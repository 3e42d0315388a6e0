package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"sanchar/internal/models/domain_models"
	"sanchar/pkg/utils"
)

const defaultBudgetMax = 1000.0

// budgetTierMap maps coarse budget tiers onto currency ranges.
var budgetTierMap = map[string][2]float64{
	"low":      {0, 300},
	"budget":   {0, 300},
	"medium":   {200, 800},
	"moderate": {200, 800},
	"high":     {500, 2000},
	"premium":  {500, 2000},
}

// gazetteer canonicalizes well-known location substrings so common names
// never need a geocoding network call. Unmatched text leaves the location
// unset and the caller falls back to the request coordinates.
var gazetteer = []struct {
	substring string
	canonical string
}{
	{"mg road", "MG Road, Bengaluru"},
	{"whitefield", "Whitefield, Bengaluru"},
	{"indiranagar", "Indiranagar, Bengaluru"},
	{"koramangala", "Koramangala, Bengaluru"},
	{"rajarajeshwari", "Rajarajeshwari Nagar, Bengaluru"},
	{"rr nagar", "Rajarajeshwari Nagar, Bengaluru"},
	{"banashankari", "Banashankari, Bengaluru"},
	{"jayanagar", "Jayanagar, Bengaluru"},
	{"jp nagar", "JP Nagar, Bengaluru"},
	{"bannerghatta", "Bannerghatta, Bengaluru"},
	{"electronic city", "Electronic City, Bengaluru"},
	{"kanakapura", "Kanakapura Road, Bengaluru"},
}

// IntentServiceInterface merges the extraction collaborator's best-effort
// guess with input defaults into a complete, valid Intent.
type IntentServiceInterface interface {
	BuildIntent(ctx context.Context, input domain_models.PlanInput) domain_models.Intent
	Normalize(input domain_models.PlanInput, guess domain_models.PartialIntent) domain_models.Intent
	CanonicalLocation(raw string) string
}

type IntentService struct {
	agent utils.IntentAgentInterface
}

func NewIntentService(agent utils.IntentAgentInterface) IntentServiceInterface {
	return &IntentService{agent: agent}
}

// BuildIntent consults the extraction collaborator and hard-normalizes its
// output. Collaborator failure or malformed output degrades to pure
// default-based normalization; it never aborts the request.
func (s *IntentService) BuildIntent(ctx context.Context, input domain_models.PlanInput) domain_models.Intent {
	var guess domain_models.PartialIntent

	if s.agent != nil {
		payload, _ := json.Marshal(map[string]interface{}{
			"mood":               input.Mood,
			"budget":             input.Budget,
			"budget_tier":        input.BudgetTier,
			"time_available":     input.TimeRange,
			"message":            input.Message,
			"preferred_location": input.PreferredLocation,
		})

		raw, err := s.agent.ExtractIntentJSON(ctx, string(payload))
		if err != nil {
			log.Printf("Intent extraction unavailable, using defaults: %v", err)
		} else if obj := utils.ExtractFirstJSONObject(raw); obj != "" {
			if err := json.Unmarshal([]byte(obj), &guess); err != nil {
				log.Printf("Intent extraction returned malformed JSON, using defaults: %v", err)
				guess = domain_models.PartialIntent{}
			}
		}
	}

	return s.Normalize(input, guess)
}

// Normalize fills every required field. Output invariants: all numeric fields
// non-negative, budget_max >= budget_min, vibe never empty.
func (s *IntentService) Normalize(input domain_models.PlanInput, guess domain_models.PartialIntent) domain_models.Intent {
	intent := domain_models.Intent{
		Vibe:              guess.Vibe,
		PreferredLocation: s.CanonicalLocation(input.PreferredLocation),
		Weather:           guess.Weather,
		Preferences: domain_models.IntentPreferences{
			WeatherAdaptive:  true,
			PreferHiddenGems: true,
			AvoidCrowds:      false,
		},
	}

	if len(intent.Vibe) == 0 {
		if mood := strings.ToLower(strings.TrimSpace(input.Mood)); mood != "" {
			intent.Vibe = []string{mood}
		} else {
			intent.Vibe = []string{"chill"}
		}
	}

	intent.BudgetMin, intent.BudgetMax = s.resolveBudget(input, guess)
	intent.TimeAvailableHours = s.resolveTime(input, guess)

	if intent.Weather == "" {
		intent.Weather = strings.ToLower(strings.TrimSpace(input.Weather))
	}
	if intent.Weather == "" {
		intent.Weather = "clear"
	}

	return intent
}

func (s *IntentService) resolveBudget(input domain_models.PlanInput, guess domain_models.PartialIntent) (float64, float64) {
	min, max := 0.0, 0.0

	if guess.BudgetMin != nil && *guess.BudgetMin > 0 {
		min = *guess.BudgetMin
	}
	if guess.BudgetMax != nil && *guess.BudgetMax > 0 {
		max = *guess.BudgetMax
	}

	if max == 0 {
		if band, ok := budgetTierMap[strings.ToLower(strings.TrimSpace(input.BudgetTier))]; ok {
			min, max = band[0], band[1]
		}
	}
	if max == 0 && input.Budget > 0 {
		max = input.Budget
	}
	if max == 0 {
		max = defaultBudgetMax
	}
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}

	return min, max
}

// resolveTime maps the textual time-range buckets onto hours. Substring
// matching against a handful of canonical phrases, not NLP.
func (s *IntentService) resolveTime(input domain_models.PlanInput, guess domain_models.PartialIntent) float64 {
	if guess.TimeAvailableHours != nil && *guess.TimeAvailableHours > 0 {
		return *guess.TimeAvailableHours
	}

	switch {
	case strings.Contains(input.TimeRange, "1-2"):
		return 1.5
	case strings.Contains(input.TimeRange, "2-4"):
		return 3.0
	case strings.Contains(input.TimeRange, "4-6"):
		return 5.0
	default:
		return 3.0
	}
}

// CanonicalLocation resolves known location substrings to "Area, City" form.
// Unmatched text is returned as-is for the geocoder to try.
func (s *IntentService) CanonicalLocation(raw string) string {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)
	if lower == "" || lower == "current_location" {
		return ""
	}

	for _, entry := range gazetteer {
		if strings.Contains(lower, entry.substring) {
			return entry.canonical
		}
	}

	return trimmed
}
