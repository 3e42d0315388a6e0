package domain_models

import "strings"

// SearchContext carries the search parameters across conversational turns.
// The chat service mutates it (radius expansion, cumulative category
// exclusions) and the session store persists it alongside the plan.
type SearchContext struct {
	OriginLat          float64  `json:"origin_lat"`
	OriginLon          float64  `json:"origin_lon"`
	SearchLat          float64  `json:"search_lat"`
	SearchLon          float64  `json:"search_lon"`
	RadiusKm           float64  `json:"search_radius_km"`
	MaxPlaces          int      `json:"max_places"`
	ExcludedCategories []string `json:"excluded_categories,omitempty"`
}

// IsExcluded reports whether a category matches the cumulative denylist
// (case-insensitive substring match, same rule as the category filters).
func (s *SearchContext) IsExcluded(category string) bool {
	category = strings.ToLower(category)
	for _, ex := range s.ExcludedCategories {
		if ex != "" && strings.Contains(category, strings.ToLower(ex)) {
			return true
		}
	}
	return false
}

// AddExclusion appends a category to the denylist, skipping duplicates.
func (s *SearchContext) AddExclusion(category string) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return
	}
	for _, ex := range s.ExcludedCategories {
		if ex == category {
			return
		}
	}
	s.ExcludedCategories = append(s.ExcludedCategories, category)
}

// RemoveExclusion drops a category from the denylist, if present.
func (s *SearchContext) RemoveExclusion(category string) {
	category = strings.ToLower(strings.TrimSpace(category))
	for i, ex := range s.ExcludedCategories {
		if ex == category {
			s.ExcludedCategories = append(s.ExcludedCategories[:i], s.ExcludedCategories[i+1:]...)
			return
		}
	}
}

// SessionRecord is the per-session state: read and fully rewritten once per
// turn, last-writer-wins. Single-session concurrent writers are out of scope.
type SessionRecord struct {
	SessionID string        `json:"session_id"`
	Intent    Intent        `json:"intent"`
	Plan      *Plan         `json:"plan,omitempty"`
	Search    SearchContext `json:"search_context"`
}
