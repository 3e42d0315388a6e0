package domain_models

// Place is a read-only row of the places dataset. Loaded once by the
// repository and never mutated; per-request values (distance, score) live on
// ScoredCandidate instead.
type Place struct {
	ID                 string   `json:"place_id"`
	Name               string   `json:"place_name"`
	Category           string   `json:"category"`
	Latitude           float64  `json:"latitude"`
	Longitude          float64  `json:"longitude"`
	BudgetMin          float64  `json:"budget_min"`
	BudgetMax          float64  `json:"budget_max"`
	Tags               []string `json:"tags,omitempty"`
	Vibe               string   `json:"vibe,omitempty"`
	WeatherSuitability []string `json:"weather_suitability,omitempty"`
	PopularityScore    float64  `json:"popularity_score"`
	DataQualityScore   float64  `json:"data_quality_score"`
	IsHiddenGem        bool     `json:"is_hidden_gem"`
	FamousFor          string   `json:"famous_for,omitempty"`
	Area               string   `json:"area,omitempty"`
}

// ScoredCandidate is a Place under consideration for a plan, carrying the
// request-scoped distance and score columns. Recomputed every request.
type ScoredCandidate struct {
	Place        Place
	DistanceKm   float64
	VibeScore    float64
	WeatherScore float64
	FinalScore   float64
	IsHiddenGem  bool
}
