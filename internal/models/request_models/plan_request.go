package request_models

// GeneratePlanRequest is the plan-generation input. Most fields are optional;
// the intent service defaults whatever is missing.
type GeneratePlanRequest struct {
	SessionID          string  `json:"session_id,omitempty"`
	Mood               string  `json:"mood"`
	Budget             float64 `json:"budget,omitempty"`
	BudgetTier         string  `json:"budget_tier,omitempty"`
	TimeAvailable      string  `json:"time_available,omitempty"`
	Message            string  `json:"message,omitempty"`
	Weather            string  `json:"weather,omitempty"`
	PreferredLocation  string  `json:"preferred_location,omitempty"`
	UseCurrentLocation bool    `json:"use_current_location,omitempty"`
	StartLat           float64 `json:"start_lat"`
	StartLon           float64 `json:"start_lon"`
	MaxPlaces          int     `json:"max_places,omitempty"`
}

// SharePlanRequest publishes a session's current plan under a share code.
type SharePlanRequest struct {
	SessionID string `json:"session_id"`
	Title     string `json:"title,omitempty"`
	Mood      string `json:"mood,omitempty"`
}
