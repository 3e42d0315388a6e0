package domain_models

// IntentPreferences are the fixed boolean policy flags of an intent.
type IntentPreferences struct {
	WeatherAdaptive  bool `json:"weather_adaptive"`
	PreferHiddenGems bool `json:"prefer_hidden_gems"`
	AvoidCrowds      bool `json:"avoid_crowds"`
}

// Intent is the fully normalized representation of what the user wants.
// Every field is populated by the intent service; it is immutable afterwards
// except through the conversational editor's explicit merge.
type Intent struct {
	Vibe               []string          `json:"vibe"`
	BudgetMin          float64           `json:"budget_min"`
	BudgetMax          float64           `json:"budget_max"`
	TimeAvailableHours float64           `json:"time_available_hours"`
	PreferredLocation  string            `json:"preferred_location,omitempty"`
	Weather            string            `json:"weather"`
	Preferences        IntentPreferences `json:"preferences"`
}

// PartialIntent is the best-effort guess returned by the extraction
// collaborator. Any field may be missing; the normalizer fills the gaps.
type PartialIntent struct {
	Vibe               []string `json:"vibe,omitempty"`
	BudgetMin          *float64 `json:"budget_min,omitempty"`
	BudgetMax          *float64 `json:"budget_max,omitempty"`
	TimeAvailableHours *float64 `json:"time_available_hours,omitempty"`
	Weather            string   `json:"weather,omitempty"`
}

// PlanInput is the raw, possibly partial user input a plan request starts from.
type PlanInput struct {
	Mood               string
	Budget             float64
	BudgetTier         string
	TimeRange          string
	Message            string
	Weather            string
	PreferredLocation  string
	UseCurrentLocation bool
	StartLat           float64
	StartLon           float64
	MaxPlaces          int
}
