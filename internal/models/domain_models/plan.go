package domain_models

// PlanEntry is one ordered stop of an itinerary.
type PlanEntry struct {
	PlaceID     string  `json:"place_id"`
	PlaceName   string  `json:"place_name"`
	Category    string  `json:"category"`
	DistanceKm  float64 `json:"distance_km"`
	VisitTimeHr float64 `json:"visit_time_hr"`
	BudgetRange string  `json:"budget_range,omitempty"`
	FamousFor   string  `json:"famous_for,omitempty"`
	Area        string  `json:"area,omitempty"`
	Score       float64 `json:"preference_score,omitempty"`
	MapsURL     string  `json:"maps_url,omitempty"`
}

// PlanSummary aggregates the plan for the response contract.
type PlanSummary struct {
	TotalTimeHr float64 `json:"total_time_hr"`
	BudgetMax   float64 `json:"budget_max"`
}

// Plan is an ordered, time-budget-respecting sequence of places plus its
// narration. Mutated in place by the conversational editor.
type Plan struct {
	Intent           Intent      `json:"intent"`
	Entries          []PlanEntry `json:"optimized_plan"`
	Narration        string      `json:"narration"`
	Summary          PlanSummary `json:"summary"`
	SearchRadiusUsed float64     `json:"search_radius_used,omitempty"`
	TotalPlacesFound int         `json:"total_places_found,omitempty"`
}

// PlaceIDs returns the ids of the plan's entries in order.
func (p *Plan) PlaceIDs() []string {
	ids := make([]string, 0, len(p.Entries))
	for _, e := range p.Entries {
		ids = append(ids, e.PlaceID)
	}
	return ids
}

// RecalculateSummary refreshes the total visit time after an edit.
func (p *Plan) RecalculateSummary() {
	total := 0.0
	for _, e := range p.Entries {
		total += e.VisitTimeHr
	}
	p.Summary.TotalTimeHr = roundTo(total, 1)
	p.Summary.BudgetMax = p.Intent.BudgetMax
}

func roundTo(v float64, decimals int) float64 {
	factor := 1.0
	for i := 0; i < decimals; i++ {
		factor *= 10
	}
	return float64(int(v*factor+0.5)) / factor
}
