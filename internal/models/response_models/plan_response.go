package response_models

import "sanchar/internal/models/domain_models"

// PlanResponse is the frontend contract: cards read optimized_plan.
type PlanResponse struct {
	SessionID        string                      `json:"session_id,omitempty"`
	OptimizedPlan    []domain_models.PlanEntry   `json:"optimized_plan"`
	Summary          domain_models.PlanSummary   `json:"summary"`
	Narration        string                      `json:"narration"`
	SearchRadiusUsed float64                     `json:"search_radius_used,omitempty"`
	TotalPlacesFound int                         `json:"total_places_found,omitempty"`
	Intent           domain_models.Intent        `json:"intent"`
	SearchContext    domain_models.SearchContext `json:"search_context,omitempty"`
}

func BuildPlanResponse(sessionID string, plan *domain_models.Plan, search domain_models.SearchContext) PlanResponse {
	entries := plan.Entries
	if entries == nil {
		entries = []domain_models.PlanEntry{}
	}
	return PlanResponse{
		SessionID:        sessionID,
		OptimizedPlan:    entries,
		Summary:          plan.Summary,
		Narration:        plan.Narration,
		SearchRadiusUsed: plan.SearchRadiusUsed,
		TotalPlacesFound: plan.TotalPlacesFound,
		Intent:           plan.Intent,
		SearchContext:    search,
	}
}

type SharedPlanResponse struct {
	ShareCode string                   `json:"share_code"`
	Plan      domain_models.SharedPlan `json:"plan"`
}

type StartChatResponse struct {
	SessionID string `json:"session_id"`
}
