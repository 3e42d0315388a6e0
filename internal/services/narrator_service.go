package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"sanchar/internal/models/domain_models"
	"sanchar/pkg/utils"
)

// NarratorServiceInterface renders a plan into human-readable prose. The LLM
// path is best-effort; the deterministic template below is the contract.
type NarratorServiceInterface interface {
	Narrate(ctx context.Context, intent domain_models.Intent, entries []domain_models.PlanEntry) string
}

type NarratorService struct {
	agent utils.IntentAgentInterface
}

func NewNarratorService(agent utils.IntentAgentInterface) NarratorServiceInterface {
	return &NarratorService{agent: agent}
}

func (n *NarratorService) Narrate(ctx context.Context, intent domain_models.Intent, entries []domain_models.PlanEntry) string {
	if len(entries) == 0 {
		return "We couldn't find suitable places that fit all your constraints right now. " +
			"Try increasing your budget or changing the mood or time."
	}

	if n.agent != nil {
		intentJSON, _ := json.Marshal(intent)
		planJSON, _ := json.Marshal(entries)

		narration, err := n.agent.GenerateNarration(ctx, string(intentJSON), string(planJSON))
		if err == nil && strings.TrimSpace(narration) != "" {
			return narration
		}
		if err != nil {
			log.Printf("Narration collaborator unavailable, using template: %v", err)
		}
	}

	return FallbackNarration(entries)
}

// FallbackNarration is the deterministic template used whenever the narration
// collaborator fails or is not configured.
func FallbackNarration(entries []domain_models.PlanEntry) string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.PlaceName)
	}
	return "We've created a balanced plan featuring " + strings.Join(names, ", ") + ". " +
		"This itinerary is optimized for your time, budget, and mood, " +
		"ensuring a smooth and enjoyable hangout experience."
}
