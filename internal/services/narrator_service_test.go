package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"sanchar/internal/models/domain_models"
)

func TestNarrateEmptyPlan(t *testing.T) {
	n := NewNarratorService(nil)

	out := n.Narrate(context.Background(), defaultIntent(), nil)
	assert.Contains(t, out, "couldn't find suitable places")
}

func TestNarrateUsesAgent(t *testing.T) {
	n := NewNarratorService(&fakeIntentAgent{narration: "A lovely evening awaits."})

	out := n.Narrate(context.Background(), defaultIntent(), []domain_models.PlanEntry{
		{PlaceName: "Cubbon Park"},
	})
	assert.Equal(t, "A lovely evening awaits.", out)
}

func TestNarrateFallsBackOnAgentFailure(t *testing.T) {
	n := NewNarratorService(&fakeIntentAgent{err: errAgentDown})

	entries := []domain_models.PlanEntry{
		{PlaceName: "Cubbon Park"},
		{PlaceName: "Third Wave Coffee"},
	}
	out := n.Narrate(context.Background(), defaultIntent(), entries)
	assert.Equal(t, FallbackNarration(entries), out)
}

func TestFallbackNarrationTemplate(t *testing.T) {
	out := FallbackNarration([]domain_models.PlanEntry{
		{PlaceName: "Cubbon Park"},
		{PlaceName: "Ulsoor Lake"},
	})
	assert.Contains(t, out, "We've created a balanced plan featuring Cubbon Park, Ulsoor Lake.")
	assert.Contains(t, out, "smooth and enjoyable hangout experience")
}
