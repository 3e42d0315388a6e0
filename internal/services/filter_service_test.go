package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanchar/internal/models/domain_models"
)

func TestBuildCandidatesNeverEmpty(t *testing.T) {
	f := NewFilterService(NewScoringService())

	// Every place is far below the requested budget band; the relaxed pass
	// still admits them because only the upper bound is enforced.
	places := []domain_models.Place{
		{ID: "a", BudgetMin: 0, BudgetMax: 500, DataQualityScore: 0.9},
		{ID: "b", BudgetMin: 100, BudgetMax: 400, DataQualityScore: 0.9},
	}
	intent := domain_models.Intent{Vibe: []string{"chill"}, BudgetMin: 2000, BudgetMax: 3000, Weather: "clear"}

	out := f.BuildCandidates(places, intent, 12.97, 77.59)
	assert.NotEmpty(t, out)
}

func TestBuildCandidatesQualityFallback(t *testing.T) {
	f := NewFilterService(NewScoringService())
	intent := defaultIntent()

	// All below the strict 0.6 floor, one above the relaxed 0.4 floor.
	places := []domain_models.Place{
		{ID: "low", BudgetMax: 100, DataQualityScore: 0.2},
		{ID: "mid", BudgetMax: 100, DataQualityScore: 0.5},
	}
	out := f.BuildCandidates(places, intent, 12.97, 77.59)
	require.Len(t, out, 1)
	assert.Equal(t, "mid", out[0].Place.ID)

	// All below both floors: the whole pool survives.
	places = []domain_models.Place{
		{ID: "x", BudgetMax: 100, DataQualityScore: 0.1},
		{ID: "y", BudgetMax: 100, DataQualityScore: 0.2},
	}
	out = f.BuildCandidates(places, intent, 12.97, 77.59)
	assert.Len(t, out, 2)
}

func TestBuildCandidatesDeterministicOrdering(t *testing.T) {
	f := NewFilterService(NewScoringService())
	places := bengaluruPlaces()
	intent := defaultIntent()

	first := f.BuildCandidates(places, intent, 12.97, 77.59)
	second := f.BuildCandidates(places, intent, 12.97, 77.59)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Place.ID, second[i].Place.ID)
	}

	// Score descending with distance then id as tie-breaks.
	for i := 1; i < len(first); i++ {
		prev, cur := first[i-1], first[i]
		if prev.FinalScore == cur.FinalScore {
			if prev.DistanceKm == cur.DistanceKm {
				assert.Less(t, prev.Place.ID, cur.Place.ID)
			} else {
				assert.Less(t, prev.DistanceKm, cur.DistanceKm)
			}
		} else {
			assert.Greater(t, prev.FinalScore, cur.FinalScore)
		}
	}
}

func TestBuildCandidatesEmptyInput(t *testing.T) {
	f := NewFilterService(NewScoringService())
	assert.Empty(t, f.BuildCandidates(nil, defaultIntent(), 12.97, 77.59))
}

func TestDiversifyByCategory(t *testing.T) {
	f := NewFilterService(NewScoringService())

	candidates := []domain_models.ScoredCandidate{
		{Place: domain_models.Place{ID: "a", Category: "cafe"}, FinalScore: 0.9},
		{Place: domain_models.Place{ID: "b", Category: "Cafe"}, FinalScore: 0.8},
		{Place: domain_models.Place{ID: "c", Category: "mall"}, FinalScore: 0.7},
	}

	out := f.DiversifyByCategory(candidates)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Place.ID, "highest-scoring entry per category survives")
	assert.Equal(t, "c", out[1].Place.ID)
}

func TestBucketByDistance(t *testing.T) {
	f := NewFilterService(NewScoringService())

	mk := func(id string, dist, score float64) domain_models.ScoredCandidate {
		return domain_models.ScoredCandidate{
			Place:      domain_models.Place{ID: id},
			DistanceKm: dist,
			FinalScore: score,
		}
	}

	candidates := []domain_models.ScoredCandidate{
		mk("near1", 0.3, 0.5),
		mk("near2", 0.5, 0.9),
		mk("near3", 0.7, 0.7),
		mk("mid1", 2.0, 0.6),
		mk("far1", 30.0, 0.4),
		mk("far2", 40.0, 0.3),
	}

	out := f.BucketByDistance(candidates, 2)

	ids := make([]string, 0, len(out))
	for _, c := range out {
		ids = append(ids, c.Place.ID)
	}
	// First band keeps its top 2 by score; candidates past the last band are
	// all kept, after the banded ones.
	assert.Equal(t, []string{"near2", "near3", "mid1", "far1", "far2"}, ids)
}

func TestBucketByDistanceNonPositivePerBand(t *testing.T) {
	f := NewFilterService(NewScoringService())
	candidates := []domain_models.ScoredCandidate{
		{Place: domain_models.Place{ID: "a"}, DistanceKm: 0.5},
	}
	assert.Equal(t, candidates, f.BucketByDistance(candidates, 0))
}
