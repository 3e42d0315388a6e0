package services

import (
	"sort"

	"sanchar/internal/models/domain_models"
	"sanchar/pkg/utils"
)

const (
	budgetRelaxFactor   = 1.5
	qualityFloorStrict  = 0.6
	qualityFloorRelaxed = 0.4
)

// distanceBands partition candidates by distance from the origin so picks do
// not all cluster at minimum distance. Upper bounds in km.
var distanceBands = []float64{0.8, 1.5, 3.0, 6.0, 10.0}

// FilterServiceInterface produces a non-empty, scored, deterministically
// ordered candidate set. Emptiness is a contract failure: the graduated
// fallback guarantees at least the full table for a non-empty input.
type FilterServiceInterface interface {
	BuildCandidates(places []domain_models.Place, intent domain_models.Intent, originLat, originLon float64) []domain_models.ScoredCandidate
	DiversifyByCategory(candidates []domain_models.ScoredCandidate) []domain_models.ScoredCandidate
	BucketByDistance(candidates []domain_models.ScoredCandidate, perBand int) []domain_models.ScoredCandidate
}

type FilterService struct {
	scoring ScoringServiceInterface
}

func NewFilterService(scoring ScoringServiceInterface) FilterServiceInterface {
	return &FilterService{scoring: scoring}
}

// BuildCandidates applies the graduated budget and quality fallbacks, scores
// the survivors and orders them: composite score desc, distance asc, place id
// asc. The id tie-break makes the ordering total, so identical inputs always
// produce identical output.
func (f *FilterService) BuildCandidates(
	places []domain_models.Place,
	intent domain_models.Intent,
	originLat, originLon float64,
) []domain_models.ScoredCandidate {
	if len(places) == 0 {
		return nil
	}

	base := f.budgetFilter(places, intent)
	pool := f.qualityFilter(base)

	out := make([]domain_models.ScoredCandidate, 0, len(pool))
	for _, p := range pool {
		final, vibe, weather := f.scoring.Score(p, intent)
		out = append(out, domain_models.ScoredCandidate{
			Place:        p,
			DistanceKm:   utils.Haversine(originLat, originLon, p.Latitude, p.Longitude),
			VibeScore:    vibe,
			WeatherScore: weather,
			FinalScore:   final,
			IsHiddenGem:  f.scoring.IsValidHiddenGem(p),
		})
	}

	sortCandidates(out)
	return out
}

// budgetFilter: strict overlap, then relaxed upper bound, then the full table.
func (f *FilterService) budgetFilter(places []domain_models.Place, intent domain_models.Intent) []domain_models.Place {
	strict := make([]domain_models.Place, 0, len(places))
	for _, p := range places {
		if p.BudgetMin <= intent.BudgetMax && p.BudgetMax >= intent.BudgetMin {
			strict = append(strict, p)
		}
	}
	if len(strict) > 0 {
		return strict
	}

	relaxedMax := intent.BudgetMax * budgetRelaxFactor
	relaxed := make([]domain_models.Place, 0, len(places))
	for _, p := range places {
		if p.BudgetMin <= relaxedMax {
			relaxed = append(relaxed, p)
		}
	}
	if len(relaxed) > 0 {
		return relaxed
	}

	return places
}

// qualityFilter applies the data-quality floor, lowering and finally dropping
// it rather than returning an empty set.
func (f *FilterService) qualityFilter(places []domain_models.Place) []domain_models.Place {
	for _, floor := range []float64{qualityFloorStrict, qualityFloorRelaxed} {
		kept := make([]domain_models.Place, 0, len(places))
		for _, p := range places {
			if p.DataQualityScore >= floor {
				kept = append(kept, p)
			}
		}
		if len(kept) > 0 {
			return kept
		}
	}
	return places
}

func sortCandidates(cands []domain_models.ScoredCandidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].FinalScore != cands[j].FinalScore {
			return cands[i].FinalScore > cands[j].FinalScore
		}
		if cands[i].DistanceKm != cands[j].DistanceKm {
			return cands[i].DistanceKm < cands[j].DistanceKm
		}
		return cands[i].Place.ID < cands[j].Place.ID
	})
}

// DiversifyByCategory keeps only the highest-scoring entry per category.
// Used during plan generation, not during explicit category-filter requests.
func (f *FilterService) DiversifyByCategory(candidates []domain_models.ScoredCandidate) []domain_models.ScoredCandidate {
	seen := make(map[string]bool, len(candidates))
	out := make([]domain_models.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		cat := utils.NormalizeCategory(c.Place.Category)
		if seen[cat] {
			continue
		}
		seen[cat] = true
		out = append(out, c)
	}
	return out
}

// BucketByDistance partitions candidates into fixed distance bands from the
// origin and keeps the top perBand scored entries of each band, preserving
// band order (near bands first). Candidates beyond the last band are kept
// after all bands, unlimited.
func (f *FilterService) BucketByDistance(candidates []domain_models.ScoredCandidate, perBand int) []domain_models.ScoredCandidate {
	if perBand <= 0 {
		return candidates
	}

	buckets := make([][]domain_models.ScoredCandidate, len(distanceBands)+1)
	for _, c := range candidates {
		idx := len(distanceBands)
		for i, upper := range distanceBands {
			if c.DistanceKm < upper {
				idx = i
				break
			}
		}
		buckets[idx] = append(buckets[idx], c)
	}

	out := make([]domain_models.ScoredCandidate, 0, len(candidates))
	for i, bucket := range buckets {
		sortCandidates(bucket)
		if i < len(distanceBands) && len(bucket) > perBand {
			bucket = bucket[:perBand]
		}
		out = append(out, bucket...)
	}
	return out
}
