package repositories

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"sanchar/internal/models/domain_models"
	"sanchar/pkg/utils"
)

// PlaceRepository is the read-only view over the places dataset. The dataset
// is loaded once at startup; rows with missing or non-numeric coordinates are
// dropped before the core ever sees them.
type PlaceRepository interface {
	All() []domain_models.Place
	Count() int
	// ResolveArea returns the centroid of places whose area, name or category
	// contains the query (checked in that order). ok is false when nothing
	// matches.
	ResolveArea(query string) (lat, lon float64, ok bool)
}

type csvPlaceRepository struct {
	places []domain_models.Place
}

// NewCSVPlaceRepository loads the tabular dataset from path. Every field is
// treated as a loosely-typed string and coerced here, at the boundary.
func NewCSVPlaceRepository(path string) (PlaceRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open places dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read places dataset: %w", err)
	}
	if len(records) < 2 {
		return nil, utils.ErrDatasetUnavailable
	}

	header := map[string]int{}
	for i, col := range records[0] {
		header[strings.ToLower(strings.TrimSpace(col))] = i
	}

	field := func(row []string, name string) string {
		i, ok := header[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	places := make([]domain_models.Place, 0, len(records)-1)
	dropped := 0
	for _, row := range records[1:] {
		lat, latErr := strconv.ParseFloat(field(row, "latitude"), 64)
		lon, lonErr := strconv.ParseFloat(field(row, "longitude"), 64)
		if latErr != nil || lonErr != nil {
			dropped++
			continue
		}

		places = append(places, domain_models.Place{
			ID:                 field(row, "place_id"),
			Name:               field(row, "place_name"),
			Category:           field(row, "category"),
			Latitude:           lat,
			Longitude:          lon,
			BudgetMin:          parseFloatOr(field(row, "budget_min"), 0),
			BudgetMax:          parseFloatOr(field(row, "budget_max"), 0),
			Tags:               parseListField(field(row, "tags")),
			Vibe:               field(row, "vibe"),
			WeatherSuitability: parseListField(field(row, "weather_suitability")),
			PopularityScore:    parseFloatOr(field(row, "popularity_score"), 0),
			DataQualityScore:   parseFloatOr(field(row, "data_quality_score"), 0),
			IsHiddenGem:        parseBool(field(row, "is_hidden_gem")),
			FamousFor:          field(row, "famous_for"),
			Area:               field(row, "area"),
		})
	}

	if len(places) == 0 {
		return nil, utils.ErrDatasetUnavailable
	}

	log.Printf("Loaded %d places (%d rows dropped for bad coordinates)", len(places), dropped)

	return &csvPlaceRepository{places: places}, nil
}

func (r *csvPlaceRepository) All() []domain_models.Place {
	return r.places
}

func (r *csvPlaceRepository) Count() int {
	return len(r.places)
}

func (r *csvPlaceRepository) ResolveArea(query string) (float64, float64, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || query == "current_location" {
		return 0, 0, false
	}

	selectors := []func(p domain_models.Place) string{
		func(p domain_models.Place) string { return p.Area },
		func(p domain_models.Place) string { return p.Name },
		func(p domain_models.Place) string { return p.Category },
	}

	for _, sel := range selectors {
		var sumLat, sumLon float64
		n := 0
		for _, p := range r.places {
			if strings.Contains(strings.ToLower(sel(p)), query) {
				sumLat += p.Latitude
				sumLon += p.Longitude
				n++
			}
		}
		if n > 0 {
			return sumLat / float64(n), sumLon / float64(n), true
		}
	}

	return 0, 0, false
}

func parseFloatOr(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// parseListField tolerates both plain comma-separated values and the
// python-style list literals the dataset ships ("['solo', 'couple']").
func parseListField(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `'"`)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
