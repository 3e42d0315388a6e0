package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sanchar/internal/repositories"
)

// GeocodeServiceInterface resolves a place name to coordinates. The dataset
// centroid is consulted before any network call; failure returns ok=false and
// the caller must fall back to the request's own coordinates.
type GeocodeServiceInterface interface {
	Resolve(ctx context.Context, placeName string) (lat, lon float64, ok bool)
}

type GeocodeService struct {
	placeRepo repositories.PlaceRepository
	http      *http.Client
	baseURL   string
}

func NewGeocodeService(placeRepo repositories.PlaceRepository) GeocodeServiceInterface {
	return &GeocodeService{
		placeRepo: placeRepo,
		http:      &http.Client{Timeout: 10 * time.Second},
		baseURL:   "https://nominatim.openstreetmap.org",
	}
}

func (g *GeocodeService) Resolve(ctx context.Context, placeName string) (float64, float64, bool) {
	placeName = strings.TrimSpace(placeName)
	if placeName == "" {
		return 0, 0, false
	}

	// Local dataset first: the area column usually covers well-known names.
	query := placeName
	if i := strings.Index(query, ","); i >= 0 {
		query = query[:i]
	}
	if lat, lon, ok := g.placeRepo.ResolveArea(query); ok {
		return lat, lon, true
	}

	lat, lon, err := g.nominatim(ctx, placeName)
	if err != nil {
		log.Printf("Geocoding %q failed: %v", placeName, err)
		return 0, 0, false
	}
	return lat, lon, true
}

func (g *GeocodeService) nominatim(ctx context.Context, placeName string) (float64, float64, error) {
	q := url.Values{}
	q.Set("q", placeName+", Karnataka, India")
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("User-Agent", "SancharAI/1.0")

	resp, err := g.http.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return 0, 0, fmt.Errorf("nominatim bad status: %s", resp.Status)
	}

	var payload []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, 0, fmt.Errorf("nominatim decode: %w", err)
	}
	if len(payload) == 0 {
		return 0, 0, fmt.Errorf("no results")
	}

	lat, latErr := strconv.ParseFloat(payload[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(payload[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return 0, 0, fmt.Errorf("nominatim returned non-numeric coordinates")
	}

	return lat, lon, nil
}
