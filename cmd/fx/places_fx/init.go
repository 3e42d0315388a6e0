package places_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"sanchar/internal/api/controllers"
	"sanchar/internal/repositories"
	"sanchar/internal/services"
)

var Module = fx.Provide(
	ProvidePlaceRepository,
	ProvideGeocodeService,
	ProvideHiddenGemService,
	ProvidePlacesController,
)

// ProvidePlaceRepository loads the place dataset from PLACES_CSV_PATH.
func ProvidePlaceRepository() (repositories.PlaceRepository, error) {
	path := os.Getenv("PLACES_CSV_PATH")
	if path == "" {
		path = "data/places.csv"
	}

	repo, err := repositories.NewCSVPlaceRepository(path)
	if err != nil {
		log.Printf("Failed to load place dataset from %s: %v", path, err)
		return nil, err
	}
	return repo, nil
}

func ProvideGeocodeService(placeRepo repositories.PlaceRepository) services.GeocodeServiceInterface {
	return services.NewGeocodeService(placeRepo)
}

func ProvideHiddenGemService(
	placeRepo repositories.PlaceRepository,
	scoring services.ScoringServiceInterface,
	geocode services.GeocodeServiceInterface,
) services.HiddenGemServiceInterface {
	return services.NewHiddenGemService(placeRepo, scoring, geocode)
}

func ProvidePlacesController(
	placeRepo repositories.PlaceRepository,
	hiddenGems services.HiddenGemServiceInterface,
) *controllers.PlacesController {
	return controllers.NewPlacesController(placeRepo, hiddenGems)
}
