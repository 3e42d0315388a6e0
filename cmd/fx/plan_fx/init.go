package plan_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"sanchar/internal/api/controllers"
	"sanchar/internal/repositories"
	"sanchar/internal/services"
	"sanchar/pkg/utils"
)

var Module = fx.Provide(
	ProvideIntentAgent,
	ProvideScoringService,
	ProvideFilterService,
	ProvideRouteService,
	ProvideIntentService,
	ProvideNarratorService,
	ProvidePlannerService,
	ProvidePlanController,
)

// ProvideIntentAgent builds the Gemini collaborator. A missing key is not
// fatal: the agent degrades and the services fall back to defaults.
func ProvideIntentAgent() (utils.IntentAgentInterface, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	model := os.Getenv("GEMINI_MODEL")

	if apiKey == "" {
		log.Println("GEMINI_API_KEY not set, intent extraction and narration will use fallbacks")
	}

	return utils.NewGeminiAgent(apiKey, model)
}

func ProvideScoringService() services.ScoringServiceInterface {
	return services.NewScoringService()
}

func ProvideFilterService(scoring services.ScoringServiceInterface) services.FilterServiceInterface {
	return services.NewFilterService(scoring)
}

func ProvideRouteService() services.RouteServiceInterface {
	return services.NewRouteService()
}

func ProvideIntentService(agent utils.IntentAgentInterface) services.IntentServiceInterface {
	return services.NewIntentService(agent)
}

func ProvideNarratorService(agent utils.IntentAgentInterface) services.NarratorServiceInterface {
	return services.NewNarratorService(agent)
}

func ProvidePlannerService(
	placeRepo repositories.PlaceRepository,
	intents services.IntentServiceInterface,
	filter services.FilterServiceInterface,
	route services.RouteServiceInterface,
	narrator services.NarratorServiceInterface,
	geocode services.GeocodeServiceInterface,
) services.PlannerServiceInterface {
	return services.NewPlannerService(placeRepo, intents, filter, route, narrator, geocode)
}

func ProvidePlanController(
	planner services.PlannerServiceInterface,
	chatService services.ChatServiceInterface,
	sharedPlans repositories.SharedPlanStore,
	sessions repositories.SessionStore,
) *controllers.PlanController {
	return controllers.NewPlanController(planner, chatService, sharedPlans, sessions)
}
