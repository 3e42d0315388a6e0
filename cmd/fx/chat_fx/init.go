package chat_fx

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
	ProvideSessionStore,
	ProvideSharedPlanStore,
	ProvideCommandClassifier,
	ProvideChatService,
	ProvideChatController,
)

func ProvideSessionStore() repositories.SessionStore {
	return repositories.NewInMemorySessionStore()
}

func ProvideSharedPlanStore() repositories.SharedPlanStore {
	return repositories.NewInMemorySharedPlanStore()
}

// ProvideCommandClassifier builds the Groq collaborator. Without a key its
// calls error and the chat service relies on its keyword fallback.
func ProvideCommandClassifier() utils.CommandClassifierInterface {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		log.Println("GROQ_API_KEY not set, chat commands will use the keyword classifier")
	}

	return utils.NewGroqClassifier(apiKey, os.Getenv("GROQ_MODEL"))
}

func ProvideChatService(
	sessions repositories.SessionStore,
	planner services.PlannerServiceInterface,
	filter services.FilterServiceInterface,
	classifier utils.CommandClassifierInterface,
) services.ChatServiceInterface {
	return services.NewChatService(sessions, planner, filter, classifier)
}

func ProvideChatController(chatService services.ChatServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(chatService)
}
