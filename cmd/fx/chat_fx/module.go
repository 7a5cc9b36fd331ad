// cmd/fx/chat_fx/module.go
package chat_fx

import (
	"errors"
	"log"
	"os"

	"go.uber.org/fx"

	"concierge/internal/api/controllers"
	"concierge/internal/services"
	mem "concierge/pkg/memcache"
	"concierge/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvideChatService,
	ProvideChatController,
)

// ProvideCompletionClient creates the OpenAI client used for chat streaming
// and speech synthesis. A missing key fails app start.
func ProvideCompletionClient() (utils.CompletionClientInterface, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY is required")
	}

	model := os.Getenv("OPENAI_MODEL")
	log.Printf("Initializing OpenAI completion client")
	return utils.NewOpenAIClient(apiKey, model), nil
}

func ProvideChatService(store mem.SessionStore, completion utils.CompletionClientInterface) services.ChatServiceInterface {
	return services.NewChatService(store, completion)
}

func ProvideChatController(chatService services.ChatServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(chatService)
}
