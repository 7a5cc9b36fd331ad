// cmd/fx/translate_fx/module.go
package translate_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"concierge/internal/api/controllers"
	"concierge/internal/services"
	"concierge/pkg/utils"
)

var Module = fx.Provide(
	ProvideTranslatorClient,
	ProvideTranslateService,
	ProvideTranslateController,
)

func ProvideTranslatorClient() utils.TranslatorClientInterface {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY is required")
	}

	model := os.Getenv("GEMINI_MODEL")
	log.Printf("Initializing Gemini translator with model: %s", model)

	client, err := utils.NewGeminiTranslator(apiKey, model)
	if err != nil {
		log.Fatalf("Failed to create Gemini translator: %v", err)
	}
	return client
}

func ProvideTranslateService(translator utils.TranslatorClientInterface) services.TranslateServiceInterface {
	return services.NewTranslateService(translator)
}

func ProvideTranslateController(translateService services.TranslateServiceInterface) *controllers.TranslateController {
	return controllers.NewTranslateController(translateService)
}
