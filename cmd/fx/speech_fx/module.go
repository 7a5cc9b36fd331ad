// cmd/fx/speech_fx/module.go
package speech_fx

import (
	"go.uber.org/fx"

	"concierge/internal/api/controllers"
	"concierge/internal/services"
	"concierge/pkg/utils"
)

var Module = fx.Provide(
	ProvideSpeechService,
	ProvideSpeechController,
)

func ProvideSpeechService(completion utils.CompletionClientInterface) services.SpeechServiceInterface {
	return services.NewSpeechService(completion)
}

func ProvideSpeechController(speechService services.SpeechServiceInterface) *controllers.SpeechController {
	return controllers.NewSpeechController(speechService)
}
