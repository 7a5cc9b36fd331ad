// cmd/fx/session_fx/module.go
package session_fx

import (
	"time"

	"go.uber.org/fx"

	"concierge/internal/api/controllers"
	"concierge/internal/services"
	mem "concierge/pkg/memcache"
)

// Sessions idle out after a day of inactivity.
const sessionTTL = 24 * time.Hour

var Module = fx.Provide(
	ProvideSessionStore,
	ProvideSessionService,
	ProvideSessionController,
	ProvideItineraryController,
)

func ProvideSessionStore() mem.SessionStore {
	return mem.NewSessions(sessionTTL)
}

func ProvideSessionService(store mem.SessionStore) services.SessionServiceInterface {
	return services.NewSessionService(store)
}

func ProvideSessionController(sessionService services.SessionServiceInterface) *controllers.SessionController {
	return controllers.NewSessionController(sessionService)
}

func ProvideItineraryController(sessionService services.SessionServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(sessionService)
}
