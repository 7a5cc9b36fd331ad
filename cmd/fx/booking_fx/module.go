// cmd/fx/booking_fx/module.go
package booking_fx

import (
	"go.uber.org/fx"

	"concierge/internal/api/controllers"
	"concierge/internal/repositories"
	"concierge/internal/services"
	mem "concierge/pkg/memcache"
)

var Module = fx.Provide(
	ProvideBookingService,
	ProvideBookingController,
)

func ProvideBookingService(store mem.SessionStore, catalogRepo repositories.CatalogRepository) services.BookingServiceInterface {
	return services.NewBookingService(store, catalogRepo)
}

func ProvideBookingController(bookingService services.BookingServiceInterface) *controllers.BookingController {
	return controllers.NewBookingController(bookingService)
}
