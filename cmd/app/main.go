package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"concierge/cmd/fx/booking_fx"
	"concierge/cmd/fx/catalog_fx"
	"concierge/cmd/fx/chat_fx"
	"concierge/cmd/fx/db_fx"
	"concierge/cmd/fx/session_fx"
	"concierge/cmd/fx/speech_fx"
	"concierge/cmd/fx/translate_fx"
	"concierge/internal/api/controllers"
	"concierge/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		session_fx.Module,
		catalog_fx.Module,
		chat_fx.Module,
		booking_fx.Module,
		speech_fx.Module,
		translate_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	sessionController *controllers.SessionController,
	itineraryController *controllers.ItineraryController,
	chatController *controllers.ChatController,
	bookingController *controllers.BookingController,
	catalogController *controllers.CatalogController,
	speechController *controllers.SpeechController,
	translateController *controllers.TranslateController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		sessionController,
		itineraryController,
		chatController,
		bookingController,
		catalogController,
		speechController,
		translateController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	sessionController *controllers.SessionController,
	itineraryController *controllers.ItineraryController,
	chatController *controllers.ChatController,
	bookingController *controllers.BookingController,
	catalogController *controllers.CatalogController,
	speechController *controllers.SpeechController,
	translateController *controllers.TranslateController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// No session token needed to open a session or browse the catalog.
	api.POST("/sessions", sessionController.CreateSessionHandler)
	api.GET("/catalog/flights", catalogController.ListFlightsHandler)
	api.GET("/catalog/hotels", catalogController.ListHotelsHandler)

	authed := api.Group("")
	authed.Use(middleware.SessionAuthMiddleware())

	authed.GET("/sessions", sessionController.GetSessionHandler)
	authed.POST("/sessions/preferences", sessionController.SubmitPreferencesHandler)
	authed.GET("/sessions/tips", sessionController.TravelTipsHandler)

	authed.POST("/chat", chatController.ChatHandler)

	authed.GET("/itinerary", itineraryController.ListItineraryHandler)
	authed.POST("/itinerary/days", itineraryController.UpsertDayHandler)
	authed.PUT("/itinerary/days/:day", itineraryController.UpdateDayHandler)
	authed.DELETE("/itinerary/days/:day", itineraryController.DeleteDayHandler)

	authed.GET("/booking", bookingController.GetBookingHandler)
	authed.POST("/booking/advance", bookingController.AdvanceBookingHandler)
	authed.POST("/booking/clear", bookingController.ClearBookingHandler)

	authed.POST("/speech", speechController.SynthesizeHandler)
	authed.POST("/translate", translateController.TranslateHandler)
}
