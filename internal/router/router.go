package router

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/chachabrian/covoiturage-backend/internal/config"
	"github.com/chachabrian/covoiturage-backend/internal/handlers"
	"github.com/chachabrian/covoiturage-backend/internal/middleware"
	"github.com/chachabrian/covoiturage-backend/internal/models"
	"github.com/chachabrian/covoiturage-backend/internal/repository"
	"github.com/chachabrian/covoiturage-backend/internal/services"
)

// Dependencies is everything the routes are wired to. Hub, Storage and
// Events are optional.
type Dependencies struct {
	Config       *config.Config
	Passengers   repository.Repository[models.Passenger]
	Drivers      repository.Repository[models.Driver]
	Trips        repository.Repository[models.Trip]
	Reservations repository.Repository[models.Reservation]
	Events       services.EventPublisher
	Hub          *services.Hub
	Storage      *services.Storage
	Ping         func(context.Context) error
}

// New builds the gin engine with every route and filter bound.
func New(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	if len(deps.Config.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = deps.Config.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.APIKeyHeader, "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	r.Use(cors.New(corsConfig))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"erreur":  "Route introuvable",
			"chemin":  c.Request.URL.Path,
			"methode": c.Request.Method,
		})
	})

	// Public routes
	r.GET("/", handlers.Hello)
	r.GET("/test", handlers.Test)
	if deps.Ping != nil {
		r.GET("/health", handlers.Health(deps.Ping))
	}
	if deps.Storage != nil && !deps.Storage.IsUsingS3() {
		r.Static("/uploads", deps.Storage.LocalDir())
	}

	api := r.Group("/api")
	api.Use(middleware.APIKeyMiddleware(deps.Config.APIKey))
	{
		api.GET("", handlers.GetPassengers(deps.Passengers))

		passengers := api.Group("/passager")
		{
			passengers.GET("", handlers.GetPassengers(deps.Passengers))
			passengers.POST("", handlers.CreatePassenger(deps.Passengers, deps.Events))
			passengers.PUT("/:id", handlers.UpdatePassenger(deps.Passengers, deps.Events))
			passengers.DELETE("/:id", handlers.DeletePassenger(deps.Passengers, deps.Events))
		}

		drivers := api.Group("/conducteur")
		{
			drivers.GET("", handlers.GetDrivers(deps.Drivers))
			drivers.POST("", handlers.CreateDriver(deps.Drivers, deps.Events))
			drivers.PUT("/:id", handlers.UpdateDriver(deps.Drivers, deps.Events))
			drivers.DELETE("/:id", handlers.DeleteDriver(deps.Drivers, deps.Events))
		}

		trips := api.Group("/trajet")
		{
			trips.GET("", handlers.GetTrips(deps.Trips))
			trips.POST("", handlers.CreateTrip(deps.Trips, deps.Events))
			trips.PUT("/:id", handlers.UpdateTrip(deps.Trips, deps.Events))
			trips.DELETE("/:id", handlers.DeleteTrip(deps.Trips, deps.Events))
		}

		reservations := api.Group("/reservation")
		{
			reservations.GET("", handlers.GetReservations(deps.Reservations))
			reservations.POST("", handlers.CreateReservation(deps.Reservations, deps.Events))
			reservations.PUT("/:id", handlers.UpdateReservation(deps.Reservations, deps.Events))
			reservations.DELETE("/:id", handlers.DeleteReservation(deps.Reservations, deps.Events))
		}

		if deps.Storage != nil {
			api.POST("/uploads", handlers.UploadPhoto(deps.Storage))
		}

		if deps.Hub != nil {
			api.GET("/ws", handlers.WebSocketHandler(deps.Hub))
		}
	}

	return r
}
