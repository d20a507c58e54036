package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/chachabrian/covoiturage-backend/internal/config"
	"github.com/chachabrian/covoiturage-backend/internal/database"
	"github.com/chachabrian/covoiturage-backend/internal/models"
	"github.com/chachabrian/covoiturage-backend/internal/repository"
	"github.com/chachabrian/covoiturage-backend/internal/router"
	"github.com/chachabrian/covoiturage-backend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	storage, err := services.NewStorage(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize WebSocket hub
	hub := services.NewHub()
	go hub.Run(ctx)

	// With Redis every instance publishes there and relays the channel to
	// its own WebSocket clients; without it events go straight to the hub.
	var events services.EventPublisher = hub
	if cfg.RedisURL != "" {
		rdb, err := services.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to initialize Redis: %v", err)
		}
		defer closeRedis(rdb)

		publisher := services.NewRedisPublisher(rdb, hub)
		events = publisher
		go func() {
			if err := publisher.Relay(ctx); err != nil {
				log.Printf("Redis relay stopped, change events now stay on this instance: %v", err)
			}
		}()
	}

	r := router.New(router.Dependencies{
		Config:       cfg,
		Passengers:   repository.New[models.Passenger](db),
		Drivers:      repository.New[models.Driver](db),
		Trips:        repository.New[models.Trip](db, "Driver", "Reservations"),
		Reservations: repository.New[models.Reservation](db, "Passenger", "Trip"),
		Events:       events,
		Hub:          hub,
		Storage:      storage,
		Ping:         database.Ping(db),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server is running on port %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}

func closeRedis(rdb *redis.Client) {
	if err := rdb.Close(); err != nil {
		log.Printf("Failed to close Redis: %v", err)
	}
}
