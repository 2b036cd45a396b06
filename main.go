package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"favorites/internal/config"
	"favorites/internal/database"
	"favorites/internal/handlers"
	"favorites/internal/middleware"
	"favorites/internal/models"
	"favorites/internal/repositories"
	"favorites/internal/services"
	"favorites/pkg/logger"
	"favorites/pkg/metrics"
	"favorites/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init("favorites", cfg.LogPretty)
	logger.SetLevel(cfg.LogLevel)

	// --- Database ---
	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open database")
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database")
	}

	// --- RabbitMQ (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		publisher = mqClient

		if err := mqClient.ConsumeFavoriteEvents(auditFavoriteEvent); err != nil {
			logger.Error().Err(err).Msg("Failed to start favorite event consumer")
		}
	} else {
		logger.Info().Msg("RABBITMQ_URL not set, favorite events are disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app := NewApp(cfg, db, publisher, registry)

	// --- Start HTTP Server ---
	logger.Info().Str("addr", cfg.AppPort).Uint("acting_user_id", cfg.ActingUserID).Msg("Starting server")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	<-quit
	logger.Info().Msg("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error().Err(err).Msg("Error during Fiber shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Info().Msg("Server gracefully stopped")
}

// NewApp wires repositories, services and handlers over db and returns the
// fiber app serving every route. publisher may be nil.
func NewApp(cfg *config.Config, db *gorm.DB, publisher services.EventPublisher, registry *prometheus.Registry) *fiber.App {
	// --- Repositories ---
	planetRepo := repositories.NewGORMPlanetRepository(db)
	characterRepo := repositories.NewGORMCharacterRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// --- Services ---
	catalogService := services.NewCatalogService(planetRepo, characterRepo)
	userService := services.NewUserService(userRepo)
	favoriteService := services.NewFavoriteService(userRepo, planetRepo, characterRepo, publisher, metrics.NewRecorder(registry))

	// --- Handlers ---
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	userHandler := handlers.NewUserHandler(userService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})
	app.Use(fiberlogger.New())

	catalogHandler.RegisterRoutes(app)
	userHandler.RegisterRoutes(app)
	favoriteHandler.RegisterRoutes(app, middleware.ActingUser(cfg.ActingUserID))

	app.Get("/health", func(c *fiber.Ctx) error {
		status := "healthy"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			status = "degraded"
		}
		return c.JSON(fiber.Map{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return app
}

// auditFavoriteEvent logs every favorite event read back from the broker.
func auditFavoriteEvent(event models.FavoriteEvent) error {
	logger.Info().
		Str("event_id", event.ID).
		Str("type", event.RoutingKey()).
		Uint("user_id", event.UserID).
		Uint("target_id", event.TargetID).
		Time("occurred_at", event.OccurredAt).
		Msg("favorite event")
	return nil
}
