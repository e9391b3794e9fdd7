package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"catalog/internal/config"
	"catalog/internal/database"
	"catalog/internal/handlers"
	"catalog/internal/repositories"
	"catalog/internal/seed"
	"catalog/internal/services"
	"catalog/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// App is the assembled service: the fiber app plus the resources it holds.
type App struct {
	Fiber    *fiber.App
	mqClient *rabbitmq.Client
	closers  []func() error
}

// NewApp wires storage, the event publisher, services and handlers for cfg.
func NewApp(cfg *config.Config, log *slog.Logger) (*App, error) {
	a := &App{}

	repo, err := a.openRepository(cfg, log)
	if err != nil {
		return nil, err
	}

	// A nil interface, not a nil *rabbitmq.Client, disables publishing.
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log)
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		a.mqClient = mqClient
		a.closers = append(a.closers, mqClient.Close)
		publisher = mqClient
	} else {
		log.Info("RABBITMQ_URL not set, catalog events are disabled")
	}

	productService := services.NewProductService(repo, publisher, log)
	loader := seed.NewLoader(productService, repo, publisher, log)

	productHandler := handlers.NewProductHandler(productService, log)
	seedHandler := handlers.NewSeedHandler(loader)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(log),
	})
	app.Use(logger.New())

	api := app.Group("/api")
	productHandler.RegisterRoutes(api)
	seedHandler.RegisterRoutes(api)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"driver":   cfg.DBDriver,
			"rabbitMQ": a.mqClient != nil,
		})
	})

	a.Fiber = app
	return a, nil
}

func (a *App) openRepository(cfg *config.Config, log *slog.Logger) (repositories.ProductRepository, error) {
	if cfg.DBDriver == config.DriverMemory {
		log.Info("using in-memory product storage")
		return repositories.NewMemoryProductRepository(), nil
	}

	db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN, cfg.DBAutoMigrate, log)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, func() error { return database.Close(db) })
	log.Info("database connected", slog.String("driver", cfg.DBDriver))
	return repositories.NewGORMProductRepository(db), nil
}

// StartConsumer logs every catalog event received on the queue. It is a
// no-op when events are disabled.
func (a *App) StartConsumer(log *slog.Logger) error {
	if a.mqClient == nil {
		return nil
	}
	return a.mqClient.ConsumeEvents(func(event rabbitmq.Event) error {
		log.Info("catalog event received",
			slog.String("event", event.Name),
			slog.String("product_id", event.ProductID),
			slog.Int("count", event.Count),
			slog.Time("occurred_at", event.OccurredAt),
		)
		return nil
	})
}

// Close releases the database and RabbitMQ connections in reverse order.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
