package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"catalog/internal/config"
	"catalog/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	log.Debug("configuration loaded", slog.String("config", cfg.String()))

	app, err := NewApp(cfg, log)
	if err != nil {
		log.Error("failed to build app", slog.Any("error", err))
		os.Exit(1)
	}

	if err := app.StartConsumer(log); err != nil {
		log.Error("failed to start RabbitMQ consumer", slog.Any("error", err))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server", slog.String("port", cfg.AppPort))
		serverErr <- app.Fiber.Listen(cfg.AppPort)
	}()

	exitCode := 0
	select {
	case <-quit:
		log.Info("shutting down server")
	case err := <-serverErr:
		if err != nil {
			log.Error("server failed", slog.Any("error", err))
			exitCode = 1
		}
	}

	if err := app.Fiber.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		log.Error("error during fiber shutdown", slog.Any("error", err))
	}
	if err := app.Close(); err != nil {
		log.Error("error releasing resources", slog.Any("error", err))
	}
	log.Info("server gracefully stopped")
	os.Exit(exitCode)
}
