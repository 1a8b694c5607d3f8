package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"pocket-notes/config"
	"pocket-notes/config/setup"
	"syscall"
	"time"
)

func main() {
	config.Load()

	logger := setupLogger()
	slog.SetDefault(logger)

	// No note operation may run without a usable store
	db, err := setup.InitDatabase(config.AppConfig.DBPath, logger)
	if err != nil {
		logger.Error("note store unavailable", "path", config.AppConfig.DBPath, "error", err)
		os.Exit(1)
	}

	application := setup.InitApp(db, logger)

	app := setup.NewFiberApp(logger)
	setup.ApplyMiddleware(app, logger)
	setup.RegisterRoutes(app, application)

	logger.Info("starting server", "port", config.AppConfig.Port, "env", config.AppConfig.Env)

	go func() {
		if err := app.Listen(":" + config.AppConfig.Port); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	setup.Shutdown(application, db, logger)

	logger.Info("server stopped")
}

func setupLogger() *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     getLogLevel(),
		AddSource: config.AppConfig.Env == "development",
	}

	if config.AppConfig.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func getLogLevel() slog.Level {
	switch config.AppConfig.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
