package setup

import (
	"log/slog"
	"pocket-notes/app"
	"pocket-notes/config"
	"pocket-notes/database"
)

// InitDatabase opens the SQLite database and makes sure the schema exists.
// An error here is fatal for the process.
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.EnsureSchema(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	repo := database.NewRepository(db)

	checkpointer := database.NewCheckpointer(db, config.AppConfig.CheckpointInterval, logger)
	checkpointer.Start()

	application := app.New(repo, checkpointer, logger)
	logger.Info("application initialized")

	return application
}

// Shutdown stops background work and closes the database
func Shutdown(application *app.App, db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if application != nil && application.Checkpointer != nil {
		application.Checkpointer.Stop()
	}

	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
			return
		}
		logger.Info("database closed")
	}
}
