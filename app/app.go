package app

import (
	"log/slog"
	"pocket-notes/database"
	"pocket-notes/services"
	"pocket-notes/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo         *database.Repository
	Notes        *services.NoteService
	Checkpointer *database.Checkpointer
	Validator    *validator.Validator
	Logger       *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, checkpointer *database.Checkpointer, logger *slog.Logger) *App {
	v := validator.New()
	return &App{
		Repo:         repo,
		Notes:        services.NewNoteService(repo, v, logger),
		Checkpointer: checkpointer,
		Validator:    v,
		Logger:       logger,
	}
}
