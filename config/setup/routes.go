package setup

import (
	"pocket-notes/app"
	"pocket-notes/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", handlers.Health(application))
	fiberApp.Get("/api/time", handlers.ServerTime)

	api := fiberApp.Group("/api")

	// /notes/all must be registered before /notes/:id
	api.Get("/notes", handlers.SearchNotes(application))
	api.Get("/notes/all", handlers.ListNotes(application))
	api.Get("/notes/:id", handlers.GetNote(application))
	api.Post("/notes", handlers.CreateNote(application))
	api.Put("/notes/:id", handlers.UpdateNote(application))
	api.Delete("/notes/:id", handlers.DeleteNote(application))
}
