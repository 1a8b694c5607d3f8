package handlers

import (
	"pocket-notes/app"
	"pocket-notes/models"

	"github.com/gofiber/fiber/v2"
)

// SearchNotes returns notes whose title or date contains ?q=. Without q the list is empty.
func SearchNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		return c.JSON(models.SearchResponse{
			Query: query,
			Notes: a.Notes.List(query),
		})
	}
}

// ListNotes returns every note, newest first
func ListNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes := a.Notes.All()
		return success(c, fiber.Map{
			"notes": notes,
			"count": len(notes),
		})
	}
}

// GetNote retrieves a single note by id
func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := noteID(c)
		if !ok {
			return badRequest(c, "invalid note id")
		}

		note, err := a.Notes.Get(id)
		if err != nil {
			return respondError(c, "Failed to fetch note", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// CreateNote stores a new note
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.NoteInput
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		note, err := a.Notes.Create(req.Title, req.Content, req.Date, req.Time)
		if err != nil {
			return respondError(c, "Failed to save note", err)
		}

		return created(c, fiber.Map{"note": note})
	}
}

// UpdateNote replaces the editable fields of a note
func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := noteID(c)
		if !ok {
			return badRequest(c, "invalid note id")
		}

		var req models.NoteInput
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Notes.Update(id, req.Title, req.Content, req.Date, req.Time); err != nil {
			return respondError(c, "Failed to update note", err)
		}

		return success(c, fiber.Map{"message": "Note updated successfully"})
	}
}

// DeleteNote permanently removes a note
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := noteID(c)
		if !ok {
			return badRequest(c, "invalid note id")
		}

		if err := a.Notes.Delete(id); err != nil {
			return respondError(c, "Failed to delete note", err)
		}

		return success(c, fiber.Map{"message": "Note deleted successfully"})
	}
}
