package handlers

import (
	"pocket-notes/app"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Health reports whether the note store answers queries
func Health(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := a.Repo.CountNotes()
		if err != nil {
			a.Logger.Error("health check failed", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return success(c, fiber.Map{"status": "ok", "notes": count})
	}
}

// ServerTime returns the current date and time in the formats notes are stored with,
// so clients can prefill a new note
func ServerTime(c *fiber.Ctx) error {
	loc := time.Local
	if tz := c.Query("timezone"); tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}

	now := time.Now().In(loc)

	return c.JSON(fiber.Map{
		"timestamp": now.Unix(),
		"timezone":  loc.String(),
		"date":      now.Format(time.DateOnly),
		"time":      now.Format(time.TimeOnly),
	})
}
