package handlers

import (
	"errors"
	"log/slog"
	"pocket-notes/middleware"
	"pocket-notes/services"
	"pocket-notes/validator"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func validationFailed(c *fiber.Ctx, errs validator.ValidationErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  errs.Error(),
		"fields": errs,
	})
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	slog.Error("server error",
		"request_id", middleware.GetRequestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// respondError maps service errors onto HTTP responses
func respondError(c *fiber.Ctx, message string, err error) error {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return validationFailed(c, verrs)
	case errors.Is(err, services.ErrNoteNotFound):
		return notFound(c, "Note not found")
	default:
		return serverErrorWithDetails(c, message, err)
	}
}

// noteID parses the :id route parameter
func noteID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}
