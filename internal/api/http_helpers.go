package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/medlifequest/internal/services"
)

const (
	messageNotPersisted = "state not persisted"
	messageInvalidID    = "invalid id"
	messageInvalidInput = "invalid input"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errors.New(messageInvalidID)
	}
	return id, nil
}

// stateError maps a user state error to a response. Persistence failures are
// 500s even though the in-memory change already happened.
func (handler *Handler) stateError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrPersistFailed):
		handler.logger.Error("user state persistence failed",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
		return apiError(c, fiber.StatusInternalServerError, messageNotPersisted)
	case errors.Is(err, services.ErrOnboardingNameRequired):
		return apiError(c, fiber.StatusBadRequest, "name is required")
	case errors.Is(err, services.ErrUnknownTheme):
		return apiError(c, fiber.StatusBadRequest, "unknown theme")
	case errors.Is(err, services.ErrInvalidSymptomTitle), errors.Is(err, services.ErrInvalidReminderTitle):
		return apiError(c, fiber.StatusBadRequest, "title is required")
	case errors.Is(err, services.ErrInvalidSymptom), errors.Is(err, services.ErrInvalidReminder):
		return apiError(c, fiber.StatusBadRequest, messageInvalidInput)
	case errors.Is(err, services.ErrDuplicateSymptomID), errors.Is(err, services.ErrDuplicateReminderID):
		return apiError(c, fiber.StatusConflict, "already exists")
	default:
		handler.logger.Error("unexpected user state error", slog.String("error", err.Error()))
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}
