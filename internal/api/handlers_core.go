package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	return apiError(c, fiber.StatusNotFound, "page not found")
}
