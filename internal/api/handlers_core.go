package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) RejectDerivedMutation(c *fiber.Ctx) error {
	return apiError(c, fiber.StatusMethodNotAllowed, "derived data is generated from your records and cannot be edited")
}
