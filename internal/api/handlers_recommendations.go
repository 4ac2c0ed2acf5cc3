package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetTodayRecommendation(c *fiber.Ctx) error {
	recommendation, err := handler.insightService.BuildDailyRecommendation(handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build recommendation")
	}
	return c.JSON(recommendation)
}
