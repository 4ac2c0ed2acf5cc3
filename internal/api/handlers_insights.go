package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetInsights(c *fiber.Ctx) error {
	insights, err := handler.insightService.BuildWeeklyInsights(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to generate insights")
	}
	return c.JSON(insights)
}

func (handler *Handler) GetInsight(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid insight id")
	}

	insights, err := handler.insightService.BuildWeeklyInsights(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to generate insights")
	}
	for _, insight := range insights {
		if insight.ID == id {
			return c.JSON(insight)
		}
	}
	return apiError(c, fiber.StatusNotFound, "insight not found")
}

func (handler *Handler) GetBurnout(c *fiber.Ctx) error {
	assessment, err := handler.insightService.BuildBurnoutAssessment()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to assess burnout risk")
	}
	return c.JSON(assessment)
}
