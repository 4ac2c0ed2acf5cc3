package api

import (
	"github.com/flowsync/flowsync/internal/models"
	"github.com/flowsync/flowsync/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetBiometrics(c *fiber.Ctx) error {
	from, to, err := handler.parseRangeQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	records, err := handler.repositories.Biometrics.ListRange(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch biometrics")
	}
	return c.JSON(records)
}

func (handler *Handler) GetTodayBiometrics(c *fiber.Ctx) error {
	record, err := handler.insightService.TodayBiometrics(handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch biometrics")
	}
	return c.JSON(record)
}

func (handler *Handler) GetEnergyBreakdown(c *fiber.Ctx) error {
	breakdown, err := handler.insightService.BuildEnergyBreakdown(handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute energy breakdown")
	}
	return c.JSON(fiber.Map{
		"breakdown":       breakdown,
		"composite_score": services.CompositeEnergyScore(breakdown),
	})
}

// UpsertBiometric creates or replaces the record for the payload's date.
// EnergyLevel is always rederived from the score, never taken from input.
func (handler *Handler) UpsertBiometric(c *fiber.Ctx) error {
	payload, err := parseBiometricPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	day, err := parseDayParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	dayStart, dayEnd := services.DayRange(day, handler.location)
	record, found, err := handler.repositories.Biometrics.FindByDayRange(dayStart, dayEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch biometrics")
	}

	if !found {
		record = models.BiometricRecord{Date: dayStart}
	}
	record.SleepScore = payload.SleepScore
	record.SleepHours = payload.SleepHours
	record.HRV = payload.HRV
	record.RestingHR = payload.RestingHR
	record.EnergyScore = payload.EnergyScore
	record.EnergyLevel = models.EnergyLevelForScore(payload.EnergyScore)

	if !found {
		if err := handler.repositories.Biometrics.Create(&record); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to save biometrics")
		}
		return c.Status(fiber.StatusCreated).JSON(record)
	}

	if err := handler.repositories.Biometrics.Save(&record); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save biometrics")
	}
	return c.JSON(record)
}
