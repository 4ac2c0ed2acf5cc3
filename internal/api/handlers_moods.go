package api

import (
	"github.com/flowsync/flowsync/internal/models"
	"github.com/flowsync/flowsync/internal/services"
	"github.com/gofiber/fiber/v2"
)

const moodTrendWindow = 7

func (handler *Handler) GetMoods(c *fiber.Ctx) error {
	entries, err := handler.repositories.Moods.ListAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch moods")
	}
	return c.JSON(entries)
}

func (handler *Handler) GetMoodTrends(c *fiber.Ctx) error {
	entries, err := handler.repositories.Moods.ListRecent(moodTrendWindow)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch moods")
	}

	points := make([]moodTrendPoint, 0, len(entries))
	for _, entry := range entries {
		points = append(points, moodTrendPoint{
			Date:      services.DayKey(services.DateAtLocation(entry.Timestamp, handler.location)),
			MoodLabel: entry.MoodLabel,
			MoodScore: entry.MoodScore,
		})
	}
	return c.JSON(points)
}

func (handler *Handler) GetMood(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid mood id")
	}

	entry, found, err := handler.repositories.Moods.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch mood")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "mood entry not found")
	}
	return c.JSON(entry)
}

func (handler *Handler) CreateMood(c *fiber.Ctx) error {
	payload, err := parseMoodPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	timestamp, err := handler.moodTimestamp(payload)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entry := models.MoodEntry{
		MoodLabel: payload.MoodLabel,
		MoodScore: payload.MoodScore,
		Note:      payload.Note,
		Timestamp: timestamp,
	}
	if err := handler.repositories.Moods.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save mood")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) UpdateMood(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid mood id")
	}
	entry, found, err := handler.repositories.Moods.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch mood")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "mood entry not found")
	}

	payload, err := parseMoodPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	timestamp, err := handler.moodTimestamp(payload)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entry.MoodLabel = payload.MoodLabel
	entry.MoodScore = payload.MoodScore
	entry.Note = payload.Note
	if payload.Timestamp != "" {
		entry.Timestamp = timestamp
	}
	if err := handler.repositories.Moods.Save(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save mood")
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteMood(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid mood id")
	}
	_, found, err := handler.repositories.Moods.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch mood")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "mood entry not found")
	}

	if err := handler.repositories.Moods.DeleteByID(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete mood")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
