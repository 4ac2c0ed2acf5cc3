package api

import (
	"errors"
	"strings"
	"time"

	"github.com/flowsync/flowsync/internal/models"
	"github.com/gofiber/fiber/v2"
)

func parseMoodPayload(c *fiber.Ctx) (moodPayload, error) {
	payload := moodPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return moodPayload{}, errors.New("invalid payload")
	}

	payload.MoodLabel = strings.ToLower(strings.TrimSpace(payload.MoodLabel))
	payload.Note = strings.TrimSpace(payload.Note)

	// Either side of the label/score pair can be omitted, but when both are
	// present they must agree.
	if payload.MoodLabel == "" && payload.MoodScore != 0 {
		payload.MoodLabel = models.MoodLabelForScore(payload.MoodScore)
	}
	if payload.MoodScore == 0 && payload.MoodLabel != "" {
		payload.MoodScore = models.MoodScoreForLabel(payload.MoodLabel)
	}

	if !models.IsValidMoodScore(payload.MoodScore) {
		return moodPayload{}, errors.New("mood score must be between 1 and 5")
	}
	if models.MoodScoreForLabel(payload.MoodLabel) != payload.MoodScore {
		return moodPayload{}, errors.New("mood label does not match mood score")
	}
	if len(payload.Note) > models.MaxMoodNoteLength {
		return moodPayload{}, errors.New("note is too long")
	}

	return payload, nil
}

func (handler *Handler) moodTimestamp(payload moodPayload) (time.Time, error) {
	if strings.TrimSpace(payload.Timestamp) == "" {
		return handler.now(), nil
	}
	parsed, err := time.Parse(time.RFC3339, payload.Timestamp)
	if err != nil {
		return time.Time{}, errors.New("invalid timestamp")
	}
	return parsed.In(handler.location), nil
}

func parseBiometricPayload(c *fiber.Ctx) (biometricPayload, error) {
	payload := biometricPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return biometricPayload{}, errors.New("invalid payload")
	}

	payload.Date = strings.TrimSpace(payload.Date)
	if payload.Date == "" {
		return biometricPayload{}, errors.New("date is required")
	}
	if payload.SleepScore < 0 || payload.SleepScore > 100 {
		return biometricPayload{}, errors.New("sleep score must be between 0 and 100")
	}
	if payload.EnergyScore < 0 || payload.EnergyScore > 100 {
		return biometricPayload{}, errors.New("energy score must be between 0 and 100")
	}
	if payload.SleepHours < 0 || payload.HRV < 0 || payload.RestingHR < 0 {
		return biometricPayload{}, errors.New("metrics must be non-negative")
	}

	return payload, nil
}

func (handler *Handler) parseGoalPayload(c *fiber.Ctx) (goalPayload, *time.Time, error) {
	payload := goalPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return goalPayload{}, nil, errors.New("invalid payload")
	}

	payload.Title = strings.TrimSpace(payload.Title)
	payload.Category = strings.ToLower(strings.TrimSpace(payload.Category))
	if payload.Title == "" {
		return goalPayload{}, nil, errors.New("title is required")
	}
	if payload.Category == "" {
		payload.Category = models.CategoryPersonal
	}
	if !models.IsValidGoalCategory(payload.Category) {
		return goalPayload{}, nil, errors.New("invalid category")
	}
	for index := range payload.Tasks {
		payload.Tasks[index].Title = strings.TrimSpace(payload.Tasks[index].Title)
		if payload.Tasks[index].Title == "" {
			return goalPayload{}, nil, errors.New("task title is required")
		}
	}

	var targetDate *time.Time
	if strings.TrimSpace(payload.TargetDate) != "" {
		parsed, err := parseDayParam(payload.TargetDate, handler.location)
		if err != nil {
			return goalPayload{}, nil, errors.New("invalid target date")
		}
		targetDate = &parsed
	}

	return payload, targetDate, nil
}
