package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(parsed), nil
}

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("date is required")
	}
	parsed, err := time.ParseInLocation("2006-01-02", raw, location)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

// parseRangeQuery reads optional from/to query dates. Both bounds are
// inclusive days; the returned end pointer is exclusive, one day past "to".
func (handler *Handler) parseRangeQuery(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if raw := c.Query("from"); raw != "" {
		parsed, err := parseDayParam(raw, handler.location)
		if err != nil {
			return nil, nil, errors.New("invalid from date")
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := parseDayParam(raw, handler.location)
		if err != nil {
			return nil, nil, errors.New("invalid to date")
		}
		end := parsed.AddDate(0, 0, 1)
		to = &end
	}
	if from != nil && to != nil && !from.Before(*to) {
		return nil, nil, errors.New("invalid range")
	}

	return from, to, nil
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}
