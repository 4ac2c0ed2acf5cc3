package api

import (
	"github.com/flowsync/flowsync/internal/models"
	"github.com/flowsync/flowsync/internal/services"
	"github.com/gofiber/fiber/v2"
)

const (
	dashboardGoalLimit    = 3
	dashboardInsightLimit = 2
)

// GetDashboard assembles everything the dashboard screen shows in one
// round trip: today's biometrics, the top goals, the mood trend line,
// today's recommendation, the energy breakdown, and the leading insights.
func (handler *Handler) GetDashboard(c *fiber.Ctx) error {
	now := handler.now()

	today, err := handler.insightService.TodayBiometrics(now, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch biometrics")
	}

	goals, err := handler.repositories.Goals.ListAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch goals")
	}
	if len(goals) > dashboardGoalLimit {
		goals = goals[:dashboardGoalLimit]
	}

	moods, err := handler.repositories.Moods.ListRecent(moodTrendWindow)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch moods")
	}
	trends := make([]moodTrendPoint, 0, len(moods))
	for _, entry := range moods {
		trends = append(trends, moodTrendPoint{
			Date:      services.DayKey(services.DateAtLocation(entry.Timestamp, handler.location)),
			MoodLabel: entry.MoodLabel,
			MoodScore: entry.MoodScore,
		})
	}

	recommendation, err := handler.insightService.BuildDailyRecommendation(now, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build recommendation")
	}

	breakdown, err := handler.insightService.BuildEnergyBreakdown(now, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute energy breakdown")
	}

	insights, err := handler.insightService.BuildWeeklyInsights(now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to generate insights")
	}
	if len(insights) > dashboardInsightLimit {
		insights = insights[:dashboardInsightLimit]
	}

	return c.JSON(dashboardPayload{
		Today:          today,
		Goals:          goals,
		MoodTrends:     trends,
		Recommendation: recommendation,
		Energy: dashboardEnergy{
			Breakdown:      breakdown,
			CompositeScore: services.CompositeEnergyScore(breakdown),
		},
		Insights: insights,
	})
}

type dashboardEnergy struct {
	Breakdown      services.EnergyBreakdown `json:"breakdown"`
	CompositeScore int                      `json:"composite_score"`
}

type dashboardPayload struct {
	Today          models.BiometricRecord       `json:"today"`
	Goals          []models.Goal                `json:"goals"`
	MoodTrends     []moodTrendPoint             `json:"mood_trends"`
	Recommendation services.DailyRecommendation `json:"recommendation"`
	Energy         dashboardEnergy              `json:"energy"`
	Insights       []services.Insight           `json:"insights"`
}
