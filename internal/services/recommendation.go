package services

import (
	"fmt"
	"time"

	"github.com/flowsync/flowsync/internal/models"
)

const (
	PriorityFocus    = "focus"
	PrioritySteady   = "steady"
	PriorityRecovery = "recovery"
)

type DailyRecommendation struct {
	Date           string   `json:"date"`
	Priority       string   `json:"priority"`
	Reasoning      string   `json:"reasoning"`
	SuggestedTasks []string `json:"suggested_tasks"`
	EnergyScore    int      `json:"energy_score"`
}

// BuildDailyRecommendation turns today's biometrics and the recent mood
// window into a work-planning suggestion: push on good days, coast on
// average ones, recover on bad ones.
func BuildDailyRecommendation(record models.BiometricRecord, moodScores []float64, now time.Time, location *time.Location) DailyRecommendation {
	breakdown := ComputeEnergyBreakdown(record, moodScores)
	composite := CompositeEnergyScore(breakdown)
	burnout := ClassifyBurnoutRisk(moodScores)

	recommendation := DailyRecommendation{
		Date:        DateAtLocation(now, location).Format(dayLayout),
		EnergyScore: composite,
	}

	switch {
	case burnout.Level >= 2 || composite < 55:
		recommendation.Priority = PriorityRecovery
		recommendation.Reasoning = fmt.Sprintf(
			"Your energy score is %d and your recent mood trend suggests you need rest. Keep today light.",
			composite)
		recommendation.SuggestedTasks = []string{
			"Clear low-effort items from your backlog",
			"Take a short walk or stretch break mid-day",
			"Wind down early tonight",
		}
	case composite >= 75:
		recommendation.Priority = PriorityFocus
		recommendation.Reasoning = fmt.Sprintf(
			"Your sleep quality was good and HRV is stable. With an energy score of %d, it's a great day for focused work.",
			composite)
		recommendation.SuggestedTasks = []string{
			"Complete your most important project work",
			"Review quarterly goals",
			"Plan next week",
		}
	default:
		recommendation.Priority = PrioritySteady
		recommendation.Reasoning = fmt.Sprintf(
			"Your energy score of %d supports a normal workload. Pace yourself and keep breaks regular.",
			composite)
		recommendation.SuggestedTasks = []string{
			"Work through your planned task list",
			"Batch small tasks together",
			"Schedule one mindful break",
		}
	}

	return recommendation
}
