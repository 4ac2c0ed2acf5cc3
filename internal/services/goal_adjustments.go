package services

import "fmt"

const (
	AdjustmentTaskReduction = "task-reduction"
	AdjustmentMindfulness   = "mindfulness"
	AdjustmentTimeline      = "timeline"
)

type GoalAdjustment struct {
	Type     string `json:"type"`
	Action   string `json:"action"`
	Severity int    `json:"severity,omitempty"`
	Duration int    `json:"duration,omitempty"`
	Days     int    `json:"days,omitempty"`
}

type GoalAdjustmentPlan struct {
	RiskTier    string           `json:"risk_tier"`
	Adjustments []GoalAdjustment `json:"adjustments"`
	Message     string           `json:"message,omitempty"`
}

// BuildGoalAdjustmentPlan turns a burnout assessment into structured goal
// adjustment directives. Tiers at or above moderate get the full set, mild
// gets a mindfulness nudge only, everything else gets encouragement.
func BuildGoalAdjustmentPlan(assessment BurnoutAssessment) GoalAdjustmentPlan {
	plan := GoalAdjustmentPlan{
		RiskTier:    assessment.RiskTier,
		Adjustments: []GoalAdjustment{},
	}

	switch assessment.RiskTier {
	case BurnoutHigh:
		plan.Adjustments = fullAdjustmentSet(50, 10, 10)
	case BurnoutModerate:
		plan.Adjustments = fullAdjustmentSet(25, 5, 5)
	case BurnoutMild:
		plan.Adjustments = []GoalAdjustment{
			{
				Type:     AdjustmentMindfulness,
				Action:   "Add a 5-minute mindfulness break to your day",
				Duration: 5,
			},
		}
	case BurnoutInsufficientData:
		plan.Message = "Log a few more moods so we can tune your goals to how you feel."
	default:
		plan.Message = "Your mood looks steady - no goal changes needed. Keep going!"
	}

	return plan
}

func fullAdjustmentSet(reductionPercent int, mindfulnessMinutes int, extensionDays int) []GoalAdjustment {
	return []GoalAdjustment{
		{
			Type:     AdjustmentTaskReduction,
			Action:   fmt.Sprintf("Reduce open tasks by %d%% across active goals", reductionPercent),
			Severity: reductionPercent,
		},
		{
			Type:     AdjustmentMindfulness,
			Action:   fmt.Sprintf("Schedule %d-minute mindfulness breaks", mindfulnessMinutes),
			Duration: mindfulnessMinutes,
		},
		{
			Type:   AdjustmentTimeline,
			Action: fmt.Sprintf("Extend goal target dates by %d days", extensionDays),
			Days:   extensionDays,
		},
	}
}
