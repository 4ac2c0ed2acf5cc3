package services

import "math"

const (
	BurnoutInsufficientData = "insufficient-data"
	BurnoutLow              = "low"
	BurnoutMild             = "mild"
	BurnoutModerate         = "moderate"
	BurnoutHigh             = "high"
)

const burnoutMinimumEntries = 3

type BurnoutAssessment struct {
	RiskTier        string   `json:"risk_tier"`
	Level           int      `json:"level"`
	AverageScore    float64  `json:"average_score"`
	RecentScore     float64  `json:"recent_score"`
	Decline         float64  `json:"decline"`
	Recommendations []string `json:"recommendations"`
}

// ClassifyBurnoutRisk grades the recent mood window into four tiers. The
// thresholds cascade in priority order; the first match wins. Decline is the
// whole-window average minus the last-3 average, so a positive decline means
// mood is sliding.
func ClassifyBurnoutRisk(moodScores []float64) BurnoutAssessment {
	if len(moodScores) < burnoutMinimumEntries {
		return BurnoutAssessment{
			RiskTier:        BurnoutInsufficientData,
			Recommendations: []string{},
		}
	}

	average := Mean(moodScores)
	recentAverage := Mean(moodScores[len(moodScores)-3:])
	decline := average - recentAverage

	assessment := BurnoutAssessment{
		AverageScore: roundScore(average),
		RecentScore:  roundScore(recentAverage),
		Decline:      roundScore(decline),
	}

	switch {
	case average < 3 || decline > 1.5:
		assessment.RiskTier = BurnoutHigh
		assessment.Level = 3
		assessment.Recommendations = []string{
			"Reduce your task load by 50% this week",
			"Take 10-minute mindfulness breaks twice a day",
			"Extend upcoming deadlines by 10 days",
		}
	case average < 4 || decline > 1:
		assessment.RiskTier = BurnoutModerate
		assessment.Level = 2
		assessment.Recommendations = []string{
			"Reduce your task load by 25% this week",
			"Take a 5-minute mindfulness break each day",
			"Extend upcoming deadlines by 5 days",
		}
	case average < 5 || decline > 0.5:
		assessment.RiskTier = BurnoutMild
		assessment.Level = 1
		assessment.Recommendations = []string{
			"Schedule short breaks between focused work sessions",
			"Try a brief breathing exercise when energy dips",
		}
	default:
		assessment.RiskTier = BurnoutLow
		assessment.Level = 0
		assessment.Recommendations = []string{
			"Keep up your current routine - it is working well",
		}
	}

	return assessment
}

func roundScore(value float64) float64 {
	return math.Round(value*100) / 100
}
