package services

import (
	"math"

	"github.com/flowsync/flowsync/internal/models"
)

// Population-level baselines for impact deltas, not personalized values.
const (
	sleepBaselineScore = 75.0
	hrvBaselineMs      = 42.0
	moodBaselineScore  = 3.5
)

const neutralMoodScore = 3.5

// Correlation strength is a fixed placeholder pending a computed mood/energy
// correlation, with a lower fallback when no mood history is available.
// Computing it from history would change observable output.
const (
	correlationStrengthNominal  = 0.85
	correlationStrengthFallback = 0.70
)

type EnergyFactor struct {
	Score        float64 `json:"score"`
	Contribution int     `json:"contribution"`
	Impact       int     `json:"impact"`
}

type EnergyBreakdown struct {
	Sleep               EnergyFactor `json:"sleep"`
	HRV                 EnergyFactor `json:"hrv"`
	Mood                EnergyFactor `json:"mood"`
	CorrelationStrength float64      `json:"correlation_strength"`
}

// ComputeEnergyBreakdown combines today's biometrics with the recent mood
// window into per-factor contributions toward the 0-100 composite: sleep up
// to 40 points, HRV up to 30, mood up to 30. Contributions are clamped at 0;
// impacts keep their sign. It never fails: missing mood data falls back to a
// neutral score.
func ComputeEnergyBreakdown(record models.BiometricRecord, moodScores []float64) EnergyBreakdown {
	moodAverage := neutralMoodScore
	correlationStrength := correlationStrengthFallback
	if len(moodScores) > 0 {
		moodAverage = Mean(moodScores)
		correlationStrength = correlationStrengthNominal
	}

	return EnergyBreakdown{
		Sleep: EnergyFactor{
			Score:        record.SleepScore,
			Contribution: clampContribution(record.SleepScore / 100 * 40),
			Impact:       roundToInt((record.SleepScore - sleepBaselineScore) / 3),
		},
		HRV: EnergyFactor{
			Score:        record.HRV,
			Contribution: clampContribution((record.HRV - 30) / 30 * 30),
			Impact:       roundToInt((record.HRV - hrvBaselineMs) / 2),
		},
		Mood: EnergyFactor{
			Score:        math.Round(moodAverage*10) / 10,
			Contribution: clampContribution(moodAverage / 5 * 30),
			Impact:       roundToInt((moodAverage - moodBaselineScore) * 6),
		},
		CorrelationStrength: correlationStrength,
	}
}

// CompositeEnergyScore sums the clamped factor contributions.
func CompositeEnergyScore(breakdown EnergyBreakdown) int {
	return breakdown.Sleep.Contribution + breakdown.HRV.Contribution + breakdown.Mood.Contribution
}

func clampContribution(value float64) int {
	rounded := roundToInt(value)
	if rounded < 0 {
		return 0
	}
	return rounded
}

func roundToInt(value float64) int {
	return int(math.Round(value))
}
