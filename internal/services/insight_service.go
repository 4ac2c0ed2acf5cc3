package services

import (
	"time"

	"github.com/flowsync/flowsync/internal/models"
)

const recentMoodWindow = 7

type MoodReader interface {
	FetchRecentMoods(limit int) ([]models.MoodEntry, error)
}

type BiometricReader interface {
	FetchForDayRange(dayStart time.Time, dayEnd time.Time) (models.BiometricRecord, bool, error)
	FetchRecent(limit int) ([]models.BiometricRecord, error)
}

type GoalReader interface {
	FetchGoals() ([]models.Goal, error)
}

// InsightService wires the pure analytics onto the stores. All inputs are
// read-only snapshots and all outputs freshly allocated, so concurrent
// invocations are safe without locking.
type InsightService struct {
	moods      MoodReader
	biometrics BiometricReader
	goals      GoalReader
}

func NewInsightService(moods MoodReader, biometrics BiometricReader, goals GoalReader) *InsightService {
	return &InsightService{
		moods:      moods,
		biometrics: biometrics,
		goals:      goals,
	}
}

// DefaultBiometricRecord synthesizes a plausible record for days without
// data, matching the frontend's fallback values.
func DefaultBiometricRecord(day time.Time) models.BiometricRecord {
	return models.BiometricRecord{
		Date:        day,
		SleepScore:  78,
		SleepHours:  7.5,
		HRV:         42,
		RestingHR:   65,
		EnergyLevel: models.EnergyMedium,
		EnergyScore: 72,
	}
}

func (service *InsightService) TodayBiometrics(now time.Time, location *time.Location) (models.BiometricRecord, error) {
	dayStart, dayEnd := DayRange(now, location)
	record, found, err := service.biometrics.FetchForDayRange(dayStart, dayEnd)
	if err != nil {
		return models.BiometricRecord{}, err
	}
	if !found {
		return DefaultBiometricRecord(dayStart), nil
	}
	return record, nil
}

func (service *InsightService) RecentMoodScores() ([]float64, error) {
	moods, err := service.moods.FetchRecentMoods(recentMoodWindow)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, 0, len(moods))
	for _, mood := range moods {
		scores = append(scores, float64(mood.MoodScore))
	}
	return scores, nil
}

func (service *InsightService) BuildEnergyBreakdown(now time.Time, location *time.Location) (EnergyBreakdown, error) {
	record, err := service.TodayBiometrics(now, location)
	if err != nil {
		return EnergyBreakdown{}, err
	}

	// Best effort: the breakdown degrades to a neutral mood rather than
	// failing when mood history cannot be loaded.
	scores, err := service.RecentMoodScores()
	if err != nil {
		scores = nil
	}

	return ComputeEnergyBreakdown(record, scores), nil
}

func (service *InsightService) BuildBurnoutAssessment() (BurnoutAssessment, error) {
	scores, err := service.RecentMoodScores()
	if err != nil {
		return BurnoutAssessment{}, err
	}
	return ClassifyBurnoutRisk(scores), nil
}

func (service *InsightService) BuildGoalAdjustmentPlan() (GoalAdjustmentPlan, error) {
	assessment, err := service.BuildBurnoutAssessment()
	if err != nil {
		return GoalAdjustmentPlan{}, err
	}
	return BuildGoalAdjustmentPlan(assessment), nil
}

func (service *InsightService) BuildWeeklyInsights(now time.Time) ([]Insight, error) {
	records, err := service.biometrics.FetchRecent(recentMoodWindow)
	if err != nil {
		return nil, err
	}
	moods, err := service.moods.FetchRecentMoods(recentMoodWindow)
	if err != nil {
		return nil, err
	}
	goals, err := service.goals.FetchGoals()
	if err != nil {
		return nil, err
	}

	return GenerateWeeklyInsights(records, moods, goals, now), nil
}

func (service *InsightService) BuildDailyRecommendation(now time.Time, location *time.Location) (DailyRecommendation, error) {
	record, err := service.TodayBiometrics(now, location)
	if err != nil {
		return DailyRecommendation{}, err
	}

	scores, err := service.RecentMoodScores()
	if err != nil {
		scores = nil
	}

	return BuildDailyRecommendation(record, scores, now, location), nil
}
