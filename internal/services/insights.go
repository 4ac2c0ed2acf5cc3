package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/flowsync/flowsync/internal/models"
)

const maxWeeklyInsights = 8

// Insight pattern tags. IDs are stable per tag within a single generation,
// not globally unique across calls.
const (
	PatternProductivity   = "productivity_pattern"
	PatternSleepProd      = "sleep_productivity"
	PatternMoodTask       = "mood_task_correlation"
	PatternHRVMindfulness = "hrv_mindfulness"
	PatternSleepImproving = "sleep_improvement"
	PatternRecoveryNeeded = "recovery_needed"
	PatternEnergyBoost    = "energy_boost"
	PatternConsistency    = "consistent_performance"
	PatternOptimalBalance = "optimal_balance"
)

type Insight struct {
	ID              uint     `json:"id"`
	Title           string   `json:"title"`
	Pattern         string   `json:"pattern"`
	Period          string   `json:"period"`
	Score           int      `json:"score"`
	Confidence      float64  `json:"confidence"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
	GoalCorrelation string   `json:"goal_correlation,omitempty"`
}

type WeeklyAverages struct {
	SleepScore  int     `json:"sleep_score"`
	SleepHours  float64 `json:"sleep_hours"`
	HRV         int     `json:"hrv"`
	RestingHR   int     `json:"resting_hr"`
	EnergyScore int     `json:"energy_score"`
}

type WeeklyTrends struct {
	Sleep  float64 `json:"sleep"`
	Energy float64 `json:"energy"`
}

func BuildWeeklyAverages(records []models.BiometricRecord) WeeklyAverages {
	sleepScores := make([]float64, 0, len(records))
	sleepHours := make([]float64, 0, len(records))
	hrvs := make([]float64, 0, len(records))
	restingHRs := make([]float64, 0, len(records))
	energyScores := make([]float64, 0, len(records))
	for _, record := range records {
		sleepScores = append(sleepScores, record.SleepScore)
		sleepHours = append(sleepHours, record.SleepHours)
		hrvs = append(hrvs, record.HRV)
		restingHRs = append(restingHRs, record.RestingHR)
		energyScores = append(energyScores, record.EnergyScore)
	}

	return WeeklyAverages{
		SleepScore:  roundToInt(Mean(sleepScores)),
		SleepHours:  math.Round(Mean(sleepHours)*10) / 10,
		HRV:         roundToInt(Mean(hrvs)),
		RestingHR:   roundToInt(Mean(restingHRs)),
		EnergyScore: roundToInt(Mean(energyScores)),
	}
}

// BuildWeeklyTrends compares the second half of the range to the first.
func BuildWeeklyTrends(records []models.BiometricRecord) WeeklyTrends {
	sleepScores := make([]float64, 0, len(records))
	energyScores := make([]float64, 0, len(records))
	for _, record := range records {
		sleepScores = append(sleepScores, record.SleepScore)
		energyScores = append(energyScores, record.EnergyScore)
	}

	return WeeklyTrends{
		Sleep:  LinearTrend(sleepScores),
		Energy: LinearTrend(energyScores),
	}
}

// GenerateWeeklyInsights runs every analysis over the weekly data, renders
// the surfaced ones into templated insight records, attaches goal
// correlations, and returns at most 8 insights sorted descending by score.
// Ties keep insertion order.
func GenerateWeeklyInsights(records []models.BiometricRecord, moods []models.MoodEntry, goals []models.Goal, now time.Time) []Insight {
	period := weeklyPeriodLabel(now)
	averages := BuildWeeklyAverages(records)
	trends := BuildWeeklyTrends(records)
	confidence := TieredConfidence(len(records))

	insights := make([]Insight, 0, maxWeeklyInsights)

	if productivity := AnalyzeWeekdayProductivity(records); productivity.Found {
		insights = append(insights, Insight{
			ID:         101,
			Title:      "Productivity Pattern Discovered",
			Pattern:    PatternProductivity,
			Period:     period,
			Score:      productivity.CompositeScore,
			Confidence: productivity.Confidence,
			Summary: fmt.Sprintf(
				"You're more productive on %ss! Average energy: %d, typically after %.1f hours of sleep.",
				productivity.Day, productivity.AvgEnergy, productivity.AvgSleep),
			Recommendations: []string{
				fmt.Sprintf("Schedule important tasks on %ss when possible", productivity.Day),
				fmt.Sprintf("Maintain %.1f+ hours of sleep before key days", productivity.AvgSleep),
				fmt.Sprintf("Use %ss for your most challenging work", productivity.Day),
			},
			GoalCorrelation: goalCorrelation(goals, PatternProductivity),
		})
	}

	if correlation := AnalyzeSleepProductivity(records); correlation.Found && correlation.Difference > 0.5 {
		insights = append(insights, Insight{
			ID:         102,
			Title:      "Sleep-Productivity Connection",
			Pattern:    PatternSleepProd,
			Period:     period,
			Score:      roundToInt(correlation.OptimalSleep * 10),
			Confidence: correlation.Confidence,
			Summary: fmt.Sprintf(
				"Your productivity peaks after %.1f+ hours of sleep. You're %.1f hours more rested on high-energy days.",
				correlation.OptimalSleep, correlation.Difference),
			Recommendations: []string{
				fmt.Sprintf("Target %.1f+ hours of sleep for optimal performance", correlation.OptimalSleep),
				"Track your bedtime to ensure consistent sleep duration",
				"Consider adjusting your evening routine to improve sleep quality",
			},
			GoalCorrelation: goalCorrelation(goals, PatternSleepProd),
		})
	}

	if moodTask := AnalyzeMoodTaskCorrelation(moods, records); moodTask.TotalMoodDips > 0 {
		insights = append(insights, Insight{
			ID:         103,
			Title:      "Mood Dips on Task-Heavy Days",
			Pattern:    PatternMoodTask,
			Period:     period,
			Score:      100 - moodTask.AvgEnergyOnDips,
			Confidence: moodTask.Confidence,
			Summary: fmt.Sprintf(
				"Mood dipped on %d out of %d low-mood days, often during task-heavy periods without breaks.",
				moodTask.TaskRelatedDips, moodTask.TotalMoodDips),
			Recommendations: []string{
				"Schedule regular breaks during intensive work sessions",
				"Use the Pomodoro technique for better task management",
				"Consider brief mindfulness exercises between tasks",
			},
			GoalCorrelation: goalCorrelation(goals, PatternMoodTask),
		})
	}

	if heartRate := AnalyzeHeartRatePatterns(records, moods); heartRate.AvgHRV > 0 {
		insights = append(insights, Insight{
			ID:         104,
			Title:      "Heart Rate Calms After Mindfulness",
			Pattern:    PatternHRVMindfulness,
			Period:     period,
			Score:      heartRate.AvgHRV,
			Confidence: heartRate.Confidence,
			Summary: fmt.Sprintf(
				"Your heart rate variability improves to %dms after journaling and mindfulness activities. Mood improved to %.1f/5 on these days.",
				heartRate.AvgHRV, heartRate.AvgMoodAfterActivity),
			Recommendations: []string{
				"Continue daily journaling for cardiovascular benefits",
				"Add 5-10 minutes of meditation to your routine",
				"Track HRV improvements with consistent mindfulness practice",
			},
			GoalCorrelation: goalCorrelation(goals, PatternHRVMindfulness),
		})
	}

	insights = append(insights, trendInsights(records, averages, trends, goals, period, confidence)...)

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Score > insights[j].Score
	})
	if len(insights) > maxWeeklyInsights {
		insights = insights[:maxWeeklyInsights]
	}
	return insights
}

func trendInsights(records []models.BiometricRecord, averages WeeklyAverages, trends WeeklyTrends, goals []models.Goal, period string, confidence float64) []Insight {
	insights := make([]Insight, 0, 4)

	if trends.Sleep > 5 {
		insights = append(insights, Insight{
			ID:         1,
			Title:      "Sleep Quality Improving",
			Pattern:    PatternSleepImproving,
			Period:     period,
			Score:      averages.SleepScore,
			Confidence: confidence,
			Summary: fmt.Sprintf(
				"Your sleep quality improved by %d points this week. You're averaging %.1f hours of sleep with a quality score of %d.",
				roundToInt(trends.Sleep), averages.SleepHours, averages.SleepScore),
			Recommendations: []string{
				"Maintain your current bedtime routine",
				"Consider adding meditation before sleep",
				"Track what factors contribute to your best sleep nights",
			},
			GoalCorrelation: goalCorrelation(goals, "sleep"),
		})
	} else if trends.Sleep < -5 {
		insights = append(insights, Insight{
			ID:         2,
			Title:      "Sleep Recovery Needed",
			Pattern:    PatternRecoveryNeeded,
			Period:     period,
			Score:      averages.SleepScore,
			Confidence: confidence,
			Summary: fmt.Sprintf(
				"Sleep quality declined by %d points this week. Focus on recovery to improve your %d average score.",
				roundToInt(math.Abs(trends.Sleep)), averages.SleepScore),
			Recommendations: []string{
				"Establish a consistent bedtime routine",
				"Limit screen time before bed",
				"Consider an earlier bedtime to increase sleep duration",
			},
			GoalCorrelation: goalCorrelation(goals, "sleep"),
		})
	}

	if trends.Energy > 5 {
		insights = append(insights, Insight{
			ID:         3,
			Title:      "Energy Levels Rising",
			Pattern:    PatternEnergyBoost,
			Period:     period,
			Score:      averages.EnergyScore,
			Confidence: confidence,
			Summary: fmt.Sprintf(
				"Your energy levels increased by %d points this week. You're maintaining strong performance with an average score of %d.",
				roundToInt(trends.Energy), averages.EnergyScore),
			Recommendations: []string{
				"Capitalize on high energy with challenging tasks",
				"Consider increasing workout intensity",
				"Use this momentum to tackle important goals",
			},
			GoalCorrelation: goalCorrelation(goals, "energy"),
		})
	} else if trends.Energy < -5 {
		insights = append(insights, Insight{
			ID:         4,
			Title:      "Energy Dip Detected",
			Pattern:    PatternRecoveryNeeded,
			Period:     period,
			Score:      averages.EnergyScore,
			Confidence: confidence,
			Summary: fmt.Sprintf(
				"Energy levels dropped by %d points this week. Your current average is %d - time to focus on recovery.",
				roundToInt(math.Abs(trends.Energy)), averages.EnergyScore),
			Recommendations: []string{
				"Prioritize rest and recovery activities",
				"Reduce high-intensity workouts temporarily",
				"Focus on stress management and relaxation",
			},
			GoalCorrelation: goalCorrelation(goals, "energy"),
		})
	}

	energyScores := make([]float64, 0, len(records))
	for _, record := range records {
		energyScores = append(energyScores, record.EnergyScore)
	}
	if len(records) >= 2 && ConsistencyScore(energyScores) > 0.8 {
		insights = append(insights, Insight{
			ID:         5,
			Title:      "Consistent Performance",
			Pattern:    PatternConsistency,
			Period:     period,
			Score:      averages.EnergyScore,
			Confidence: confidence,
			Summary: fmt.Sprintf(
				"Excellent consistency this week! Your metrics show stable patterns with minimal day-to-day variation. Average energy score: %d.",
				averages.EnergyScore),
			Recommendations: []string{
				"Continue your current routine - it's working well",
				"Consider gradually increasing goals or challenges",
				"Document what's working to replicate success",
			},
			GoalCorrelation: goalCorrelation(goals, "consistency"),
		})
	}

	if averages.SleepScore > 80 && averages.EnergyScore > 80 && averages.HRV > 45 {
		insights = append(insights, Insight{
			ID:         6,
			Title:      "Optimal Balance Achieved",
			Pattern:    PatternOptimalBalance,
			Period:     period,
			Score:      roundToInt(float64(averages.SleepScore+averages.EnergyScore) / 2),
			Confidence: confidence,
			Summary: fmt.Sprintf(
				"Outstanding week! You've achieved optimal balance with high sleep quality (%d), energy (%d), and HRV (%dms).",
				averages.SleepScore, averages.EnergyScore, averages.HRV),
			Recommendations: []string{
				"This is your peak performance zone - maintain these habits",
				"Perfect time to tackle your most challenging goals",
				"Consider sharing your routine with others",
			},
			GoalCorrelation: goalCorrelation(goals, "optimal"),
		})
	}

	return insights
}

func goalCorrelation(goals []models.Goal, pattern string) string {
	if len(goals) == 0 {
		return ""
	}

	healthCount := countGoalsByCategory(goals, models.CategoryHealth)
	workCount := countGoalsByCategory(goals, models.CategoryWork)
	personalCount := countGoalsByCategory(goals, models.CategoryPersonal)

	switch pattern {
	case "sleep", PatternSleepImproving, PatternRecoveryNeeded:
		return fmt.Sprintf("Your sleep improvements are supporting your health goals. %d health goal(s) may benefit from continued sleep optimization.", healthCount)
	case "energy", PatternEnergyBoost:
		return "Higher energy levels will help you achieve your active goals. Consider focusing on your health-related objectives."
	case "consistency", PatternConsistency:
		return "Your consistent performance creates a strong foundation for goal achievement. Keep up the momentum!"
	case "optimal", PatternOptimalBalance:
		return "With optimal performance, you're well-positioned to make significant progress on all your goals."
	case PatternProductivity:
		return fmt.Sprintf("Your productivity patterns can help optimize your %d work goal(s). Schedule important tasks during peak performance times.", workCount)
	case PatternSleepProd:
		return fmt.Sprintf("Understanding your sleep-productivity connection can boost achievement of your %d active goal(s).", len(goals))
	case PatternMoodTask:
		return fmt.Sprintf("Managing mood fluctuations will support progress on your %d personal development goal(s).", personalCount)
	case PatternHRVMindfulness:
		return fmt.Sprintf("Your mindfulness practice is enhancing both physical and mental well-being, supporting %d health goal(s).", healthCount)
	default:
		return fmt.Sprintf("This pattern may impact your %d active goal(s).", len(goals))
	}
}

func countGoalsByCategory(goals []models.Goal, category string) int {
	count := 0
	for _, goal := range goals {
		if goal.Category == category {
			count++
		}
	}
	return count
}

// weeklyPeriodLabel formats the Sunday-to-Saturday week around now,
// e.g. "Jan 4 - Jan 10".
func weeklyPeriodLabel(now time.Time) string {
	weekStart := now.AddDate(0, 0, -int(now.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6)
	return fmt.Sprintf("%s - %s", weekStart.Format("Jan 2"), weekEnd.Format("Jan 2"))
}
