package services

import (
	"math"
	"strings"
	"time"

	"github.com/flowsync/flowsync/internal/models"
)

var taskContextKeywords = []string{"task", "work", "busy"}
var mindfulnessContextKeywords = []string{"journal", "meditat", "relax"}
var exerciseContextKeywords = []string{"exercise", "workout", "run"}

// TieredConfidence maps sample size to analysis confidence. The step
// function is stable at small n, unlike a linear ramp.
func TieredConfidence(dataPoints int) float64 {
	switch {
	case dataPoints < 3:
		return 0.3
	case dataPoints < 7:
		return 0.6
	case dataPoints < 14:
		return 0.8
	default:
		return 0.95
	}
}

type WeekdayProductivity struct {
	Found          bool    `json:"found"`
	Day            string  `json:"day"`
	AvgEnergy      int     `json:"avg_energy"`
	AvgSleep       float64 `json:"avg_sleep"`
	CompositeScore int     `json:"composite_score"`
	Confidence     float64 `json:"confidence"`
}

// AnalyzeWeekdayProductivity buckets records by day of week and reports the
// weekday with the best energy + sleep composite. Sleep hours are weighted
// ten-fold so a full night competes with an energy point spread.
func AnalyzeWeekdayProductivity(records []models.BiometricRecord) WeekdayProductivity {
	if len(records) == 0 {
		return WeekdayProductivity{Confidence: 0}
	}

	type weekdayBucket struct {
		energyScores []float64
		sleepHours   []float64
	}
	buckets := make(map[time.Weekday]*weekdayBucket)
	for _, record := range records {
		weekday := record.Date.Weekday()
		bucket, ok := buckets[weekday]
		if !ok {
			bucket = &weekdayBucket{}
			buckets[weekday] = bucket
		}
		bucket.energyScores = append(bucket.energyScores, record.EnergyScore)
		bucket.sleepHours = append(bucket.sleepHours, record.SleepHours)
	}

	best := WeekdayProductivity{Confidence: TieredConfidence(len(records))}
	bestScore := 0.0
	// Fixed weekday order keeps the winner stable when composites tie.
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		bucket, ok := buckets[weekday]
		if !ok {
			continue
		}
		avgEnergy := Mean(bucket.energyScores)
		avgSleep := Mean(bucket.sleepHours)
		composite := avgEnergy + avgSleep*10

		if composite > bestScore {
			bestScore = composite
			best.Found = true
			best.Day = weekday.String()
			best.AvgEnergy = roundToInt(avgEnergy)
			best.AvgSleep = math.Round(avgSleep*10) / 10
			best.CompositeScore = roundToInt(composite)
		}
	}

	return best
}

type SleepProductivityCorrelation struct {
	Found        bool    `json:"found"`
	OptimalSleep float64 `json:"optimal_sleep"`
	LowSleep     float64 `json:"low_sleep"`
	Difference   float64 `json:"difference"`
	Confidence   float64 `json:"confidence"`
}

// AnalyzeSleepProductivity splits days into high-energy (>80) and low-energy
// (<60) cohorts and reports the sleep-hours gap between them. Both cohorts
// must be non-empty for a result.
func AnalyzeSleepProductivity(records []models.BiometricRecord) SleepProductivityCorrelation {
	highSleep := make([]float64, 0, len(records))
	lowSleep := make([]float64, 0, len(records))
	for _, record := range records {
		if record.EnergyScore > 80 {
			highSleep = append(highSleep, record.SleepHours)
		} else if record.EnergyScore < 60 {
			lowSleep = append(lowSleep, record.SleepHours)
		}
	}

	result := SleepProductivityCorrelation{Confidence: TieredConfidence(len(records))}
	if len(records) == 0 {
		result.Confidence = 0
	}
	if len(highSleep) == 0 || len(lowSleep) == 0 {
		return result
	}

	avgHigh := Mean(highSleep)
	avgLow := Mean(lowSleep)
	result.Found = true
	result.OptimalSleep = math.Round(avgHigh*10) / 10
	result.LowSleep = math.Round(avgLow*10) / 10
	result.Difference = math.Round((avgHigh-avgLow)*10) / 10
	return result
}

type MoodTaskCorrelation struct {
	TotalMoodDips   int     `json:"total_mood_dips"`
	TaskRelatedDips int     `json:"task_related_dips"`
	AvgEnergyOnDips int     `json:"avg_energy_on_dips"`
	Confidence      float64 `json:"confidence"`
}

// AnalyzeMoodTaskCorrelation finds mood dips (score below 3), cross-references
// same-day biometric energy, and counts how many dips carry task or work
// related context in the free-text note.
func AnalyzeMoodTaskCorrelation(moods []models.MoodEntry, records []models.BiometricRecord) MoodTaskCorrelation {
	recordsByDay := make(map[string]models.BiometricRecord, len(records))
	for _, record := range records {
		recordsByDay[DayKey(record.Date)] = record
	}

	dipEnergies := make([]float64, 0)
	taskRelated := 0
	for _, mood := range moods {
		if mood.MoodScore >= 3 {
			continue
		}
		record, ok := recordsByDay[DayKey(mood.Timestamp)]
		if !ok {
			continue
		}
		dipEnergies = append(dipEnergies, record.EnergyScore)
		if containsAnyKeyword(mood.Note, taskContextKeywords) {
			taskRelated++
		}
	}

	result := MoodTaskCorrelation{
		TotalMoodDips:   len(dipEnergies),
		TaskRelatedDips: taskRelated,
		Confidence:      TieredConfidence(len(moods)),
	}
	if len(moods) == 0 {
		result.Confidence = 0
	}
	if len(dipEnergies) > 0 {
		result.AvgEnergyOnDips = roundToInt(Mean(dipEnergies))
	}
	return result
}

type MindfulnessPattern struct {
	AvgHRV               int     `json:"avg_hrv"`
	AvgRestingHR         int     `json:"avg_resting_hr"`
	MindfulnessDays      int     `json:"mindfulness_days"`
	ExerciseDays         int     `json:"exercise_days"`
	AvgMoodAfterActivity float64 `json:"avg_mood_after_activity"`
	Confidence           float64 `json:"confidence"`
}

// AnalyzeHeartRatePatterns cross-references mood notes mentioning
// mindfulness or exercise with same-day HRV and resting heart rate. The
// reported averages cover the mindfulness subset, the group the dashboard
// surfaces.
func AnalyzeHeartRatePatterns(records []models.BiometricRecord, moods []models.MoodEntry) MindfulnessPattern {
	moodsByDay := make(map[string]models.MoodEntry, len(moods))
	for _, mood := range moods {
		moodsByDay[DayKey(mood.Timestamp)] = mood
	}

	mindfulnessHRVs := make([]float64, 0)
	mindfulnessHRs := make([]float64, 0)
	mindfulnessMoods := make([]float64, 0)
	exerciseDays := 0

	for _, record := range records {
		mood, ok := moodsByDay[DayKey(record.Date)]
		if !ok || strings.TrimSpace(mood.Note) == "" {
			continue
		}

		if containsAnyKeyword(mood.Note, mindfulnessContextKeywords) {
			mindfulnessHRVs = append(mindfulnessHRVs, record.HRV)
			mindfulnessHRs = append(mindfulnessHRs, record.RestingHR)
			mindfulnessMoods = append(mindfulnessMoods, float64(mood.MoodScore))
		}
		if containsAnyKeyword(mood.Note, exerciseContextKeywords) {
			exerciseDays++
		}
	}

	result := MindfulnessPattern{
		MindfulnessDays: len(mindfulnessHRVs),
		ExerciseDays:    exerciseDays,
		Confidence:      TieredConfidence(len(records)),
	}
	if len(records) == 0 {
		result.Confidence = 0
	}
	if len(mindfulnessHRVs) > 0 {
		result.AvgHRV = roundToInt(Mean(mindfulnessHRVs))
		result.AvgRestingHR = roundToInt(Mean(mindfulnessHRs))
		result.AvgMoodAfterActivity = math.Round(Mean(mindfulnessMoods)*10) / 10
	}
	return result
}

func containsAnyKeyword(text string, keywords []string) bool {
	lowered := strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
