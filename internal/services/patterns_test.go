package services

import (
	"testing"
	"time"

	"github.com/flowsync/flowsync/internal/models"
)

func makeRecord(date string, sleepScore float64, sleepHours float64, hrv float64, restingHR float64, energyScore float64) models.BiometricRecord {
	return models.BiometricRecord{
		Date:        mustParseDay(date),
		SleepScore:  sleepScore,
		SleepHours:  sleepHours,
		HRV:         hrv,
		RestingHR:   restingHR,
		EnergyLevel: models.EnergyLevelForScore(energyScore),
		EnergyScore: energyScore,
	}
}

func makeMood(date string, score int, note string) models.MoodEntry {
	return models.MoodEntry{
		MoodLabel: models.MoodLabelForScore(score),
		MoodScore: score,
		Note:      note,
		Timestamp: mustParseDay(date).Add(20 * time.Hour),
	}
}

func mustParseDay(raw string) time.Time {
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestTieredConfidence(t *testing.T) {
	tests := []struct {
		points int
		want   float64
	}{
		{0, 0.3},
		{2, 0.3},
		{3, 0.6},
		{6, 0.6},
		{7, 0.8},
		{13, 0.8},
		{14, 0.95},
		{30, 0.95},
	}
	for _, testCase := range tests {
		if got := TieredConfidence(testCase.points); got != testCase.want {
			t.Fatalf("expected confidence %.2f for %d points, got %.2f", testCase.want, testCase.points, got)
		}
	}
}

func TestAnalyzeWeekdayProductivityTieIsDeterministic(t *testing.T) {
	// 2026-08-27 is a Thursday; 2026-08-25 a Tuesday. Identical composites,
	// so the earlier weekday in Sunday-first order must win every run.
	records := []models.BiometricRecord{
		makeRecord("2026-08-27", 80, 7.5, 45, 64, 82),
		makeRecord("2026-08-25", 80, 7.5, 45, 64, 82),
	}

	for range [10]struct{}{} {
		best := AnalyzeWeekdayProductivity(records)
		if best.Day != "Tuesday" {
			t.Fatalf("expected Tuesday to win the tie, got %s", best.Day)
		}
	}
}

func TestAnalyzeWeekdayProductivity(t *testing.T) {
	// 2026-08-24 is a Monday; 2026-08-26 a Wednesday.
	records := []models.BiometricRecord{
		makeRecord("2026-08-24", 80, 7.0, 45, 64, 70),
		makeRecord("2026-08-26", 90, 8.0, 50, 62, 88),
		makeRecord("2026-08-31", 78, 6.8, 42, 66, 68),
	}

	best := AnalyzeWeekdayProductivity(records)
	if !best.Found {
		t.Fatal("expected a best weekday")
	}
	if best.Day != "Wednesday" {
		t.Fatalf("expected Wednesday as best day, got %s", best.Day)
	}
	// Composite 88 + 8*10 = 168 beats Monday's (70+68)/2 + 6.9*10 = 138.
	if best.CompositeScore != 168 {
		t.Fatalf("expected composite 168, got %d", best.CompositeScore)
	}
	if best.AvgEnergy != 88 || best.AvgSleep != 8.0 {
		t.Fatalf("unexpected averages: energy %d, sleep %.1f", best.AvgEnergy, best.AvgSleep)
	}
}

func TestAnalyzeWeekdayProductivityEmptyInput(t *testing.T) {
	best := AnalyzeWeekdayProductivity(nil)
	if best.Found {
		t.Fatal("expected no result for empty input")
	}
	if best.Confidence != 0 {
		t.Fatalf("expected confidence 0, got %f", best.Confidence)
	}
}

func TestAnalyzeSleepProductivity(t *testing.T) {
	records := []models.BiometricRecord{
		makeRecord("2026-08-20", 85, 8.2, 48, 63, 85),
		makeRecord("2026-08-21", 88, 8.0, 50, 62, 90),
		makeRecord("2026-08-22", 62, 6.0, 34, 70, 55),
		makeRecord("2026-08-23", 60, 6.4, 33, 71, 50),
		makeRecord("2026-08-24", 75, 7.3, 42, 66, 70),
	}

	correlation := AnalyzeSleepProductivity(records)
	if !correlation.Found {
		t.Fatal("expected both cohorts populated")
	}
	if correlation.OptimalSleep != 8.1 {
		t.Fatalf("expected optimal sleep 8.1, got %.1f", correlation.OptimalSleep)
	}
	if correlation.LowSleep != 6.2 {
		t.Fatalf("expected low sleep 6.2, got %.1f", correlation.LowSleep)
	}
	if correlation.Difference != 1.9 {
		t.Fatalf("expected difference 1.9, got %.1f", correlation.Difference)
	}
}

func TestAnalyzeSleepProductivityRequiresBothCohorts(t *testing.T) {
	highOnly := []models.BiometricRecord{
		makeRecord("2026-08-20", 85, 8.2, 48, 63, 85),
		makeRecord("2026-08-21", 88, 8.0, 50, 62, 90),
	}
	if correlation := AnalyzeSleepProductivity(highOnly); correlation.Found {
		t.Fatal("expected no result without a low-energy cohort")
	}
	if correlation := AnalyzeSleepProductivity(nil); correlation.Found || correlation.Confidence != 0 {
		t.Fatal("expected empty neutral result for no data")
	}
}

func TestAnalyzeMoodTaskCorrelation(t *testing.T) {
	records := []models.BiometricRecord{
		makeRecord("2026-08-20", 70, 6.5, 38, 68, 60),
		makeRecord("2026-08-21", 66, 6.2, 35, 70, 52),
		makeRecord("2026-08-22", 85, 8.0, 48, 63, 84),
	}
	moods := []models.MoodEntry{
		makeMood("2026-08-20", 2, "too many tasks today"),
		makeMood("2026-08-21", 1, "felt off"),
		makeMood("2026-08-22", 5, "great day"),
	}

	correlation := AnalyzeMoodTaskCorrelation(moods, records)
	if correlation.TotalMoodDips != 2 {
		t.Fatalf("expected 2 mood dips, got %d", correlation.TotalMoodDips)
	}
	if correlation.TaskRelatedDips != 1 {
		t.Fatalf("expected 1 task-related dip, got %d", correlation.TaskRelatedDips)
	}
	if correlation.AvgEnergyOnDips != 56 {
		t.Fatalf("expected average dip energy 56, got %d", correlation.AvgEnergyOnDips)
	}
}

func TestAnalyzeMoodTaskCorrelationIgnoresDipsWithoutBiometrics(t *testing.T) {
	moods := []models.MoodEntry{makeMood("2026-08-20", 1, "busy")}

	correlation := AnalyzeMoodTaskCorrelation(moods, nil)
	if correlation.TotalMoodDips != 0 {
		t.Fatalf("expected no counted dips without same-day biometrics, got %d", correlation.TotalMoodDips)
	}
}

func TestAnalyzeHeartRatePatterns(t *testing.T) {
	records := []models.BiometricRecord{
		makeRecord("2026-08-20", 85, 7.8, 52, 62, 80),
		makeRecord("2026-08-21", 80, 7.5, 48, 64, 75),
		makeRecord("2026-08-22", 75, 7.0, 40, 67, 68),
	}
	moods := []models.MoodEntry{
		makeMood("2026-08-20", 5, "journaling before bed"),
		makeMood("2026-08-21", 4, "evening meditation session"),
		makeMood("2026-08-22", 3, "went for a run"),
	}

	pattern := AnalyzeHeartRatePatterns(records, moods)
	if pattern.MindfulnessDays != 2 {
		t.Fatalf("expected 2 mindfulness days, got %d", pattern.MindfulnessDays)
	}
	if pattern.ExerciseDays != 1 {
		t.Fatalf("expected 1 exercise day, got %d", pattern.ExerciseDays)
	}
	if pattern.AvgHRV != 50 {
		t.Fatalf("expected average HRV 50, got %d", pattern.AvgHRV)
	}
	if pattern.AvgMoodAfterActivity != 4.5 {
		t.Fatalf("expected average mood 4.5, got %.1f", pattern.AvgMoodAfterActivity)
	}
}

func TestAnalyzeHeartRatePatternsEmptyInput(t *testing.T) {
	pattern := AnalyzeHeartRatePatterns(nil, nil)
	if pattern.MindfulnessDays != 0 || pattern.AvgHRV != 0 {
		t.Fatalf("expected neutral result, got %#v", pattern)
	}
	if pattern.Confidence != 0 {
		t.Fatalf("expected confidence 0, got %f", pattern.Confidence)
	}
}
