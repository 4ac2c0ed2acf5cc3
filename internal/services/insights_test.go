package services

import (
	"strings"
	"testing"

	"github.com/flowsync/flowsync/internal/models"
)

func strongWeekRecords() []models.BiometricRecord {
	// Seven distinct weekdays, everything trending up and staying high.
	return []models.BiometricRecord{
		makeRecord("2026-08-24", 78, 7.2, 46, 64, 80),
		makeRecord("2026-08-25", 80, 7.4, 47, 63, 82),
		makeRecord("2026-08-26", 82, 7.6, 48, 63, 84),
		makeRecord("2026-08-27", 86, 7.8, 49, 62, 86),
		makeRecord("2026-08-28", 88, 8.0, 50, 62, 88),
		makeRecord("2026-08-29", 90, 8.2, 51, 61, 90),
		makeRecord("2026-08-30", 92, 8.4, 52, 61, 92),
	}
}

func TestGenerateWeeklyInsightsStrongWeek(t *testing.T) {
	records := strongWeekRecords()
	moods := []models.MoodEntry{
		makeMood("2026-08-24", 2, "heavy work day"),
		makeMood("2026-08-28", 4, "evening meditation"),
	}
	goals := []models.Goal{
		{Title: "Ship the release", Category: models.CategoryWork},
		{Title: "Morning runs", Category: models.CategoryHealth},
	}
	now := mustParseDay("2026-08-29")

	insights := GenerateWeeklyInsights(records, moods, goals, now)

	if len(insights) != 7 {
		t.Fatalf("expected 7 insights, got %d", len(insights))
	}
	for i := 1; i < len(insights); i++ {
		if insights[i].Score > insights[i-1].Score {
			t.Fatalf("expected descending scores, got %d before %d", insights[i-1].Score, insights[i].Score)
		}
	}

	// The weekday composite (energy 92 + 8.4h sleep) dominates everything.
	if insights[0].ID != 101 {
		t.Fatalf("expected productivity pattern first, got id %d", insights[0].ID)
	}
	if insights[0].Score != 176 {
		t.Fatalf("expected top score 176, got %d", insights[0].Score)
	}
	if !strings.Contains(insights[0].Summary, "Sunday") {
		t.Fatalf("expected Sunday in summary, got %q", insights[0].Summary)
	}
	if !strings.Contains(insights[0].GoalCorrelation, "1 work goal") {
		t.Fatalf("expected work-goal correlation, got %q", insights[0].GoalCorrelation)
	}

	seen := make(map[uint]bool, len(insights))
	for _, insight := range insights {
		seen[insight.ID] = true
	}
	for _, want := range []uint{101, 103, 104, 1, 3, 5, 6} {
		if !seen[want] {
			t.Fatalf("expected insight id %d to surface, seen %v", want, seen)
		}
	}

	// 2026-08-29 is a Saturday, so the week runs Aug 23 through Aug 29.
	if insights[0].Period != "Aug 23 - Aug 29" {
		t.Fatalf("unexpected period label %q", insights[0].Period)
	}
}

func TestGenerateWeeklyInsightsDecliningWeek(t *testing.T) {
	records := []models.BiometricRecord{
		makeRecord("2026-08-24", 90, 8.0, 46, 64, 90),
		makeRecord("2026-08-25", 90, 8.0, 46, 64, 88),
		makeRecord("2026-08-26", 90, 8.0, 46, 64, 86),
		makeRecord("2026-08-27", 80, 6.5, 40, 68, 50),
		makeRecord("2026-08-28", 78, 6.5, 38, 69, 48),
		makeRecord("2026-08-29", 76, 6.5, 36, 70, 46),
	}
	now := mustParseDay("2026-08-29")

	insights := GenerateWeeklyInsights(records, nil, nil, now)

	byID := make(map[uint]Insight, len(insights))
	for _, insight := range insights {
		byID[insight.ID] = insight
	}

	sleepRecovery, ok := byID[2]
	if !ok {
		t.Fatalf("expected sleep recovery insight, got %v", insights)
	}
	if sleepRecovery.Pattern != PatternRecoveryNeeded {
		t.Fatalf("expected recovery pattern, got %s", sleepRecovery.Pattern)
	}
	if !strings.Contains(sleepRecovery.Summary, "declined by 12 points") {
		t.Fatalf("unexpected sleep summary %q", sleepRecovery.Summary)
	}

	energyDip, ok := byID[4]
	if !ok {
		t.Fatalf("expected energy dip insight, got %v", insights)
	}
	if !strings.Contains(energyDip.Summary, "dropped by 40 points") {
		t.Fatalf("unexpected energy summary %q", energyDip.Summary)
	}
	if energyDip.GoalCorrelation != "" {
		t.Fatalf("expected no goal correlation without goals, got %q", energyDip.GoalCorrelation)
	}

	if _, found := byID[5]; found {
		t.Fatal("did not expect a consistency insight for a volatile week")
	}
	if _, found := byID[6]; found {
		t.Fatal("did not expect optimal balance during a decline")
	}
}

func TestGenerateWeeklyInsightsEmptyInputs(t *testing.T) {
	insights := GenerateWeeklyInsights(nil, nil, nil, mustParseDay("2026-08-29"))
	if len(insights) != 0 {
		t.Fatalf("expected no insights without data, got %d", len(insights))
	}
}

func TestBuildWeeklyAverages(t *testing.T) {
	averages := BuildWeeklyAverages(strongWeekRecords())

	if averages.SleepScore != 85 {
		t.Fatalf("expected sleep score 85, got %d", averages.SleepScore)
	}
	if averages.SleepHours != 7.8 {
		t.Fatalf("expected sleep hours 7.8, got %.1f", averages.SleepHours)
	}
	if averages.HRV != 49 {
		t.Fatalf("expected hrv 49, got %d", averages.HRV)
	}
	if averages.EnergyScore != 86 {
		t.Fatalf("expected energy score 86, got %d", averages.EnergyScore)
	}
}

func TestBuildWeeklyTrendsSplitsTheWindow(t *testing.T) {
	trends := BuildWeeklyTrends(strongWeekRecords())

	// Sleep scores: first half [78 80 82] avg 80, second [86 88 90 92] avg 89.
	if !almostEqual(trends.Sleep, 9) {
		t.Fatalf("expected sleep trend 9, got %f", trends.Sleep)
	}
	if !almostEqual(trends.Energy, 7) {
		t.Fatalf("expected energy trend 7, got %f", trends.Energy)
	}
}
