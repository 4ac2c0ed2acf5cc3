package db

import (
	"fmt"
	"time"

	"github.com/flowsync/flowsync/internal/models"
	"gorm.io/gorm"
)

type seedDay struct {
	daysAgo     int
	sleepScore  float64
	sleepHours  float64
	hrv         float64
	restingHR   float64
	energyScore float64
	moodScore   int
	moodNote    string
}

// Two weeks of plausible demo data, replacing the static fixtures the
// frontend used to ship. Only written when every table is empty.
var seedDays = []seedDay{
	{14, 72, 6.8, 38, 68, 64, 3, "busy day at work"},
	{13, 80, 7.4, 44, 66, 74, 4, "evening walk"},
	{12, 85, 7.9, 48, 64, 82, 4, "good workout session"},
	{11, 69, 6.4, 35, 70, 58, 2, "too many tasks, skipped lunch"},
	{10, 77, 7.2, 42, 66, 71, 3, ""},
	{9, 88, 8.1, 51, 63, 85, 5, "journaling before bed helped"},
	{8, 83, 7.7, 47, 64, 80, 4, "morning run"},
	{7, 74, 7.0, 40, 67, 68, 3, "long meetings"},
	{6, 66, 6.2, 33, 71, 55, 2, "work deadline stress"},
	{5, 79, 7.5, 43, 65, 73, 4, "short meditation break"},
	{4, 86, 8.0, 49, 63, 84, 4, "relaxed weekend"},
	{3, 90, 8.3, 53, 62, 88, 5, "great sleep, felt rested"},
	{2, 81, 7.6, 45, 65, 77, 4, ""},
	{1, 75, 7.1, 41, 66, 70, 3, "quiet evening"},
}

func SeedDemoData(database *gorm.DB, now time.Time, location *time.Location) error {
	repos := NewRepositories(database)

	moodCount, err := repos.Moods.Count()
	if err != nil {
		return fmt.Errorf("count moods: %w", err)
	}
	biometricCount, err := repos.Biometrics.Count()
	if err != nil {
		return fmt.Errorf("count biometrics: %w", err)
	}
	goalCount, err := repos.Goals.Count()
	if err != nil {
		return fmt.Errorf("count goals: %w", err)
	}
	if moodCount > 0 || biometricCount > 0 || goalCount > 0 {
		return nil
	}

	return database.Transaction(func(tx *gorm.DB) error {
		year, month, day := now.In(location).Date()
		today := time.Date(year, month, day, 0, 0, 0, 0, location)

		for _, seed := range seedDays {
			date := today.AddDate(0, 0, -seed.daysAgo)

			record := models.BiometricRecord{
				Date:        date,
				SleepScore:  seed.sleepScore,
				SleepHours:  seed.sleepHours,
				HRV:         seed.hrv,
				RestingHR:   seed.restingHR,
				EnergyLevel: models.EnergyLevelForScore(seed.energyScore),
				EnergyScore: seed.energyScore,
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("seed biometric record: %w", err)
			}

			entry := models.MoodEntry{
				MoodLabel: models.MoodLabelForScore(seed.moodScore),
				MoodScore: seed.moodScore,
				Note:      seed.moodNote,
				Timestamp: date.Add(20 * time.Hour),
			}
			if err := tx.Create(&entry).Error; err != nil {
				return fmt.Errorf("seed mood entry: %w", err)
			}
		}

		goals := seedGoals(today)
		for i := range goals {
			goals[i].RecalculateProgress()
			if err := tx.Create(&goals[i]).Error; err != nil {
				return fmt.Errorf("seed goal: %w", err)
			}
		}

		return nil
	})
}

func seedGoals(today time.Time) []models.Goal {
	sleepTarget := today.AddDate(0, 1, 0)
	projectTarget := today.AddDate(0, 0, 21)

	return []models.Goal{
		{
			Title:      "Improve sleep routine",
			Category:   models.CategoryHealth,
			TargetDate: &sleepTarget,
			Tasks: []models.Task{
				{Title: "Set a consistent bedtime", Completed: true},
				{Title: "No screens after 22:00"},
				{Title: "Track sleep for two weeks", Completed: true},
			},
		},
		{
			Title:      "Ship quarterly project",
			Category:   models.CategoryWork,
			TargetDate: &projectTarget,
			Tasks: []models.Task{
				{Title: "Finish design review", Completed: true},
				{Title: "Implement core features"},
				{Title: "Prepare launch checklist"},
			},
		},
		{
			Title:    "Daily mindfulness practice",
			Category: models.CategoryPersonal,
			Tasks: []models.Task{
				{Title: "Meditate 5 minutes each morning"},
				{Title: "Journal three evenings a week", Completed: true},
			},
		},
	}
}
