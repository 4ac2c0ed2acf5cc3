package api

import (
	"time"

	"github.com/flowsync/flowsync/internal/db"
	"github.com/flowsync/flowsync/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db             *gorm.DB
	location       *time.Location
	repositories   *db.Repositories
	insightService *services.InsightService
	exportService  *services.ExportService
}

type moodPayload struct {
	MoodLabel string `json:"mood_label"`
	MoodScore int    `json:"mood_score"`
	Note      string `json:"note"`
	Timestamp string `json:"timestamp"`
}

type biometricPayload struct {
	Date        string  `json:"date"`
	SleepScore  float64 `json:"sleep_score"`
	SleepHours  float64 `json:"sleep_hours"`
	HRV         float64 `json:"hrv"`
	RestingHR   float64 `json:"resting_hr"`
	EnergyScore float64 `json:"energy_score"`
}

type taskPayload struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type goalPayload struct {
	Title      string        `json:"title"`
	Category   string        `json:"category"`
	TargetDate string        `json:"target_date"`
	Tasks      []taskPayload `json:"tasks"`
}

type moodTrendPoint struct {
	Date      string `json:"date"`
	MoodLabel string `json:"mood_label"`
	MoodScore int    `json:"mood_score"`
}
