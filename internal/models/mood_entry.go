package models

import "time"

const (
	MoodGreat = "great"
	MoodGood  = "good"
	MoodOkay  = "okay"
	MoodLow   = "low"
	MoodPoor  = "poor"
)

const MaxMoodNoteLength = 50

type MoodEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MoodLabel string    `gorm:"not null" json:"mood_label"`
	MoodScore int       `gorm:"not null" json:"mood_score"`
	Note      string    `json:"note"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func MoodScoreForLabel(label string) int {
	switch label {
	case MoodGreat:
		return 5
	case MoodGood:
		return 4
	case MoodOkay:
		return 3
	case MoodLow:
		return 2
	case MoodPoor:
		return 1
	default:
		return 0
	}
}

func MoodLabelForScore(score int) string {
	switch score {
	case 5:
		return MoodGreat
	case 4:
		return MoodGood
	case 3:
		return MoodOkay
	case 2:
		return MoodLow
	case 1:
		return MoodPoor
	default:
		return ""
	}
}

func IsValidMoodScore(score int) bool {
	return score >= 1 && score <= 5
}
