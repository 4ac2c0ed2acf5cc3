package models

import (
	"math"
	"time"
)

const (
	CategoryHealth   = "health"
	CategoryWork     = "work"
	CategoryPersonal = "personal"
)

type Goal struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Title      string     `gorm:"not null" json:"title"`
	Category   string     `gorm:"not null;default:personal" json:"category"`
	Progress   int        `gorm:"not null;default:0" json:"progress"`
	TargetDate *time.Time `gorm:"type:date" json:"target_date,omitempty"`
	Tasks      []Task     `gorm:"constraint:OnDelete:CASCADE" json:"tasks"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type Task struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GoalID    uint      `gorm:"not null;index" json:"goal_id"`
	Title     string    `gorm:"not null" json:"title"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecalculateProgress derives progress from task completion. Progress is
// never stored independently of tasks: any task toggle goes through here.
func (goal *Goal) RecalculateProgress() {
	if len(goal.Tasks) == 0 {
		return
	}

	completed := 0
	for _, task := range goal.Tasks {
		if task.Completed {
			completed++
		}
	}
	goal.Progress = int(math.Round(float64(completed) / float64(len(goal.Tasks)) * 100))
}

func IsValidGoalCategory(category string) bool {
	switch category {
	case CategoryHealth, CategoryWork, CategoryPersonal:
		return true
	default:
		return false
	}
}
