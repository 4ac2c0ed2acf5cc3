package models

import "time"

const (
	EnergyLow    = "low"
	EnergyMedium = "medium"
	EnergyHigh   = "high"
)

type BiometricRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex" json:"date"`
	SleepScore  float64   `gorm:"not null" json:"sleep_score"`
	SleepHours  float64   `gorm:"not null" json:"sleep_hours"`
	HRV         float64   `gorm:"not null" json:"hrv"`
	RestingHR   float64   `gorm:"not null" json:"resting_hr"`
	EnergyLevel string    `gorm:"not null;default:medium" json:"energy_level"`
	EnergyScore float64   `gorm:"not null" json:"energy_score"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EnergyLevelForScore keeps the stored level consistent with the score:
// above 80 is high, below 65 is low, everything between is medium.
func EnergyLevelForScore(score float64) string {
	if score > 80 {
		return EnergyHigh
	}
	if score < 65 {
		return EnergyLow
	}
	return EnergyMedium
}
