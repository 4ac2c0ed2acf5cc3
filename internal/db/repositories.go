package db

import "gorm.io/gorm"

type Repositories struct {
	Moods      *MoodRepository
	Biometrics *BiometricRepository
	Goals      *GoalRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Moods:      NewMoodRepository(database),
		Biometrics: NewBiometricRepository(database),
		Goals:      NewGoalRepository(database),
	}
}
