package api

import (
	"time"

	"github.com/flowsync/flowsync/internal/db"
	"github.com/flowsync/flowsync/internal/models"
	"github.com/flowsync/flowsync/internal/services"
)

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}

	moods := moodStore{repo: handler.repositories.Moods}
	biometrics := biometricStore{repo: handler.repositories.Biometrics}
	goals := goalStore{repo: handler.repositories.Goals}

	if handler.insightService == nil {
		handler.insightService = services.NewInsightService(moods, biometrics, goals)
	}
	if handler.exportService == nil {
		handler.exportService = services.NewExportService(biometrics, moods)
	}
}

// Thin adapters between the repositories and the reader interfaces the
// services consume.
type moodStore struct {
	repo *db.MoodRepository
}

func (store moodStore) FetchRecentMoods(limit int) ([]models.MoodEntry, error) {
	return store.repo.ListRecent(limit)
}

func (store moodStore) FetchAllMoods() ([]models.MoodEntry, error) {
	return store.repo.ListAll()
}

type biometricStore struct {
	repo *db.BiometricRepository
}

func (store biometricStore) FetchForDayRange(dayStart time.Time, dayEnd time.Time) (models.BiometricRecord, bool, error) {
	return store.repo.FindByDayRange(dayStart, dayEnd)
}

func (store biometricStore) FetchRecent(limit int) ([]models.BiometricRecord, error) {
	return store.repo.ListRecent(limit)
}

func (store biometricStore) FetchRange(from *time.Time, to *time.Time) ([]models.BiometricRecord, error) {
	return store.repo.ListRange(from, to)
}

type goalStore struct {
	repo *db.GoalRepository
}

func (store goalStore) FetchGoals() ([]models.Goal, error) {
	return store.repo.ListAll()
}
