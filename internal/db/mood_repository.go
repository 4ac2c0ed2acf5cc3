package db

import (
	"github.com/flowsync/flowsync/internal/models"
	"gorm.io/gorm"
)

type MoodRepository struct {
	database *gorm.DB
}

func NewMoodRepository(database *gorm.DB) *MoodRepository {
	return &MoodRepository{database: database}
}

// ListAll returns entries newest first, the order the journal displays them.
func (repo *MoodRepository) ListAll() ([]models.MoodEntry, error) {
	entries := make([]models.MoodEntry, 0)
	if err := repo.database.Order("timestamp DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListRecent returns up to limit entries in chronological order,
// most-recent-last, the order trend math expects.
func (repo *MoodRepository) ListRecent(limit int) ([]models.MoodEntry, error) {
	entries := make([]models.MoodEntry, 0, limit)
	if err := repo.database.Order("timestamp DESC, id DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func (repo *MoodRepository) FindByID(id uint) (models.MoodEntry, bool, error) {
	entry := models.MoodEntry{}
	result := repo.database.Limit(1).Find(&entry, id)
	if result.Error != nil {
		return models.MoodEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MoodEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *MoodRepository) Create(entry *models.MoodEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *MoodRepository) Save(entry *models.MoodEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *MoodRepository) DeleteByID(id uint) error {
	return repo.database.Delete(&models.MoodEntry{}, id).Error
}

func (repo *MoodRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.MoodEntry{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
