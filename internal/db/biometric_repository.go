package db

import (
	"time"

	"github.com/flowsync/flowsync/internal/models"
	"gorm.io/gorm"
)

type BiometricRepository struct {
	database *gorm.DB
}

func NewBiometricRepository(database *gorm.DB) *BiometricRepository {
	return &BiometricRepository{database: database}
}

func (repo *BiometricRepository) ListRange(fromStart *time.Time, toEnd *time.Time) ([]models.BiometricRecord, error) {
	query := repo.database.Model(&models.BiometricRecord{})
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	records := make([]models.BiometricRecord, 0)
	if err := query.Order("date ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListRecent returns up to limit records in ascending date order.
func (repo *BiometricRepository) ListRecent(limit int) ([]models.BiometricRecord, error) {
	records := make([]models.BiometricRecord, 0, limit)
	if err := repo.database.Order("date DESC, id DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func (repo *BiometricRepository) FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.BiometricRecord, bool, error) {
	record := models.BiometricRecord{}
	result := repo.database.
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.BiometricRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.BiometricRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *BiometricRepository) Create(record *models.BiometricRecord) error {
	return repo.database.Create(record).Error
}

func (repo *BiometricRepository) Save(record *models.BiometricRecord) error {
	return repo.database.Save(record).Error
}

func (repo *BiometricRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.BiometricRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
