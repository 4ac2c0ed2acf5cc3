package db

import (
	"github.com/flowsync/flowsync/internal/models"
	"gorm.io/gorm"
)

type GoalRepository struct {
	database *gorm.DB
}

func NewGoalRepository(database *gorm.DB) *GoalRepository {
	return &GoalRepository{database: database}
}

func (repo *GoalRepository) ListAll() ([]models.Goal, error) {
	goals := make([]models.Goal, 0)
	if err := repo.database.Preload("Tasks", orderTasksByID).Order("id ASC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (repo *GoalRepository) FindByID(id uint) (models.Goal, bool, error) {
	goal := models.Goal{}
	result := repo.database.Preload("Tasks", orderTasksByID).Limit(1).Find(&goal, id)
	if result.Error != nil {
		return models.Goal{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Goal{}, false, nil
	}
	return goal, true, nil
}

func (repo *GoalRepository) Create(goal *models.Goal) error {
	return repo.database.Create(goal).Error
}

func (repo *GoalRepository) Save(goal *models.Goal) error {
	return repo.database.Session(&gorm.Session{FullSaveAssociations: true}).Save(goal).Error
}

func (repo *GoalRepository) SaveTask(task *models.Task) error {
	return repo.database.Save(task).Error
}

func (repo *GoalRepository) UpdateProgress(goal *models.Goal) error {
	return repo.database.Model(goal).Select("progress").Updates(goal).Error
}

func (repo *GoalRepository) ReplaceTasks(goal *models.Goal, tasks []models.Task) error {
	if err := repo.database.Where("goal_id = ?", goal.ID).Delete(&models.Task{}).Error; err != nil {
		return err
	}
	for i := range tasks {
		tasks[i].GoalID = goal.ID
		tasks[i].ID = 0
	}
	if len(tasks) > 0 {
		if err := repo.database.Create(&tasks).Error; err != nil {
			return err
		}
	}
	goal.Tasks = tasks
	return nil
}

func (repo *GoalRepository) DeleteByID(id uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Goal{}, id).Error
	})
}

func (repo *GoalRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Goal{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func orderTasksByID(database *gorm.DB) *gorm.DB {
	return database.Order("tasks.id ASC")
}
