package repository

import (
	"twigane_backend/internal/model"

	"gorm.io/gorm"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) FindByUserID(userID uint) ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.Where("user_id = ?", userID).Order("earned_at DESC").Find(&achievements).Error
	if err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *AchievementRepository) Create(achievement *model.Achievement) error {
	return r.DB.Create(achievement).Error
}

func (r *AchievementRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Achievement{}).Count(&count).Error
	return count, err
}

func (r *AchievementRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Achievement{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
