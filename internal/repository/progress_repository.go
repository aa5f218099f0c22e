package repository

import (
	"errors"

	"twigane_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUser(userID uint) ([]model.LessonProgress, error) {
	var records []model.LessonProgress
	err := r.DB.Where("user_id = ?", userID).Find(&records).Error
	return records, err
}

func (r *ProgressRepository) FindByUserAndLesson(userID uint, lessonID string) (*model.LessonProgress, error) {
	var record model.LessonProgress
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// FindByUserForCourse returns the user's records limited to one course.
func (r *ProgressRepository) FindByUserForCourse(userID uint, courseID string) ([]model.LessonProgress, error) {
	var records []model.LessonProgress
	err := r.DB.
		Joins("JOIN lessons ON lessons.id = lesson_progress.lesson_id").
		Where("lesson_progress.user_id = ? AND lessons.course_id = ?", userID, courseID).
		Find(&records).Error
	return records, err
}

func (r *ProgressRepository) Save(record *model.LessonProgress) error {
	return r.DB.Save(record).Error
}

func (r *ProgressRepository) CountAllCompleted() (int64, error) {
	var count int64
	err := r.DB.Model(&model.LessonProgress{}).
		Where("completed_at IS NOT NULL").
		Count(&count).Error
	return count, err
}

func (r *ProgressRepository) CountCompleted(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LessonProgress{}).
		Where("user_id = ? AND completed_at IS NOT NULL", userID).
		Count(&count).Error
	return count, err
}
