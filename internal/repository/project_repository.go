package repository

import (
	"errors"

	"twigane_backend/internal/model"
	"twigane_backend/internal/util"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	DB *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

func (r *ProjectRepository) Create(project *model.Project) error {
	return r.DB.Create(project).Error
}

func (r *ProjectRepository) FindByUser(userID uint) ([]model.Project, error) {
	var projects []model.Project
	err := r.DB.Where("user_id = ?", userID).Order("submitted_at DESC").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) FindByID(projectID string) (*model.Project, error) {
	var project model.Project
	err := r.DB.First(&project, "id = ?", projectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) FindPending(page, limit int) ([]model.Project, int64, error) {
	var projects []model.Project
	var total int64

	query := r.DB.Model(&model.Project{}).Where("status = ?", model.ProjectSubmitted)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("submitted_at ASC").Offset(offset).Limit(limit).Find(&projects).Error
	return projects, total, err
}

func (r *ProjectRepository) Update(project *model.Project) error {
	return r.DB.Save(project).Error
}
