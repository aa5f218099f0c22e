package service

import (
	"time"

	"twigane_backend/internal/model"
	"twigane_backend/internal/repository"
	"twigane_backend/internal/util"
)

type ProjectService struct {
	projectRepo *repository.ProjectRepository
	courseRepo  *repository.CourseRepository
}

func NewProjectService(projectRepo *repository.ProjectRepository, courseRepo *repository.CourseRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, courseRepo: courseRepo}
}

type SubmitProjectInput struct {
	CourseID    string `json:"courseId" binding:"required"`
	Title       string `json:"title" binding:"required,min=3,max=255"`
	Description string `json:"description" binding:"omitempty"`
	CodeContent string `json:"codeContent" binding:"required"`
}

func (s *ProjectService) Submit(userID uint, input SubmitProjectInput) (*model.Project, error) {
	if _, err := s.courseRepo.FindWithLessons(input.CourseID); err != nil {
		return nil, err
	}

	project := &model.Project{
		UserID:      userID,
		CourseID:    input.CourseID,
		Title:       input.Title,
		Description: input.Description,
		CodeContent: input.CodeContent,
		Status:      model.ProjectSubmitted,
		SubmittedAt: time.Now(),
	}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) ListMine(userID uint) ([]model.Project, error) {
	return s.projectRepo.FindByUser(userID)
}

func (s *ProjectService) Get(userID uint, isAdmin bool, projectID string) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID && !isAdmin {
		return nil, util.ErrPermissionDenied
	}
	return project, nil
}

func (s *ProjectService) ListPending(page, limit int) ([]model.Project, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}
	return s.projectRepo.FindPending(page, limit)
}

type ReviewProjectInput struct {
	Grade    *int   `json:"grade" binding:"required"`
	Feedback string `json:"feedback" binding:"omitempty"`
}

func (s *ProjectService) Review(projectID string, input ReviewProjectInput) (*model.Project, error) {
	if input.Grade == nil || *input.Grade < 0 || *input.Grade > 100 {
		return nil, util.NewValidationError("grade", "grade must be between 0 and 100")
	}

	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, err
	}

	project.Grade = input.Grade
	project.Feedback = input.Feedback
	project.Status = model.ProjectReviewed
	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}
	return project, nil
}
