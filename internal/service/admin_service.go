package service

import (
	"context"
	"errors"

	"twigane_backend/internal/model"
	"twigane_backend/internal/repository"
	"twigane_backend/internal/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AdminService covers the authoring and moderation surface. Course structure
// is frozen once learners have progress against it, so completion records
// and lesson positions can never disagree.
type AdminService struct {
	courseRepo      *repository.CourseRepository
	userRepo        *repository.UserRepository
	progressRepo    *repository.ProgressRepository
	achievementRepo *repository.AchievementRepository
	catalog         *CatalogService
}

func NewAdminService(
	courseRepo *repository.CourseRepository,
	userRepo *repository.UserRepository,
	progressRepo *repository.ProgressRepository,
	achievementRepo *repository.AchievementRepository,
	catalog *CatalogService,
) *AdminService {
	return &AdminService{
		courseRepo:      courseRepo,
		userRepo:        userRepo,
		progressRepo:    progressRepo,
		achievementRepo: achievementRepo,
		catalog:         catalog,
	}
}

type PlatformStats struct {
	Users             int64 `json:"users"`
	Courses           int64 `json:"courses"`
	LessonCompletions int64 `json:"lessonCompletions"`
	BadgesAwarded     int64 `json:"badgesAwarded"`
}

func (s *AdminService) Stats() (*PlatformStats, error) {
	users, err := s.userRepo.CountAll()
	if err != nil {
		return nil, err
	}
	courses, err := s.courseRepo.CountAll()
	if err != nil {
		return nil, err
	}
	completions, err := s.progressRepo.CountAllCompleted()
	if err != nil {
		return nil, err
	}
	badges, err := s.achievementRepo.CountAll()
	if err != nil {
		return nil, err
	}

	return &PlatformStats{
		Users:             users,
		Courses:           courses,
		LessonCompletions: completions,
		BadgesAwarded:     badges,
	}, nil
}

type CourseInput struct {
	Title       string           `json:"title" binding:"required,min=3,max=255"`
	Description string           `json:"description" binding:"omitempty"`
	Category    string           `json:"category" binding:"omitempty,max=100"`
	Difficulty  model.Difficulty `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Thumbnail   string           `json:"thumbnail" binding:"omitempty,max=255"`
	Published   bool             `json:"published"`
}

func (s *AdminService) ListCourses() ([]model.Course, error) {
	return s.courseRepo.FindAll()
}

func (s *AdminService) CreateCourse(ctx context.Context, input CourseInput) (*model.Course, error) {
	course := &model.Course{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Difficulty:  input.Difficulty,
		Thumbnail:   input.Thumbnail,
		Published:   input.Published,
	}
	if course.Difficulty == "" {
		course.Difficulty = model.Beginner
	}
	if err := s.courseRepo.Create(course); err != nil {
		return nil, err
	}
	s.catalog.InvalidateCatalog(ctx)
	return course, nil
}

func (s *AdminService) UpdateCourse(ctx context.Context, courseID string, input CourseInput) (*model.Course, error) {
	course, err := s.courseRepo.FindWithLessons(courseID)
	if err != nil {
		return nil, err
	}

	course.Title = input.Title
	course.Description = input.Description
	course.Category = input.Category
	if input.Difficulty != "" {
		course.Difficulty = input.Difficulty
	}
	course.Thumbnail = input.Thumbnail
	course.Published = input.Published

	if err := s.courseRepo.Update(course); err != nil {
		return nil, err
	}
	s.catalog.InvalidateCatalog(ctx)
	return course, nil
}

// DeleteCourse refuses once any learner has progress in the course.
func (s *AdminService) DeleteCourse(ctx context.Context, courseID string) error {
	if _, err := s.courseRepo.FindWithLessons(courseID); err != nil {
		return err
	}

	learners, err := s.courseRepo.CountProgressForCourse(courseID)
	if err != nil {
		return err
	}
	if learners > 0 {
		return util.ErrCourseHasLearners
	}

	if err := s.courseRepo.Delete(courseID); err != nil {
		return err
	}
	s.catalog.InvalidateCatalog(ctx)
	return nil
}

type LessonInput struct {
	Title           string `json:"title" binding:"required,min=3,max=255"`
	Content         string `json:"content" binding:"omitempty"`
	Position        int    `json:"position" binding:"min=0"`
	DurationMinutes int    `json:"durationMinutes" binding:"omitempty,min=0"`
	QuizQuestion    string `json:"quizQuestion" binding:"omitempty"`
	QuizOptions     string `json:"quizOptions" binding:"omitempty"`
	QuizCorrect     int    `json:"quizCorrect" binding:"omitempty,min=0"`
	CodeTemplate    string `json:"codeTemplate" binding:"omitempty"`
	ExpectedOutput  string `json:"expectedOutput" binding:"omitempty"`
}

// AddLesson appends or inserts a lesson. Refused once the course has learner
// progress; changing the sequence under learners would re-lock completed work.
func (s *AdminService) AddLesson(ctx context.Context, courseID string, input LessonInput) (*model.Lesson, error) {
	if _, err := s.courseRepo.FindWithLessons(courseID); err != nil {
		return nil, err
	}

	learners, err := s.courseRepo.CountProgressForCourse(courseID)
	if err != nil {
		return nil, err
	}
	if learners > 0 {
		return nil, util.ErrCourseHasLearners
	}

	lesson := &model.Lesson{
		CourseID:        courseID,
		Title:           input.Title,
		Content:         input.Content,
		Position:        input.Position,
		DurationMinutes: input.DurationMinutes,
		QuizQuestion:    input.QuizQuestion,
		QuizOptions:     input.QuizOptions,
		QuizCorrect:     input.QuizCorrect,
		CodeTemplate:    input.CodeTemplate,
		ExpectedOutput:  input.ExpectedOutput,
	}
	if err := s.courseRepo.CreateLesson(lesson); err != nil {
		return nil, err
	}
	s.catalog.InvalidateCatalog(ctx)
	return lesson, nil
}

// UpdateLesson edits lesson content in place. Position changes are refused
// when learners have progress; content edits are always fine.
func (s *AdminService) UpdateLesson(ctx context.Context, lessonID string, input LessonInput) (*model.Lesson, error) {
	lesson, err := s.courseRepo.FindLesson(lessonID)
	if err != nil {
		return nil, err
	}

	if input.Position != lesson.Position {
		learners, err := s.courseRepo.CountProgressForCourse(lesson.CourseID)
		if err != nil {
			return nil, err
		}
		if learners > 0 {
			return nil, util.ErrCourseHasLearners
		}
		lesson.Position = input.Position
	}

	lesson.Title = input.Title
	lesson.Content = input.Content
	lesson.DurationMinutes = input.DurationMinutes
	lesson.QuizQuestion = input.QuizQuestion
	lesson.QuizOptions = input.QuizOptions
	lesson.QuizCorrect = input.QuizCorrect
	lesson.CodeTemplate = input.CodeTemplate
	lesson.ExpectedOutput = input.ExpectedOutput

	if err := s.courseRepo.UpdateLesson(lesson); err != nil {
		return nil, err
	}
	s.catalog.InvalidateCatalog(ctx)
	return lesson, nil
}

func (s *AdminService) ListUsers(page, limit int, search string) ([]model.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.userRepo.List(page, limit, search)
}

func (s *AdminService) SetUserDisabled(userID uint, disabled bool) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	user.Disabled = disabled
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	zap.L().Info("user access changed",
		zap.Uint("userId", userID),
		zap.Bool("disabled", disabled))
	return user, nil
}
