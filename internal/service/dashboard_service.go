package service

import (
	"context"

	"twigane_backend/internal/model"
	"twigane_backend/internal/repository"
)

type DashboardService struct {
	userRepo        *repository.UserRepository
	courseRepo      *repository.CourseRepository
	progressRepo    *repository.ProgressRepository
	achievementRepo *repository.AchievementRepository
	catalog         *CatalogService
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	progressRepo *repository.ProgressRepository,
	achievementRepo *repository.AchievementRepository,
	catalog *CatalogService,
) *DashboardService {
	return &DashboardService{
		userRepo:        userRepo,
		courseRepo:      courseRepo,
		progressRepo:    progressRepo,
		achievementRepo: achievementRepo,
		catalog:         catalog,
	}
}

type CourseSummary struct {
	Course  model.Course `json:"course"`
	Percent int          `json:"percent"`
}

type Dashboard struct {
	XP           int                 `json:"xp"`
	Level        Level               `json:"level"`
	NextLevelAt  int                 `json:"nextLevelAt"`
	StreakDays   int                 `json:"streakDays"`
	Lessons      int64               `json:"lessonsCompleted"`
	Courses      []CourseSummary     `json:"courses"`
	Achievements []model.Achievement `json:"achievements"`
}

// ForUser assembles the learner's home view: XP and level, streak, and the
// derived percent for every published course.
func (s *DashboardService) ForUser(ctx context.Context, userID uint) (*Dashboard, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	lessons, err := s.progressRepo.CountCompleted(userID)
	if err != nil {
		return nil, err
	}

	achievements, err := s.achievementRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	courses, err := s.catalog.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]CourseSummary, 0, len(courses))
	for _, course := range courses {
		full, err := s.courseRepo.FindWithLessons(course.ID)
		if err != nil {
			return nil, err
		}
		records, err := s.progressRepo.FindByUserForCourse(userID, course.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, CourseSummary{
			Course:  course,
			Percent: CourseProgress(full.Lessons, records),
		})
	}

	return &Dashboard{
		XP:           user.XP,
		Level:        LevelFor(user.XP),
		NextLevelAt:  NextLevelAt(user.XP),
		StreakDays:   user.StreakDays,
		Lessons:      lessons,
		Courses:      summaries,
		Achievements: achievements,
	}, nil
}
