package service

import (
	"context"
	"encoding/json"
	"time"

	"twigane_backend/internal/config"
	"twigane_backend/internal/model"
	"twigane_backend/internal/repository"
	"twigane_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const publishedCoursesKey = "catalog:published"

type CatalogService struct {
	courseRepo   *repository.CourseRepository
	progressRepo *repository.ProgressRepository
	redisClient  *redis.Client
	cacheTTL     time.Duration
}

func NewCatalogService(
	courseRepo *repository.CourseRepository,
	progressRepo *repository.ProgressRepository,
	redisClient *redis.Client,
	cfg *config.Config,
) *CatalogService {
	return &CatalogService{
		courseRepo:   courseRepo,
		progressRepo: progressRepo,
		redisClient:  redisClient,
		cacheTTL:     time.Duration(cfg.Catalog.CacheTTLMinutes) * time.Minute,
	}
}

// ListPublished returns the published catalog, served from redis when warm.
func (s *CatalogService) ListPublished(ctx context.Context) ([]model.Course, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, publishedCoursesKey).Result()
		if err == nil {
			var courses []model.Course
			if jsonErr := json.Unmarshal([]byte(cached), &courses); jsonErr == nil {
				return courses, nil
			}
		} else if err != redis.Nil {
			zap.L().Warn("catalog cache read failed", zap.Error(err))
		}
	}

	courses, err := s.courseRepo.FindPublished()
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if data, jsonErr := json.Marshal(courses); jsonErr == nil {
			if err := s.redisClient.Set(ctx, publishedCoursesKey, data, s.cacheTTL).Err(); err != nil {
				zap.L().Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}

	return courses, nil
}

type CourseDetail struct {
	Course  model.Course      `json:"course"`
	Lessons []LessonWithState `json:"lessons"`
	Percent int               `json:"percent"`
}

// GetCourse returns a course with per-lesson states for the viewer. For an
// anonymous viewer (userID 0) only the first lesson is unlocked. Unpublished
// courses are hidden from non-admins.
func (s *CatalogService) GetCourse(userID uint, isAdmin bool, courseID string) (*CourseDetail, error) {
	course, err := s.courseRepo.FindWithLessons(courseID)
	if err != nil {
		return nil, err
	}
	if !course.Published && !isAdmin {
		return nil, util.ErrCourseNotFound
	}

	var records []model.LessonProgress
	if userID != 0 {
		records, err = s.progressRepo.FindByUserForCourse(userID, courseID)
		if err != nil {
			return nil, err
		}
	}

	return &CourseDetail{
		Course:  *course,
		Lessons: LessonStates(course.Lessons, records),
		Percent: CourseProgress(course.Lessons, records),
	}, nil
}

// GetLesson returns one lesson provided the viewer has unlocked it.
func (s *CatalogService) GetLesson(userID uint, lessonID string) (*model.Lesson, error) {
	lesson, err := s.courseRepo.FindLesson(lessonID)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.FindWithLessons(lesson.CourseID)
	if err != nil {
		return nil, err
	}

	var records []model.LessonProgress
	if userID != 0 {
		records, err = s.progressRepo.FindByUserForCourse(userID, course.ID)
		if err != nil {
			return nil, err
		}
	}

	if !CanStart(course.Lessons, records, lessonID) {
		return nil, util.ErrLessonLocked
	}
	return lesson, nil
}

// InvalidateCatalog drops the cached list after an admin mutation.
func (s *CatalogService) InvalidateCatalog(ctx context.Context) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, publishedCoursesKey).Err(); err != nil {
		zap.L().Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
