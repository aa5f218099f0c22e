package service

import (
	"context"
	"time"

	"twigane_backend/internal/model"
	"twigane_backend/internal/repository"
	"twigane_backend/internal/util"
	"twigane_backend/pkg/monitoring"
	"twigane_backend/pkg/tracing"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProgressService struct {
	db              *gorm.DB
	progressRepo    *repository.ProgressRepository
	courseRepo      *repository.CourseRepository
	userRepo        *repository.UserRepository
	achievementRepo *repository.AchievementRepository
}

func NewProgressService(
	db *gorm.DB,
	progressRepo *repository.ProgressRepository,
	courseRepo *repository.CourseRepository,
	userRepo *repository.UserRepository,
	achievementRepo *repository.AchievementRepository,
) *ProgressService {
	return &ProgressService{
		db:              db,
		progressRepo:    progressRepo,
		courseRepo:      courseRepo,
		userRepo:        userRepo,
		achievementRepo: achievementRepo,
	}
}

type CompleteLessonInput struct {
	Score            *int `json:"score"`
	TimeSpentMinutes *int `json:"timeSpentMinutes"`
}

type CompletionResult struct {
	Record        *model.LessonProgress `json:"record"`
	XPAwarded     int                   `json:"xpAwarded"`
	TotalXP       int                   `json:"totalXp"`
	Level         Level                 `json:"level"`
	CoursePercent int                   `json:"coursePercent"`
	NewBadges     []Badge               `json:"newBadges"`
}

// CompleteLesson records a lesson completion and runs the progression rules.
// Locked lessons are refused with ErrLessonLocked. Completing an already
// completed lesson updates score and time spent but keeps the original
// completion timestamp and awards no further XP. The upsert, XP grant and
// badge writes commit together.
func (s *ProgressService) CompleteLesson(ctx context.Context, userID uint, lessonID string, input CompleteLessonInput) (*CompletionResult, error) {
	_, span := tracing.Tracer.Start(ctx, "progress.CompleteLesson")
	defer span.End()

	if input.Score != nil && (*input.Score < 0 || *input.Score > 100) {
		return nil, util.NewValidationError("score", "score must be between 0 and 100")
	}
	if input.TimeSpentMinutes != nil && *input.TimeSpentMinutes < 0 {
		return nil, util.NewValidationError("timeSpentMinutes", "time spent cannot be negative")
	}

	lesson, err := s.courseRepo.FindLesson(lessonID)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.FindWithLessons(lesson.CourseID)
	if err != nil {
		return nil, err
	}

	records, err := s.progressRepo.FindByUserForCourse(userID, course.ID)
	if err != nil {
		return nil, err
	}

	if !CanStart(course.Lessons, records, lessonID) {
		return nil, util.ErrLessonLocked
	}

	var result *CompletionResult

	err = s.db.Transaction(func(tx *gorm.DB) error {
		progressRepo := repository.NewProgressRepository(tx)
		userRepo := repository.NewUserRepository(tx)
		achievementRepo := repository.NewAchievementRepository(tx)

		record, err := progressRepo.FindByUserAndLesson(userID, lessonID)
		if err != nil {
			return err
		}
		if record == nil {
			record = &model.LessonProgress{UserID: userID, LessonID: lessonID}
		}
		firstCompletion := mergeCompletion(record, input, time.Now())

		if err := progressRepo.Save(record); err != nil {
			return err
		}

		awarded := 0
		if firstCompletion {
			awarded, err = GrantXP(XPForCompletion(record.Score))
			if err != nil {
				return err
			}
			if err := userRepo.AddXP(userID, awarded); err != nil {
				return err
			}
		}

		user, err := userRepo.FindByID(userID)
		if err != nil {
			return err
		}

		completed, err := progressRepo.CountCompleted(userID)
		if err != nil {
			return err
		}

		courseRecords, err := progressRepo.FindByUserForCourse(userID, course.ID)
		if err != nil {
			return err
		}
		percent := CourseProgress(course.Lessons, courseRecords)

		snapshot := ProgressionSnapshot{
			TotalXP:          user.XP,
			CompletedLessons: int(completed),
			StreakDays:       user.StreakDays,
			CoursePercent:    percent,
		}

		newBadges, err := awardBadges(achievementRepo, userID, snapshot)
		if err != nil {
			return err
		}

		result = &CompletionResult{
			Record:        record,
			XPAwarded:     awarded,
			TotalXP:       user.XP,
			Level:         LevelFor(user.XP),
			CoursePercent: percent,
			NewBadges:     newBadges,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.XPAwarded > 0 {
		monitoring.LessonCompletions.Inc()
	}
	for _, badge := range result.NewBadges {
		monitoring.BadgesAwarded.WithLabelValues(badge.Name).Inc()
	}

	zap.L().Info("lesson completed",
		zap.Uint("userId", userID),
		zap.String("lessonId", lessonID),
		zap.Int("xpAwarded", result.XPAwarded),
		zap.Int("coursePercent", result.CoursePercent),
		zap.Int("newBadges", len(result.NewBadges)))

	return result, nil
}

// mergeCompletion folds a completion into the record. The completion
// timestamp is set on the first completion and never moved afterwards;
// score and time spent take the latest submitted value.
func mergeCompletion(record *model.LessonProgress, input CompleteLessonInput, now time.Time) bool {
	firstCompletion := !record.Completed()
	if record.CompletedAt == nil {
		record.CompletedAt = &now
	}
	if input.Score != nil {
		record.Score = input.Score
	}
	if input.TimeSpentMinutes != nil {
		record.TimeSpentMinutes = input.TimeSpentMinutes
	}
	return firstCompletion
}

// awardBadges evaluates the rule table and persists whatever is newly earned.
// The unique (user, badge) index backs the in-memory held check against
// concurrent completions.
func awardBadges(achievementRepo *repository.AchievementRepository, userID uint, snapshot ProgressionSnapshot) ([]Badge, error) {
	existing, err := achievementRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	held := make(map[string]bool, len(existing))
	for _, a := range existing {
		held[a.BadgeName] = true
	}

	earned := EvaluateAchievements(snapshot, held)
	for _, badge := range earned {
		achievement := &model.Achievement{
			UserID:      userID,
			BadgeName:   badge.Name,
			Description: badge.Description,
			Rarity:      badge.Rarity,
			EarnedAt:    time.Now(),
		}
		if err := achievementRepo.Create(achievement); err != nil {
			return nil, err
		}
	}
	return earned, nil
}

type QuizSubmission struct {
	Answer int `json:"answer" binding:"min=0"`
}

type QuizResult struct {
	Correct    bool              `json:"correct"`
	Completion *CompletionResult `json:"completion,omitempty"`
}

// SubmitQuiz grades a lesson's single-question quiz. A correct answer counts
// as completing the lesson with a full score; a wrong answer changes nothing
// and can be retried.
func (s *ProgressService) SubmitQuiz(ctx context.Context, userID uint, lessonID string, submission QuizSubmission) (*QuizResult, error) {
	lesson, err := s.courseRepo.FindLesson(lessonID)
	if err != nil {
		return nil, err
	}
	if !lesson.HasQuiz() {
		return nil, util.NewValidationError("lessonId", "lesson has no quiz")
	}

	if submission.Answer != lesson.QuizCorrect {
		return &QuizResult{Correct: false}, nil
	}

	fullScore := 100
	completion, err := s.CompleteLesson(ctx, userID, lessonID, CompleteLessonInput{Score: &fullScore})
	if err != nil {
		return nil, err
	}
	return &QuizResult{Correct: true, Completion: completion}, nil
}

// GetUserProgress returns all of the learner's progress records.
func (s *ProgressService) GetUserProgress(userID uint) ([]model.LessonProgress, error) {
	return s.progressRepo.FindByUser(userID)
}

// GetCourseProgress returns the learner's derived view of one course.
func (s *ProgressService) GetCourseProgress(userID uint, courseID string) ([]LessonWithState, int, error) {
	course, err := s.courseRepo.FindWithLessons(courseID)
	if err != nil {
		return nil, 0, err
	}

	records, err := s.progressRepo.FindByUserForCourse(userID, courseID)
	if err != nil {
		return nil, 0, err
	}

	return LessonStates(course.Lessons, records), CourseProgress(course.Lessons, records), nil
}
