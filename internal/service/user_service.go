package service

import (
	"errors"
	"time"

	"twigane_backend/internal/model"
	"twigane_backend/internal/repository"
	"twigane_backend/internal/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService struct {
	db              *gorm.DB
	userRepo        *repository.UserRepository
	checkinRepo     *repository.CheckinRepository
	progressRepo    *repository.ProgressRepository
	achievementRepo *repository.AchievementRepository
}

func NewUserService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	checkinRepo *repository.CheckinRepository,
	progressRepo *repository.ProgressRepository,
	achievementRepo *repository.AchievementRepository,
) *UserService {
	return &UserService{
		db:              db,
		userRepo:        userRepo,
		checkinRepo:     checkinRepo,
		progressRepo:    progressRepo,
		achievementRepo: achievementRepo,
	}
}

type Profile struct {
	User        *model.User `json:"user"`
	Level       Level       `json:"level"`
	NextLevelAt int         `json:"nextLevelAt"`
	Lessons     int64       `json:"lessonsCompleted"`
	Badges      int64       `json:"badges"`
	Checkins    int64       `json:"checkins"`
}

func (s *UserService) GetProfile(userID uint) (*Profile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	lessons, err := s.progressRepo.CountCompleted(userID)
	if err != nil {
		return nil, err
	}
	badges, err := s.achievementRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	checkins, err := s.checkinRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:        user,
		Level:       LevelFor(user.XP),
		NextLevelAt: NextLevelAt(user.XP),
		Lessons:     lessons,
		Badges:      badges,
		Checkins:    checkins,
	}, nil
}

type UpdateProfileInput struct {
	Name   string `json:"name" binding:"omitempty,min=2,max=100"`
	Bio    string `json:"bio" binding:"omitempty,max=500"`
	Avatar string `json:"avatar" binding:"omitempty,max=255"`
}

func (s *UserService) UpdateProfile(userID uint, input UpdateProfileInput) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Bio != "" {
		user.Bio = input.Bio
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// sameDay compares calendar days in the given times' locations.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// startOfDay returns midnight of t's calendar day in t's location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextStreak computes the streak after a checkin at now. Consecutive calendar
// days extend the streak; any gap resets it to 1. Days are compared as
// calendar dates, so DST transitions of uneven length do not break a streak.
func NextStreak(last *time.Time, now time.Time, current int) int {
	if last == nil {
		return 1
	}
	if sameDay(startOfDay(*last).AddDate(0, 0, 1), now) {
		return current + 1
	}
	return 1
}

// streakAfter derives the streak for a checkin at now from the most recent
// prior checkin row, the authoritative record of checkin history.
func streakAfter(latest *model.Checkin, now time.Time) int {
	if latest == nil {
		return NextStreak(nil, now, 0)
	}
	return NextStreak(&latest.CheckinAt, now, latest.StreakDays)
}

type CheckinResult struct {
	StreakDays int     `json:"streakDays"`
	NewBadges  []Badge `json:"newBadges"`
}

// Checkin records the daily checkin, at most once per calendar day, and
// re-evaluates streak badges. The checkin row, the user's streak fields and
// any badge inserts commit together; the unique (user, date) index backs the
// duplicate-day check against concurrent requests.
func (s *UserService) Checkin(userID uint) (*CheckinResult, error) {
	now := time.Now()

	var result *CheckinResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := repository.NewUserRepository(tx)
		checkinRepo := repository.NewCheckinRepository(tx)
		progressRepo := repository.NewProgressRepository(tx)
		achievementRepo := repository.NewAchievementRepository(tx)

		user, err := userRepo.FindByID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrUserNotFound
			}
			return err
		}

		existing, err := checkinRepo.FindByUserAndDate(userID, now)
		if err != nil {
			return err
		}
		if existing != nil {
			return util.ErrAlreadyCheckedIn
		}

		latest, err := checkinRepo.FindLatestByUser(userID)
		if err != nil {
			return err
		}
		streak := streakAfter(latest, now)

		if err := checkinRepo.Create(&model.Checkin{
			UserID:      userID,
			CheckinAt:   now,
			CheckinDate: startOfDay(now),
			StreakDays:  streak,
		}); err != nil {
			return err
		}

		user.StreakDays = streak
		user.LastCheckinAt = &now
		if err := userRepo.Update(user); err != nil {
			return err
		}

		completed, err := progressRepo.CountCompleted(userID)
		if err != nil {
			return err
		}

		snapshot := ProgressionSnapshot{
			TotalXP:          user.XP,
			CompletedLessons: int(completed),
			StreakDays:       streak,
		}
		newBadges, err := awardBadges(achievementRepo, userID, snapshot)
		if err != nil {
			return err
		}

		result = &CheckinResult{StreakDays: streak, NewBadges: newBadges}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("daily checkin",
		zap.Uint("userId", userID),
		zap.Int("streakDays", result.StreakDays))

	return result, nil
}

type LeaderboardEntry struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	XP    int    `json:"xp"`
	Level Level  `json:"level"`
}

func (s *UserService) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	users, err := s.userRepo.FindTopByXP(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = LeaderboardEntry{
			Rank:  i + 1,
			Name:  u.Name,
			XP:    u.XP,
			Level: LevelFor(u.XP),
		}
	}
	return entries, nil
}
