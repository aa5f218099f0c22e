package model

import (
	"time"

	"gorm.io/gorm"
)

// LessonProgress is the per-learner completion record for a single lesson.
// At most one row exists per (user, lesson); CompletedAt is set once and
// never moved backward.
// swagger:model LessonProgress
type LessonProgress struct {
	gorm.Model
	UserID           uint       `gorm:"uniqueIndex:idx_user_lesson;type:bigint unsigned;not null" json:"userId"`
	LessonID         string     `gorm:"uniqueIndex:idx_user_lesson;type:varchar(36);not null" json:"lessonId"`
	CompletedAt      *time.Time `json:"completedAt"`
	Score            *int       `json:"score"`
	TimeSpentMinutes *int       `json:"timeSpentMinutes"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}

func (p *LessonProgress) Completed() bool {
	return p.CompletedAt != nil
}
