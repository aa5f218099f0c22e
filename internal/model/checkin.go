package model

import (
	"time"

	"gorm.io/gorm"
)

// Checkin records one learning day per user; StreakDays carries the streak
// as of that checkin. CheckinDate is the calendar day of CheckinAt, and the
// composite unique index makes "one checkin per user per day" a database
// guarantee, not just a service check.
// swagger:model Checkin
type Checkin struct {
	gorm.Model
	UserID      uint      `gorm:"type:bigint unsigned;not null;uniqueIndex:idx_user_checkin_date" json:"userId"`
	CheckinAt   time.Time `gorm:"not null" json:"checkinAt"`
	CheckinDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_checkin_date" json:"-"`
	StreakDays  int       `gorm:"default:1" json:"streakDays"`
}

func (Checkin) TableName() string {
	return "checkins"
}
