package service

import (
	"testing"
	"time"

	"twigane_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStreak(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	threeDaysAgo := now.AddDate(0, 0, -3)

	tests := []struct {
		name    string
		last    *time.Time
		current int
		want    int
	}{
		{"first ever checkin", nil, 0, 1},
		{"consecutive day extends", &yesterday, 4, 5},
		{"gap resets to one", &threeDaysAgo, 12, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextStreak(tt.last, now, tt.current))
		})
	}
}

func TestNextStreakAcrossMidnight(t *testing.T) {
	// Late evening checkin followed by early morning next day still counts
	// as consecutive.
	last := time.Date(2026, time.March, 9, 23, 50, 0, 0, time.UTC)
	now := time.Date(2026, time.March, 10, 0, 10, 0, 0, time.UTC)

	assert.Equal(t, 8, NextStreak(&last, now, 7))
}

func TestNextStreakAcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// March 10 2024 is a 23-hour day; a late checkin the evening before plus
	// a flat 24 hours would land on March 11 and wrongly reset the streak.
	last := time.Date(2024, time.March, 9, 23, 30, 0, 0, loc)
	now := time.Date(2024, time.March, 10, 22, 0, 0, 0, loc)

	assert.Equal(t, 6, NextStreak(&last, now, 5))
}

func TestStreakAfter(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	t.Run("no prior checkin starts at one", func(t *testing.T) {
		assert.Equal(t, 1, streakAfter(nil, now))
	})

	t.Run("consecutive day extends the recorded streak", func(t *testing.T) {
		latest := &model.Checkin{CheckinAt: now.AddDate(0, 0, -1), StreakDays: 3}
		assert.Equal(t, 4, streakAfter(latest, now))
	})

	t.Run("gap resets regardless of the recorded streak", func(t *testing.T) {
		latest := &model.Checkin{CheckinAt: now.AddDate(0, 0, -4), StreakDays: 30}
		assert.Equal(t, 1, streakAfter(latest, now))
	})
}
