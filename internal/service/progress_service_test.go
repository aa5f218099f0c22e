package service

import (
	"testing"
	"time"

	"twigane_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeCompletionFirstTime(t *testing.T) {
	now := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)
	score := 80
	minutes := 15

	record := &model.LessonProgress{UserID: 1, LessonID: "a"}
	first := mergeCompletion(record, CompleteLessonInput{Score: &score, TimeSpentMinutes: &minutes}, now)

	assert.True(t, first)
	require.NotNil(t, record.CompletedAt)
	assert.Equal(t, now, *record.CompletedAt)
	assert.Equal(t, 80, *record.Score)
	assert.Equal(t, 15, *record.TimeSpentMinutes)
}

func TestMergeCompletionKeepsOriginalTimestamp(t *testing.T) {
	original := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)
	later := original.Add(48 * time.Hour)
	oldScore, newScore := 60, 95

	record := &model.LessonProgress{
		UserID:      1,
		LessonID:    "a",
		CompletedAt: &original,
		Score:       &oldScore,
	}

	first := mergeCompletion(record, CompleteLessonInput{Score: &newScore}, later)

	assert.False(t, first, "repeat completion awards nothing")
	assert.Equal(t, original, *record.CompletedAt, "earliest completion wins")
	assert.Equal(t, 95, *record.Score, "score takes the latest value")
}

func TestMergeCompletionNilFieldsLeaveValues(t *testing.T) {
	original := time.Now()
	score := 70
	minutes := 20

	record := &model.LessonProgress{
		CompletedAt:      &original,
		Score:            &score,
		TimeSpentMinutes: &minutes,
	}

	mergeCompletion(record, CompleteLessonInput{}, original.Add(time.Hour))

	assert.Equal(t, 70, *record.Score)
	assert.Equal(t, 20, *record.TimeSpentMinutes)
}
