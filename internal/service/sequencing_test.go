package service

import (
	"testing"
	"time"

	"twigane_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func makeLessons(ids ...string) []model.Lesson {
	lessons := make([]model.Lesson, len(ids))
	for i, id := range ids {
		lessons[i] = model.Lesson{
			UUIDBase: model.UUIDBase{ID: id},
			Position: i,
		}
	}
	return lessons
}

func completedRecord(lessonID string) model.LessonProgress {
	now := time.Now()
	return model.LessonProgress{LessonID: lessonID, CompletedAt: &now}
}

func TestLessonStates(t *testing.T) {
	lessons := makeLessons("a", "b", "c", "d")

	tests := []struct {
		name    string
		records []model.LessonProgress
		want    []LessonState
	}{
		{
			name:    "no progress unlocks only the first lesson",
			records: nil,
			want:    []LessonState{StateUnlocked, StateLocked, StateLocked, StateLocked},
		},
		{
			name:    "completing the first unlocks the second",
			records: []model.LessonProgress{completedRecord("a")},
			want:    []LessonState{StateCompleted, StateUnlocked, StateLocked, StateLocked},
		},
		{
			name: "all completed",
			records: []model.LessonProgress{
				completedRecord("a"), completedRecord("b"),
				completedRecord("c"), completedRecord("d"),
			},
			want: []LessonState{StateCompleted, StateCompleted, StateCompleted, StateCompleted},
		},
		{
			name:    "record without completion timestamp does not unlock",
			records: []model.LessonProgress{{LessonID: "a"}},
			want:    []LessonState{StateUnlocked, StateLocked, StateLocked, StateLocked},
		},
		{
			name: "a gap keeps later lessons locked",
			records: []model.LessonProgress{
				completedRecord("a"), completedRecord("c"),
			},
			want: []LessonState{StateCompleted, StateUnlocked, StateCompleted, StateUnlocked},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			states := LessonStates(lessons, tt.records)
			assert.Len(t, states, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want, states[i].State, "lesson %s", lessons[i].ID)
			}
		})
	}
}

func TestLessonStatesEmptyCourse(t *testing.T) {
	assert.Empty(t, LessonStates(nil, nil))
}

func TestCourseProgress(t *testing.T) {
	tests := []struct {
		name    string
		lessons []model.Lesson
		records []model.LessonProgress
		want    int
	}{
		{"empty course", nil, nil, 0},
		{"nothing completed", makeLessons("a", "b"), nil, 0},
		{
			"one of three rounds to 33",
			makeLessons("a", "b", "c"),
			[]model.LessonProgress{completedRecord("a")},
			33,
		},
		{
			"two of three rounds to 67",
			makeLessons("a", "b", "c"),
			[]model.LessonProgress{completedRecord("a"), completedRecord("b")},
			67,
		},
		{
			"all completed",
			makeLessons("a", "b"),
			[]model.LessonProgress{completedRecord("a"), completedRecord("b")},
			100,
		},
		{
			"records for other lessons do not count",
			makeLessons("a", "b"),
			[]model.LessonProgress{completedRecord("x")},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CourseProgress(tt.lessons, tt.records))
		})
	}
}

func TestCanStart(t *testing.T) {
	lessons := makeLessons("a", "b", "c")
	records := []model.LessonProgress{completedRecord("a")}

	assert.True(t, CanStart(lessons, records, "a"), "completed lesson stays accessible")
	assert.True(t, CanStart(lessons, records, "b"), "successor of a completed lesson")
	assert.False(t, CanStart(lessons, records, "c"), "lesson behind the gate")
	assert.False(t, CanStart(lessons, records, "nope"), "unknown lesson id")
	assert.True(t, CanStart(lessons, nil, "a"), "first lesson with no progress")
}
