package service

import (
	"math"

	"twigane_backend/internal/model"
)

type LessonState string

const (
	StateCompleted LessonState = "completed"
	StateUnlocked  LessonState = "unlocked"
	StateLocked    LessonState = "locked"
)

type LessonWithState struct {
	Lesson model.Lesson `json:"lesson"`
	State  LessonState  `json:"state"`
}

// completedSet indexes the records that carry a completion timestamp.
func completedSet(records []model.LessonProgress) map[string]bool {
	done := make(map[string]bool, len(records))
	for _, rec := range records {
		if rec.Completed() {
			done[rec.LessonID] = true
		}
	}
	return done
}

// LessonStates derives the unlock state for each lesson of a course. Lessons
// must already be ordered by position. The first lesson and any lesson whose
// predecessor is completed are unlocked; everything else is locked. The
// result is derived on every call and never stored.
func LessonStates(lessons []model.Lesson, records []model.LessonProgress) []LessonWithState {
	done := completedSet(records)

	states := make([]LessonWithState, len(lessons))
	for i, lesson := range lessons {
		state := StateLocked
		switch {
		case done[lesson.ID]:
			state = StateCompleted
		case i == 0, done[lessons[i-1].ID]:
			state = StateUnlocked
		}
		states[i] = LessonWithState{Lesson: lesson, State: state}
	}
	return states
}

// CourseProgress returns the rounded completion percentage, 0 for a course
// with no lessons.
func CourseProgress(lessons []model.Lesson, records []model.LessonProgress) int {
	if len(lessons) == 0 {
		return 0
	}

	done := completedSet(records)
	completed := 0
	for _, lesson := range lessons {
		if done[lesson.ID] {
			completed++
		}
	}

	return int(math.Round(100 * float64(completed) / float64(len(lessons))))
}

// CanStart reports whether the lesson is accessible: unlocked or already
// completed. A locked lesson yields false, not an error; unknown lesson ids
// also yield false.
func CanStart(lessons []model.Lesson, records []model.LessonProgress, lessonID string) bool {
	for _, ls := range LessonStates(lessons, records) {
		if ls.Lesson.ID == lessonID {
			return ls.State != StateLocked
		}
	}
	return false
}
