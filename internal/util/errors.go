package util

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailRegistered = errors.New("email already registered")
	ErrCourseNotFound  = errors.New("course not found")
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrSessionNotFound = errors.New("chat session not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrProjectNotFound = errors.New("project not found")

	// ErrLessonLocked is the sequencing-gate policy violation: the lesson's
	// predecessor has not been completed.
	ErrLessonLocked = errors.New("lesson is locked")

	ErrPermissionDenied  = errors.New("permission denied")
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrCourseHasLearners = errors.New("course has learner progress and cannot be restructured")
)

// ValidationError reports a malformed input value. Validation failures never
// mutate state.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
