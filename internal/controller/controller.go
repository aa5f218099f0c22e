package controller

import (
	"errors"
	"net/http"

	"twigane_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the response envelope. Unknown
// errors are logged and surfaced as 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case util.IsValidation(err):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrLessonNotFound),
		errors.Is(err, util.ErrSessionNotFound),
		errors.Is(err, util.ErrPostNotFound),
		errors.Is(err, util.ErrProjectNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrLessonLocked):
		util.Error(ctx, http.StatusForbidden, "Lesson is locked; complete the previous lesson first")
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrAlreadyCheckedIn):
		util.Error(ctx, http.StatusConflict, "Already checked in today")
	case errors.Is(err, util.ErrEmailRegistered):
		util.Error(ctx, http.StatusConflict, "Email is already registered")
	case errors.Is(err, util.ErrCourseHasLearners):
		util.Error(ctx, http.StatusConflict, "Course has learner progress and cannot be restructured")
	default:
		util.LogInternalError(ctx, err)
	}
}
