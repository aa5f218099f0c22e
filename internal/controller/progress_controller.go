package controller

import (
	"twigane_backend/internal/service"
	"twigane_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// CompleteLesson godoc
// @Summary Mark a lesson completed
// @Description Records the completion, awards XP on first completion and returns any newly earned badges
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Lesson id"
// @Param body body service.CompleteLessonInput false "Optional quiz score and time spent"
// @Success 200 {object} util.Response{data=service.CompletionResult} "Success"
// @Failure 400 {object} util.Response "Invalid score or time"
// @Failure 403 {object} util.Response "Lesson is locked"
// @Failure 404 {object} util.Response "Lesson not found"
// @Router /api/lessons/{id}/complete [post]
func (c *ProgressController) CompleteLesson(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.CompleteLessonInput
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&input); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	result, err := c.ProgressService.CompleteLesson(ctx.Request.Context(), claims.UserID, ctx.Param("id"), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// SubmitQuiz godoc
// @Summary Answer a lesson's quiz
// @Description A correct answer completes the lesson with a full score; a wrong one can be retried
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Lesson id"
// @Param body body service.QuizSubmission true "Chosen option index"
// @Success 200 {object} util.Response{data=service.QuizResult} "Success"
// @Failure 400 {object} util.Response "Lesson has no quiz"
// @Failure 403 {object} util.Response "Lesson is locked"
// @Failure 404 {object} util.Response "Lesson not found"
// @Router /api/lessons/{id}/quiz [post]
func (c *ProgressController) SubmitQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var submission service.QuizSubmission
	if err := ctx.ShouldBindJSON(&submission); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ProgressService.SubmitQuiz(ctx.Request.Context(), claims.UserID, ctx.Param("id"), submission)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// GetMyProgress godoc
// @Summary All progress records for the current learner
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.LessonProgress} "Success"
// @Router /api/progress [get]
func (c *ProgressController) GetMyProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	records, err := c.ProgressService.GetUserProgress(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// GetCourseProgress godoc
// @Summary Derived lesson states and percent for one course
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id}/progress [get]
func (c *ProgressController) GetCourseProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	lessons, percent, err := c.ProgressService.GetCourseProgress(claims.UserID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"lessons": lessons, "percent": percent})
}
