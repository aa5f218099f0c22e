package controller

import (
	"twigane_backend/internal/model"
	"twigane_backend/internal/service"
	"twigane_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CatalogService *service.CatalogService
}

func NewCourseController(catalogService *service.CatalogService) *CourseController {
	return &CourseController{CatalogService: catalogService}
}

func viewerIdentity(ctx *gin.Context) (uint, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		return 0, false
	}
	return claims.UserID, claims.Role == model.Admin
}

// ListCourses godoc
// @Summary List published courses
// @Tags courses
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Course} "Success"
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.CatalogService.ListPublished(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary Get a course with per-lesson unlock states
// @Description Anonymous viewers see only the first lesson unlocked
// @Tags courses
// @Produce json
// @Param id path string true "Course id"
// @Success 200 {object} util.Response{data=service.CourseDetail} "Success"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	userID, isAdmin := viewerIdentity(ctx)

	detail, err := c.CatalogService.GetCourse(userID, isAdmin, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// GetLesson godoc
// @Summary Get a lesson's content
// @Description Returns 403 when the lesson is still locked for the viewer
// @Tags courses
// @Produce json
// @Param id path string true "Lesson id"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Lesson} "Success"
// @Failure 403 {object} util.Response "Lesson is locked"
// @Failure 404 {object} util.Response "Lesson not found"
// @Router /api/lessons/{id} [get]
func (c *CourseController) GetLesson(ctx *gin.Context) {
	userID, _ := viewerIdentity(ctx)

	lesson, err := c.CatalogService.GetLesson(userID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}
