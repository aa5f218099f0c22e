package controller

import (
	"strconv"

	"twigane_backend/internal/service"
	"twigane_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminService   *service.AdminService
	StorageService *service.StorageService
}

func NewAdminController(adminService *service.AdminService, storageService *service.StorageService) *AdminController {
	return &AdminController{AdminService: adminService, StorageService: storageService}
}

// ListCourses godoc
// @Summary All courses including unpublished drafts
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course} "Success"
// @Router /api/admin/courses [get]
func (c *AdminController) ListCourses(ctx *gin.Context) {
	courses, err := c.AdminService.ListCourses()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// CreateCourse godoc
// @Summary Create a course
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CourseInput true "Course details"
// @Success 201 {object} util.Response{data=model.Course} "Created"
// @Failure 400 {object} util.Response "Invalid input"
// @Router /api/admin/courses [post]
func (c *AdminController) CreateCourse(ctx *gin.Context) {
	var input service.CourseInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.AdminService.CreateCourse(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// UpdateCourse godoc
// @Summary Update course metadata or publish state
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Param body body service.CourseInput true "Course details"
// @Success 200 {object} util.Response{data=model.Course} "Success"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/admin/courses/{id} [put]
func (c *AdminController) UpdateCourse(ctx *gin.Context) {
	var input service.CourseInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.AdminService.UpdateCourse(ctx.Request.Context(), ctx.Param("id"), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// DeleteCourse godoc
// @Summary Delete a course without learner progress
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "Course not found"
// @Failure 409 {object} util.Response "Course has learner progress"
// @Router /api/admin/courses/{id} [delete]
func (c *AdminController) DeleteCourse(ctx *gin.Context) {
	if err := c.AdminService.DeleteCourse(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// AddLesson godoc
// @Summary Add a lesson to a course
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Param body body service.LessonInput true "Lesson details"
// @Success 201 {object} util.Response{data=model.Lesson} "Created"
// @Failure 409 {object} util.Response "Course has learner progress"
// @Router /api/admin/courses/{id}/lessons [post]
func (c *AdminController) AddLesson(ctx *gin.Context) {
	var input service.LessonInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.AdminService.AddLesson(ctx.Request.Context(), ctx.Param("id"), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

// UpdateLesson godoc
// @Summary Edit a lesson
// @Description Content edits are always allowed; position changes are refused once learners have progress
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Lesson id"
// @Param body body service.LessonInput true "Lesson details"
// @Success 200 {object} util.Response{data=model.Lesson} "Success"
// @Failure 404 {object} util.Response "Lesson not found"
// @Failure 409 {object} util.Response "Course has learner progress"
// @Router /api/admin/lessons/{id} [put]
func (c *AdminController) UpdateLesson(ctx *gin.Context) {
	var input service.LessonInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.AdminService.UpdateLesson(ctx.Request.Context(), ctx.Param("id"), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

// UploadThumbnail godoc
// @Summary Upload a course thumbnail image
// @Tags admin
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "Image file (jpeg, png or webp, max 5MB)"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 400 {object} util.Response "Unsupported file"
// @Router /api/admin/thumbnails [post]
func (c *AdminController) UploadThumbnail(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.StorageService.UploadThumbnail(ctx.Request.Context(), file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"thumbnail": url})
}

// Stats godoc
// @Summary Platform-wide totals
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.PlatformStats} "Success"
// @Router /api/admin/stats [get]
func (c *AdminController) Stats(ctx *gin.Context) {
	stats, err := c.AdminService.Stats()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// ListUsers godoc
// @Summary List user accounts
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page, default 1"
// @Param limit query int false "Page size, default 20"
// @Param search query string false "Match name or email"
// @Success 200 {object} util.Response{data=util.PageResponse} "Success"
// @Router /api/admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	users, total, err := c.AdminService.ListUsers(page, limit, ctx.Query("search"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  users,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

type SetDisabledRequest struct {
	Disabled bool `json:"disabled"`
}

// SetUserDisabled godoc
// @Summary Disable or re-enable an account
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User id"
// @Param body body SetDisabledRequest true "Disabled flag"
// @Success 200 {object} util.Response{data=model.User} "Success"
// @Failure 404 {object} util.Response "User not found"
// @Router /api/admin/users/{id}/disabled [put]
func (c *AdminController) SetUserDisabled(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var req SetDisabledRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AdminService.SetUserDisabled(uint(userID), req.Disabled)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}
