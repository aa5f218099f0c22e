package controller

import (
	"strconv"

	"twigane_backend/internal/model"
	"twigane_backend/internal/service"
	"twigane_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	ProjectService *service.ProjectService
}

func NewProjectController(projectService *service.ProjectService) *ProjectController {
	return &ProjectController{ProjectService: projectService}
}

// Submit godoc
// @Summary Submit a practice project
// @Tags projects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SubmitProjectInput true "Project submission"
// @Success 201 {object} util.Response{data=model.Project} "Created"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/projects [post]
func (c *ProjectController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.SubmitProjectInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	project, err := c.ProjectService.Submit(claims.UserID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, project)
}

// ListMine godoc
// @Summary The learner's own submissions
// @Tags projects
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Project} "Success"
// @Router /api/projects [get]
func (c *ProjectController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	projects, err := c.ProjectService.ListMine(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, projects)
}

// Get godoc
// @Summary One submission with grade and feedback
// @Tags projects
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Project id"
// @Success 200 {object} util.Response{data=model.Project} "Success"
// @Failure 403 {object} util.Response "Not your project"
// @Failure 404 {object} util.Response "Project not found"
// @Router /api/projects/{id} [get]
func (c *ProjectController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	project, err := c.ProjectService.Get(claims.UserID, claims.Role == model.Admin, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, project)
}

// ListPending godoc
// @Summary Review queue of submitted projects
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page, default 1"
// @Param limit query int false "Page size, default 20"
// @Success 200 {object} util.Response{data=util.PageResponse} "Success"
// @Router /api/admin/projects [get]
func (c *ProjectController) ListPending(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	projects, total, err := c.ProjectService.ListPending(page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  projects,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Review godoc
// @Summary Grade a submission
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Project id"
// @Param body body service.ReviewProjectInput true "Grade and feedback"
// @Success 200 {object} util.Response{data=model.Project} "Success"
// @Failure 400 {object} util.Response "Invalid grade"
// @Failure 404 {object} util.Response "Project not found"
// @Router /api/admin/projects/{id}/review [put]
func (c *ProjectController) Review(ctx *gin.Context) {
	var input service.ReviewProjectInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	project, err := c.ProjectService.Review(ctx.Param("id"), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, project)
}
