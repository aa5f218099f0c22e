package controller

import (
	"strconv"

	"twigane_backend/internal/service"
	"twigane_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService    *service.UserService
	StorageService *service.StorageService
}

func NewUserController(userService *service.UserService, storageService *service.StorageService) *UserController {
	return &UserController{UserService: userService, StorageService: storageService}
}

// GetProfile godoc
// @Summary Get the current learner's profile
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.Profile} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// UpdateProfile godoc
// @Summary Update name, bio or avatar
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.UpdateProfileInput true "Fields to update"
// @Success 200 {object} util.Response{data=model.User} "Success"
// @Failure 400 {object} util.Response "Invalid input"
// @Router /api/user/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.UpdateProfileInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// UploadAvatar godoc
// @Summary Upload a profile picture
// @Tags users
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "Image file (jpeg, png or webp, max 5MB)"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 400 {object} util.Response "Unsupported file"
// @Router /api/user/avatar/upload [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

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

	url, err := c.StorageService.UploadAvatar(ctx.Request.Context(), claims.UserID, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	if _, err := c.UserService.UpdateProfile(claims.UserID, service.UpdateProfileInput{Avatar: url}); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"avatar": url})
}

// Checkin godoc
// @Summary Record the daily checkin
// @Description Extends or resets the learning streak, once per calendar day
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.CheckinResult} "Success"
// @Failure 409 {object} util.Response "Already checked in today"
// @Router /api/user/checkin [post]
func (c *UserController) Checkin(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.UserService.Checkin(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Leaderboard godoc
// @Summary Top learners by XP
// @Tags users
// @Produce json
// @Param limit query int false "Entries to return, default 10, max 100"
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry} "Success"
// @Router /api/achievements/leaderboard [get]
func (c *UserController) Leaderboard(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	entries, err := c.UserService.Leaderboard(limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
