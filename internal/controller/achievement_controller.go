package controller

import (
	"twigane_backend/internal/service"
	"twigane_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// ListMine godoc
// @Summary Badges earned by the current learner
// @Tags achievements
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Achievement} "Success"
// @Router /api/achievements [get]
func (c *AchievementController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	achievements, err := c.AchievementService.ListForUser(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, achievements)
}

// Catalog godoc
// @Summary All badges that can be earned
// @Tags achievements
// @Produce json
// @Success 200 {object} util.Response{data=[]service.Badge} "Success"
// @Router /api/achievements/catalog [get]
func (c *AchievementController) Catalog(ctx *gin.Context) {
	util.Success(ctx, c.AchievementService.Catalog())
}
