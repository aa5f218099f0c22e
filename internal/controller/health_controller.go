package controller

import (
	"twigane_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB          *gorm.DB
	RedisClient *redis.Client
}

func NewHealthController(db *gorm.DB, redisClient *redis.Client) *HealthController {
	return &HealthController{DB: db, RedisClient: redisClient}
}

// Check godoc
// @Summary Liveness and dependency health
// @Tags health
// @Produce json
// @Success 200 {object} util.Response{data=object} "Success"
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	status := gin.H{"status": "ok"}

	sqlDB, err := c.DB.DB()
	if err != nil || sqlDB.PingContext(ctx.Request.Context()) != nil {
		status["database"] = "down"
	} else {
		status["database"] = "up"
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Ping(ctx.Request.Context()).Err(); err != nil {
			status["redis"] = "down"
		} else {
			status["redis"] = "up"
		}
	}

	util.Success(ctx, status)
}
