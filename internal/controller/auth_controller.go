package controller

import (
	"twigane_backend/internal/service"
	"twigane_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// Register godoc
// @Summary Register a new learner
// @Description Creates a student account and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.RegisterInput true "Registration details"
// @Success 201 {object} util.Response{data=service.AuthResult} "Created"
// @Failure 400 {object} util.Response "Invalid input"
// @Failure 409 {object} util.Response "Email already registered"
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var input service.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AuthService.Register(input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.LoginInput true "Credentials"
// @Success 200 {object} util.Response{data=service.AuthResult} "Success"
// @Failure 401 {object} util.Response "Invalid credentials"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var input service.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AuthService.Login(input)
	if err != nil {
		// Do not reveal whether the email exists.
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, result)
}
