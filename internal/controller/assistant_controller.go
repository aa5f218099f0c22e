package controller

import (
	"twigane_backend/internal/service"
	"twigane_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssistantController struct {
	AssistantService *service.AssistantService
}

func NewAssistantController(assistantService *service.AssistantService) *AssistantController {
	return &AssistantController{AssistantService: assistantService}
}

// StartSession godoc
// @Summary Open a TwigBot session
// @Description Creates a session seeded with TwigBot's welcome message
// @Tags assistant
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.StartSessionInput false "Optional session name and topic"
// @Success 201 {object} util.Response{data=object} "Created"
// @Router /api/assistant/sessions [post]
func (c *AssistantController) StartSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.StartSessionInput
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&input); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	session, messages, err := c.AssistantService.StartSession(claims.UserID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"session": session, "messages": messages})
}

// ListSessions godoc
// @Summary List the learner's TwigBot sessions
// @Tags assistant
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ChatSession} "Success"
// @Router /api/assistant/sessions [get]
func (c *AssistantController) ListSessions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sessions, err := c.AssistantService.ListSessions(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, sessions)
}

// GetMessages godoc
// @Summary Messages of one session, oldest first
// @Tags assistant
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session id"
// @Success 200 {object} util.Response{data=[]model.ChatMessage} "Success"
// @Failure 403 {object} util.Response "Not your session"
// @Failure 404 {object} util.Response "Session not found"
// @Router /api/assistant/sessions/{id}/messages [get]
func (c *AssistantController) GetMessages(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	messages, err := c.AssistantService.GetMessages(claims.UserID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, messages)
}

// SendMessage godoc
// @Summary Send a message and get TwigBot's reply
// @Tags assistant
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session id"
// @Param body body service.SendMessageInput true "Message"
// @Success 200 {object} util.Response{data=[]model.ChatMessage} "Success"
// @Failure 403 {object} util.Response "Not your session"
// @Failure 404 {object} util.Response "Session not found"
// @Router /api/assistant/sessions/{id}/messages [post]
func (c *AssistantController) SendMessage(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.SendMessageInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	messages, err := c.AssistantService.SendMessage(claims.UserID, ctx.Param("id"), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, messages)
}
