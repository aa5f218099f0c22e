package controller

import (
	"strconv"

	"twigane_backend/internal/service"
	"twigane_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CommunityController struct {
	CommunityService *service.CommunityService
}

func NewCommunityController(communityService *service.CommunityService) *CommunityController {
	return &CommunityController{CommunityService: communityService}
}

// ListPosts godoc
// @Summary List forum posts
// @Tags community
// @Produce json
// @Param category query string false "Filter by category"
// @Param page query int false "Page, default 1"
// @Param limit query int false "Page size, default 20"
// @Success 200 {object} util.Response{data=util.PageResponse} "Success"
// @Router /api/forum/posts [get]
func (c *CommunityController) ListPosts(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	posts, total, err := c.CommunityService.ListPosts(ctx.Query("category"), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  posts,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetPost godoc
// @Summary Get a post with its replies
// @Tags community
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} util.Response{data=model.Post} "Success"
// @Failure 404 {object} util.Response "Post not found"
// @Router /api/forum/posts/{id} [get]
func (c *CommunityController) GetPost(ctx *gin.Context) {
	post, err := c.CommunityService.GetPost(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, post)
}

// CreatePost godoc
// @Summary Create a forum post
// @Tags community
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreatePostInput true "Post content"
// @Success 201 {object} util.Response{data=model.Post} "Created"
// @Failure 400 {object} util.Response "Invalid input"
// @Router /api/forum/posts [post]
func (c *CommunityController) CreatePost(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.CreatePostInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	post, err := c.CommunityService.CreatePost(claims.UserID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, post)
}

// CreateReply godoc
// @Summary Reply to a post
// @Tags community
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Post id"
// @Param body body service.CreateReplyInput true "Reply content"
// @Success 201 {object} util.Response{data=model.Reply} "Created"
// @Failure 404 {object} util.Response "Post not found"
// @Router /api/forum/posts/{id}/replies [post]
func (c *CommunityController) CreateReply(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.CreateReplyInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reply, err := c.CommunityService.CreateReply(claims.UserID, ctx.Param("id"), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, reply)
}

// UpvotePost godoc
// @Summary Upvote a post, once per learner
// @Tags community
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Post id"
// @Success 200 {object} util.Response "Success"
// @Failure 400 {object} util.Response "Already upvoted"
// @Failure 404 {object} util.Response "Post not found"
// @Router /api/forum/posts/{id}/upvote [post]
func (c *CommunityController) UpvotePost(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.CommunityService.UpvotePost(claims.UserID, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
