package service

import (
	"strings"

	"twigane_backend/internal/model"
	"twigane_backend/internal/repository"
	"twigane_backend/internal/util"

	"go.uber.org/zap"
)

type CommunityService struct {
	forumRepo *repository.ForumRepository
}

func NewCommunityService(forumRepo *repository.ForumRepository) *CommunityService {
	return &CommunityService{forumRepo: forumRepo}
}

func (s *CommunityService) ListPosts(category string, page, limit int) ([]model.Post, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}
	return s.forumRepo.FindPosts(category, page, limit)
}

func (s *CommunityService) GetPost(postID string) (*model.Post, error) {
	post, err := s.forumRepo.FindPost(postID)
	if err != nil {
		return nil, err
	}
	if err := s.forumRepo.IncrementViews(postID); err != nil {
		zap.L().Warn("view counter update failed", zap.String("postId", postID), zap.Error(err))
	}
	return post, nil
}

type CreatePostInput struct {
	Title    string `json:"title" binding:"required,min=3,max=255"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"omitempty,max=100"`
	Tags     string `json:"tags" binding:"omitempty,max=255"`
}

func (s *CommunityService) CreatePost(authorID uint, input CreatePostInput) (*model.Post, error) {
	post := &model.Post{
		Title:    strings.TrimSpace(input.Title),
		Content:  input.Content,
		AuthorID: authorID,
		Category: input.Category,
		Tags:     input.Tags,
	}
	if err := s.forumRepo.CreatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

type CreateReplyInput struct {
	Content string `json:"content" binding:"required"`
}

func (s *CommunityService) CreateReply(authorID uint, postID string, input CreateReplyInput) (*model.Reply, error) {
	if _, err := s.forumRepo.FindPost(postID); err != nil {
		return nil, err
	}

	reply := &model.Reply{
		PostID:   postID,
		AuthorID: authorID,
		Content:  input.Content,
	}
	if err := s.forumRepo.CreateReply(reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// UpvotePost records the vote; a duplicate vote surfaces as a unique-index
// violation which callers treat as a no-op.
func (s *CommunityService) UpvotePost(userID uint, postID string) error {
	if _, err := s.forumRepo.FindPost(postID); err != nil {
		return err
	}

	if err := s.forumRepo.Upvote(userID, postID); err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return util.NewValidationError("postId", "already upvoted")
		}
		return err
	}
	return nil
}
