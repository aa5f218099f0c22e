package repository

import (
	"errors"

	"twigane_backend/internal/model"
	"twigane_backend/internal/util"

	"gorm.io/gorm"
)

type ForumRepository struct {
	DB *gorm.DB
}

func NewForumRepository(db *gorm.DB) *ForumRepository {
	return &ForumRepository{DB: db}
}

func (r *ForumRepository) FindPosts(category string, page, limit int) ([]model.Post, int64, error) {
	var posts []model.Post
	var total int64

	query := r.DB.Model(&model.Post{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Author").
		Order("is_pinned DESC, created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *ForumRepository) FindPost(postID string) (*model.Post, error) {
	var post model.Post
	err := r.DB.Preload("Author").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("replies.created_at ASC")
		}).
		Preload("Replies.Author").
		First(&post, "id = ?", postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *ForumRepository) CreatePost(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *ForumRepository) CreateReply(reply *model.Reply) error {
	return r.DB.Create(reply).Error
}

func (r *ForumRepository) IncrementViews(postID string) error {
	return r.DB.Model(&model.Post{}).
		Where("id = ?", postID).
		Update("views", gorm.Expr("views + 1")).
		Error
}

// Upvote inserts the like and bumps the counter in one transaction; the
// unique (user, post) index makes a second upvote a no-op error.
func (r *ForumRepository) Upvote(userID uint, postID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		like := &model.PostLike{UserID: userID, PostID: postID}
		if err := tx.Create(like).Error; err != nil {
			return err
		}
		return tx.Model(&model.Post{}).
			Where("id = ?", postID).
			Update("upvotes", gorm.Expr("upvotes + 1")).
			Error
	})
}
