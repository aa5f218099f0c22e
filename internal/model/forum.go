package model

import "time"

// swagger:model Post
type Post struct {
	UUIDBase
	Title    string  `gorm:"size:255;not null" json:"title"`
	Content  string  `gorm:"type:text;not null" json:"content"`
	AuthorID uint    `gorm:"index;type:bigint unsigned" json:"authorId"`
	Author   User    `gorm:"foreignKey:AuthorID" json:"author"`
	Category string  `gorm:"size:100;index" json:"category"`
	Tags     string  `gorm:"size:255" json:"tags"`
	Upvotes  int     `gorm:"default:0" json:"upvotes"`
	Views    int     `gorm:"default:0" json:"views"`
	IsPinned bool    `gorm:"default:false" json:"isPinned"`
	Replies  []Reply `gorm:"foreignKey:PostID" json:"replies,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}

// swagger:model Reply
type Reply struct {
	UUIDBase
	PostID   string `gorm:"index;type:varchar(36)" json:"postId"`
	AuthorID uint   `gorm:"index;type:bigint unsigned" json:"authorId"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Upvotes  int    `gorm:"default:0" json:"upvotes"`
}

func (Reply) TableName() string {
	return "replies"
}

type PostLike struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_post;type:bigint unsigned" json:"userId"`
	PostID    string    `gorm:"uniqueIndex:idx_user_post;type:varchar(36)" json:"postId"`
}

func (PostLike) TableName() string {
	return "post_likes"
}
