package model

import "time"

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatSession groups a learner's conversation with TwigBot.
// swagger:model ChatSession
type ChatSession struct {
	UUIDBase
	UserID        uint      `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Name          string    `gorm:"size:255;default:'AI Coding Help'" json:"name"`
	LastMessageAt time.Time `json:"lastMessageAt"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

// swagger:model ChatMessage
type ChatMessage struct {
	UUIDBase
	SessionID string   `gorm:"index;type:varchar(36);not null" json:"sessionId"`
	Role      ChatRole `gorm:"type:enum('user','assistant');not null" json:"role"`
	Content   string   `gorm:"type:text;not null" json:"content"`
	Metadata  string   `gorm:"type:text" json:"metadata,omitempty"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
