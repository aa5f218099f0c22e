package repository

import (
	"errors"
	"time"

	"twigane_backend/internal/model"
	"twigane_backend/internal/util"

	"gorm.io/gorm"
)

type ChatRepository struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

func (r *ChatRepository) CreateSession(session *model.ChatSession) error {
	return r.DB.Create(session).Error
}

func (r *ChatRepository) FindSession(sessionID string) (*model.ChatSession, error) {
	var session model.ChatSession
	err := r.DB.First(&session, "id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *ChatRepository) FindSessionsByUser(userID uint) ([]model.ChatSession, error) {
	var sessions []model.ChatSession
	err := r.DB.Where("user_id = ?", userID).Order("last_message_at DESC").Find(&sessions).Error
	return sessions, err
}

func (r *ChatRepository) FindMessages(sessionID string) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	err := r.DB.Where("session_id = ?", sessionID).Order("created_at ASC").Find(&messages).Error
	return messages, err
}

// AddMessage stores the message and touches the session's last_message_at.
func (r *ChatRepository) AddMessage(message *model.ChatMessage) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		return tx.Model(&model.ChatSession{}).
			Where("id = ?", message.SessionID).
			Update("last_message_at", time.Now()).
			Error
	})
}
