package repository

import (
	"ai_tutor_backend/internal/model"

	"gorm.io/gorm"
)

type MessageRepository struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

func (r *MessageRepository) Create(msg *model.Message) error {
	return r.DB.Create(msg).Error
}

func (r *MessageRepository) ListBySubject(userID uint, subject string) ([]model.Message, error) {
	var msgs []model.Message
	err := r.DB.Where("user_id = ? AND subject = ?", userID, subject).
		Order("created_at asc").Find(&msgs).Error
	return msgs, err
}

func (r *MessageRepository) ListBySession(sessionID string) ([]model.Message, error) {
	var msgs []model.Message
	err := r.DB.Where("session_id = ?", sessionID).Order("created_at asc").Find(&msgs).Error
	return msgs, err
}
