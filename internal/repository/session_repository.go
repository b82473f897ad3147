package repository

import (
	"ai_tutor_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.TutorSession) error {
	return r.DB.Create(session).Error
}

func (r *SessionRepository) FindByID(id string) (*model.TutorSession, error) {
	var s model.TutorSession
	err := r.DB.Where("id = ?", id).First(&s).Error
	return &s, err
}

// FindLatestByUser returns the most recently updated session.
func (r *SessionRepository) FindLatestByUser(userID uint) (*model.TutorSession, error) {
	var s model.TutorSession
	err := r.DB.Where("user_id = ?", userID).Order("updated_at desc").First(&s).Error
	return &s, err
}

func (r *SessionRepository) Touch(id string) error {
	return r.DB.Model(&model.TutorSession{}).Where("id = ?", id).Update("updated_at", gorm.Expr("CURRENT_TIMESTAMP(3)")).Error
}
