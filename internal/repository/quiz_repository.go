package repository

import (
	"ai_tutor_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) CreateQuestion(q *model.QuizQuestion) error {
	return r.DB.Create(q).Error
}

func (r *QuizRepository) FindQuestionByID(id uint) (*model.QuizQuestion, error) {
	var q model.QuizQuestion
	err := r.DB.First(&q, id).Error
	return &q, err
}

func (r *QuizRepository) CreateProgress(p *model.QuizProgress) error {
	return r.DB.Create(p).Error
}

// SubjectStats holds the append-only attempt counts for one subject.
type SubjectStats struct {
	Attempts int64
	Correct  int64
}

func (r *QuizRepository) StatsBySubject(userID uint, subject string) (*SubjectStats, error) {
	var stats SubjectStats
	if err := r.DB.Model(&model.QuizProgress{}).
		Where("user_id = ? AND subject = ?", userID, subject).
		Count(&stats.Attempts).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&model.QuizProgress{}).
		Where("user_id = ? AND subject = ? AND correct = ?", userID, subject, true).
		Count(&stats.Correct).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *QuizRepository) OverallStats(userID uint) (*SubjectStats, error) {
	var stats SubjectStats
	if err := r.DB.Model(&model.QuizProgress{}).
		Where("user_id = ?", userID).
		Count(&stats.Attempts).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&model.QuizProgress{}).
		Where("user_id = ? AND correct = ?", userID, true).
		Count(&stats.Correct).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *QuizRepository) ListProgressBySubject(userID uint, subject string, limit int) ([]model.QuizProgress, error) {
	var ps []model.QuizProgress
	err := r.DB.Where("user_id = ? AND subject = ?", userID, subject).
		Order("created_at desc").Limit(limit).Find(&ps).Error
	return ps, err
}
