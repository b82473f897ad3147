package repository

import (
	"ai_tutor_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Create(p *model.LearningPathProgress) error {
	return r.DB.Create(p).Error
}

func (r *ProgressRepository) Save(p *model.LearningPathProgress) error {
	return r.DB.Save(p).Error
}

// FindCurrent returns the most recently updated progress row for the
// user+path pair; the application assumes at most one current row.
func (r *ProgressRepository) FindCurrent(userID uint, pathID string) (*model.LearningPathProgress, error) {
	var p model.LearningPathProgress
	err := r.DB.Where("user_id = ? AND path_id = ?", userID, pathID).
		Order("updated_at desc").First(&p).Error
	return &p, err
}

func (r *ProgressRepository) ListByUser(userID uint) ([]model.LearningPathProgress, error) {
	var ps []model.LearningPathProgress
	err := r.DB.Where("user_id = ?", userID).Order("updated_at desc").Find(&ps).Error
	return ps, err
}

// MapByPath keys the user's progress rows by path id.
func (r *ProgressRepository) MapByPath(userID uint) (map[string]*model.LearningPathProgress, error) {
	rows, err := r.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	m := make(map[string]*model.LearningPathProgress, len(rows))
	for i := range rows {
		// rows are ordered newest first; keep the first row seen per path
		if _, ok := m[rows[i].PathID]; !ok {
			m[rows[i].PathID] = &rows[i]
		}
	}
	return m, nil
}
