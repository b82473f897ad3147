package repository

import (
	"strings"

	"ai_tutor_backend/internal/model"

	"gorm.io/gorm"
)

type LearningPathRepository struct {
	DB *gorm.DB
}

func NewLearningPathRepository(db *gorm.DB) *LearningPathRepository {
	return &LearningPathRepository{DB: db}
}

func (r *LearningPathRepository) Create(path *model.LearningPath) error {
	return r.DB.Create(path).Error
}

func (r *LearningPathRepository) FindByID(id string) (*model.LearningPath, error) {
	var p model.LearningPath
	err := r.DB.Where("id = ?", id).First(&p).Error
	return &p, err
}

func (r *LearningPathRepository) FindByTitle(title string) (*model.LearningPath, error) {
	var p model.LearningPath
	err := r.DB.Where("title = ?", title).First(&p).Error
	return &p, err
}

// List filters by a case-insensitive title match when subject is set.
func (r *LearningPathRepository) List(subject string) ([]model.LearningPath, error) {
	var ps []model.LearningPath
	query := r.DB.Model(&model.LearningPath{})
	if subject != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(subject)+"%")
	}
	err := query.Order("created_at asc").Find(&ps).Error
	return ps, err
}
