package repository

import (
	"ai_tutor_backend/internal/model"

	"gorm.io/gorm"
)

type SubjectHistoryRepository struct {
	DB *gorm.DB
}

func NewSubjectHistoryRepository(db *gorm.DB) *SubjectHistoryRepository {
	return &SubjectHistoryRepository{DB: db}
}

func (r *SubjectHistoryRepository) Append(h *model.SubjectHistory) error {
	return r.DB.Create(h).Error
}

// ListSubjects returns every logged subject for the user, newest first.
func (r *SubjectHistoryRepository) ListSubjects(userID uint) ([]string, error) {
	var subjects []string
	err := r.DB.Model(&model.SubjectHistory{}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Pluck("subject", &subjects).Error
	return subjects, err
}

// RecentDistinct returns the latest distinct subjects, capped at limit.
func (r *SubjectHistoryRepository) RecentDistinct(userID uint, limit int) ([]string, error) {
	all, err := r.ListSubjects(userID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(all))
	out := make([]string, 0, limit)
	for _, s := range all {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
