package repository

import (
	"time"

	"ai_tutor_backend/internal/model"

	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// Append adds a rollup row. Rows are never upserted, so the same
// path+day can appear more than once; readers aggregate with SUM.
func (r *AnalyticsRepository) Append(a *model.ProgressAnalytics) error {
	return r.DB.Create(a).Error
}

// DailyActivity sums rollup rows per day over the trailing window.
type DailyActivity struct {
	Date            string  `json:"date"`
	TopicsCompleted int     `json:"topicsCompleted"`
	MinutesSpent    float64 `json:"minutesSpent"`
}

func (r *AnalyticsRepository) GetDailyActivity(userID uint, days int) ([]DailyActivity, error) {
	since := time.Now().AddDate(0, 0, -days)
	var rows []DailyActivity
	err := r.DB.Model(&model.ProgressAnalytics{}).
		Select("DATE_FORMAT(date, '%Y-%m-%d') as date, SUM(topics_completed) as topics_completed, SUM(minutes_spent) as minutes_spent").
		Where("user_id = ? AND date >= ?", userID, since).
		Group("date").
		Order("date asc").
		Scan(&rows).Error
	return rows, err
}

// Totals sums every rollup row for the user.
type AnalyticsTotals struct {
	TopicsCompleted int
	MinutesSpent    float64
	QuizzesCorrect  int
	QuizzesTotal    int
}

func (r *AnalyticsRepository) GetTotals(userID uint) (*AnalyticsTotals, error) {
	var t AnalyticsTotals
	err := r.DB.Model(&model.ProgressAnalytics{}).
		Select("COALESCE(SUM(topics_completed),0) as topics_completed, COALESCE(SUM(minutes_spent),0) as minutes_spent, COALESCE(SUM(quizzes_correct),0) as quizzes_correct, COALESCE(SUM(quizzes_total),0) as quizzes_total").
		Where("user_id = ?", userID).
		Scan(&t).Error
	return &t, err
}
