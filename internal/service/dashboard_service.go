package service

import (
	"ai_tutor_backend/internal/repository"
)

type DashboardService struct {
	ProgressRepo  *repository.ProgressRepository
	AnalyticsRepo *repository.AnalyticsRepository
	QuizRepo      *repository.QuizRepository
	HistoryRepo   *repository.SubjectHistoryRepository
}

func NewDashboardService(
	progressRepo *repository.ProgressRepository,
	analyticsRepo *repository.AnalyticsRepository,
	quizRepo *repository.QuizRepository,
	historyRepo *repository.SubjectHistoryRepository,
) *DashboardService {
	return &DashboardService{
		ProgressRepo:  progressRepo,
		AnalyticsRepo: analyticsRepo,
		QuizRepo:      quizRepo,
		HistoryRepo:   historyRepo,
	}
}

type Dashboard struct {
	StreakDays      int                        `json:"streakDays"`
	TotalMinutes    float64                    `json:"totalMinutes"`
	QuizAttempts    int64                      `json:"quizAttempts"`
	QuizAccuracy    float64                    `json:"quizAccuracy"`
	PathsInProgress int                        `json:"pathsInProgress"`
	PathsCompleted  int                        `json:"pathsCompleted"`
	TopicsCompleted int                        `json:"topicsCompleted"`
	RecentSubjects  []string                   `json:"recentSubjects"`
	DailyActivity   []repository.DailyActivity `json:"dailyActivity"`
}

// GetDashboard aggregates the user's activity. Daily figures come from
// SUM over the append-only rollup rows, so duplicate path+day rows are
// harmless.
func (s *DashboardService) GetDashboard(userID uint) (*Dashboard, error) {
	d := &Dashboard{}

	rows, err := s.ProgressRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, p := range rows {
		if p.Completed {
			d.PathsCompleted++
		} else {
			d.PathsInProgress++
		}
		d.TotalMinutes += p.TimeSpentMinutes.Total()
		if p.StreakDays > d.StreakDays {
			d.StreakDays = p.StreakDays
		}
	}

	stats, err := s.QuizRepo.OverallStats(userID)
	if err != nil {
		return nil, err
	}
	d.QuizAttempts = stats.Attempts
	if stats.Attempts > 0 {
		d.QuizAccuracy = float64(stats.Correct) / float64(stats.Attempts)
	}

	totals, err := s.AnalyticsRepo.GetTotals(userID)
	if err != nil {
		return nil, err
	}
	d.TopicsCompleted = totals.TopicsCompleted

	daily, err := s.AnalyticsRepo.GetDailyActivity(userID, 7)
	if err != nil {
		return nil, err
	}
	d.DailyActivity = daily

	recent, err := s.HistoryRepo.RecentDistinct(userID, 5)
	if err != nil {
		return nil, err
	}
	d.RecentSubjects = recent

	return d, nil
}
