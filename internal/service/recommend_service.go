package service

import (
	"fmt"
	"sort"
	"strings"

	"ai_tutor_backend/internal/model"
	"ai_tutor_backend/internal/repository"
)

const (
	scoreFloor         = 0.70
	scoreCeiling       = 1.00
	maxRecommendations = 4
)

type RecommendService struct {
	PathRepo     *repository.LearningPathRepository
	ProgressRepo *repository.ProgressRepository
	QuizRepo     *repository.QuizRepository
	HistoryRepo  *repository.SubjectHistoryRepository
}

func NewRecommendService(
	pathRepo *repository.LearningPathRepository,
	progressRepo *repository.ProgressRepository,
	quizRepo *repository.QuizRepository,
	historyRepo *repository.SubjectHistoryRepository,
) *RecommendService {
	return &RecommendService{
		PathRepo:     pathRepo,
		ProgressRepo: progressRepo,
		QuizRepo:     quizRepo,
		HistoryRepo:  historyRepo,
	}
}

// subjectMatches reports whether the path's primary topic overlaps any
// previously explored subject, in either containment direction.
func subjectMatches(path *model.LearningPath, subjectHistory []string) bool {
	primary := strings.ToLower(path.PrimaryTopic())
	for _, s := range subjectHistory {
		visited := strings.ToLower(s)
		if visited == "" {
			continue
		}
		if strings.Contains(primary, visited) || strings.Contains(visited, primary) {
			return true
		}
	}
	return false
}

func clampScore(score float64) float64 {
	if score < scoreFloor {
		return scoreFloor
	}
	if score > scoreCeiling {
		return scoreCeiling
	}
	return score
}

// Score computes the confidence score for one path. It never fails:
// absent inputs count as zero, and denominators are floored at 1.
func Score(
	path *model.LearningPath,
	quizAccuracy float64,
	timeSpentMinutes float64,
	progress *model.LearningPathProgress,
	subjectHistory []string,
) float64 {
	score := scoreFloor

	if subjectMatches(path, subjectHistory) {
		score += 0.15
	}

	score += quizAccuracy * 0.10

	hours := path.EstimatedHours
	if hours < 1 {
		hours = 1
	}
	engagement := timeSpentMinutes / (float64(hours) * 60)
	if engagement > 1 {
		engagement = 1
	}
	score += engagement * 0.05

	if progress == nil {
		// new path: flat difficulty bonus instead of the progress terms
		switch path.Difficulty {
		case model.DifficultyBeginner:
			score += 0.10
		case model.DifficultyIntermediate:
			score += 0.05
		}
		return clampScore(score)
	}

	streak := float64(progress.StreakDays) / 14
	if streak > 1 {
		streak = 1
	}
	score += streak * 0.05

	completed := len(progress.CompletedTopics)
	score += float64(completed) / float64(path.TopicCount()) * 0.05

	// difficulty progression, at most one applies
	switch {
	case path.Difficulty == model.DifficultyBeginner && completed == 0:
		score += 0.05
	case path.Difficulty == model.DifficultyIntermediate && completed >= 2:
		score += 0.05
	case path.Difficulty == model.DifficultyAdvanced && completed >= 4:
		score += 0.05
	}

	return clampScore(score)
}

// Reason picks the human-readable explanation for a recommendation.
// Precedence: new-user beginner, strengthening basics, ready for the
// next level, streak, then the generic message.
func Reason(difficulty model.Difficulty, completedCount int, quizAccuracy float64, streakDays int) string {
	switch {
	case difficulty == model.DifficultyBeginner && completedCount == 0:
		return "A great starting point for building strong fundamentals"
	case quizAccuracy < 0.5:
		return "Revisits concepts you've been practicing to strengthen your foundation"
	case quizAccuracy >= 0.8 && completedCount >= 2:
		return "Your quiz results show you're ready for the next level"
	case streakDays >= 3:
		return fmt.Sprintf("Keep your %d-day streak going with this path", streakDays)
	default:
		return "Matches your recent learning activity"
	}
}

type Recommendation struct {
	Path   *model.LearningPath `json:"path"`
	Score  float64             `json:"score"`
	Reason string              `json:"reason"`
}

// Recommend scores every path the user has not completed, ranks
// descending, and returns the top 4 with reasons.
func (s *RecommendService) Recommend(userID uint) ([]Recommendation, error) {
	paths, err := s.PathRepo.List("")
	if err != nil {
		return nil, err
	}

	progressByPath, err := s.ProgressRepo.MapByPath(userID)
	if err != nil {
		return nil, err
	}

	subjectHistory, err := s.HistoryRepo.ListSubjects(userID)
	if err != nil {
		return nil, err
	}

	var quizAccuracy float64
	if stats, err := s.QuizRepo.OverallStats(userID); err == nil && stats.Attempts > 0 {
		quizAccuracy = float64(stats.Correct) / float64(stats.Attempts)
	}

	recs := make([]Recommendation, 0, len(paths))
	for i := range paths {
		path := &paths[i]
		progress := progressByPath[path.ID]
		if progress != nil && progress.Completed {
			continue
		}

		var timeSpent float64
		completedCount := 0
		streakDays := 0
		if progress != nil {
			timeSpent = progress.TimeSpentMinutes.Total()
			completedCount = len(progress.CompletedTopics)
			streakDays = progress.StreakDays
		}

		recs = append(recs, Recommendation{
			Path:   path,
			Score:  Score(path, quizAccuracy, timeSpent, progress, subjectHistory),
			Reason: Reason(path.Difficulty, completedCount, quizAccuracy, streakDays),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs, nil
}
