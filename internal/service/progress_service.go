package service

import (
	"errors"
	"math"
	"strconv"
	"time"

	"ai_tutor_backend/internal/model"
	"ai_tutor_backend/internal/repository"
	"ai_tutor_backend/internal/util"

	"gorm.io/gorm"
)

// QuizTimeKey is the time-spent map key for answer-submission events;
// topic-completion events use the stringified topic index.
const QuizTimeKey = "quiz"

type ProgressService struct {
	PathRepo      *repository.LearningPathRepository
	ProgressRepo  *repository.ProgressRepository
	AnalyticsRepo *repository.AnalyticsRepository
	QuizRepo      *repository.QuizRepository
}

func NewProgressService(
	pathRepo *repository.LearningPathRepository,
	progressRepo *repository.ProgressRepository,
	analyticsRepo *repository.AnalyticsRepository,
	quizRepo *repository.QuizRepository,
) *ProgressService {
	return &ProgressService{
		PathRepo:      pathRepo,
		ProgressRepo:  progressRepo,
		AnalyticsRepo: analyticsRepo,
		QuizRepo:      quizRepo,
	}
}

// ElapsedDays is floor((now - last) in days). A negative result (clock
// skew) lands in the streak-reset branch like any gap of two or more.
func ElapsedDays(last, now time.Time) int {
	return int(math.Floor(now.Sub(last).Hours() / 24))
}

// ApplyActivity folds one activity event into the progress row: the
// streak transition (same day keeps it, next day increments, any other
// gap resets to 1) and the time-spent accumulation under key.
func ApplyActivity(p *model.LearningPathProgress, key string, timeSpent float64, now time.Time) {
	switch ElapsedDays(p.LastStreakDate, now) {
	case 0:
		// same-day activity does not increment
	case 1:
		p.StreakDays++
	default:
		p.StreakDays = 1
	}

	if p.TimeSpentMinutes == nil {
		p.TimeSpentMinutes = model.MinuteMap{}
	}
	p.TimeSpentMinutes[key] += timeSpent

	p.LastStreakDate = now
}

// EnsureProgress returns the current progress row for the path,
// creating the initial row when none exists.
func (s *ProgressService) EnsureProgress(userID uint, pathID string) (*model.LearningPathProgress, error) {
	p, err := s.ProgressRepo.FindCurrent(userID, pathID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.PathRepo.FindByID(pathID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPathNotFound
		}
		return nil, err
	}

	p = &model.LearningPathProgress{
		UserID:           userID,
		PathID:           pathID,
		CurrentTopic:     0,
		CompletedTopics:  model.IntSet{},
		TimeSpentMinutes: model.MinuteMap{},
		StreakDays:       1,
		LastStreakDate:   time.Now(),
	}
	if err := s.ProgressRepo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// RecordQuizActivity books a quiz answer against the path's progress
// row under the "quiz" key.
func (s *ProgressService) RecordQuizActivity(userID uint, pathID string, timeSpent float64) (*model.LearningPathProgress, error) {
	p, err := s.EnsureProgress(userID, pathID)
	if err != nil {
		return nil, err
	}
	ApplyActivity(p, QuizTimeKey, timeSpent, time.Now())
	if err := s.ProgressRepo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// CompleteTopic runs the topic state machine: set-union the completed
// index, recompute the terminal flag, and advance the current topic.
// Unlock ordering is not enforced server-side; the client gates which
// topics are selectable.
func (s *ProgressService) CompleteTopic(userID uint, pathID string, topicIndex int, timeSpent float64) (*model.LearningPathProgress, error) {
	path, err := s.PathRepo.FindByID(pathID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPathNotFound
		}
		return nil, err
	}

	if topicIndex < 0 || topicIndex >= path.TopicCount() {
		return nil, util.ErrInvalidTopicIndex
	}

	p, err := s.EnsureProgress(userID, pathID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ApplyActivity(p, strconv.Itoa(topicIndex), timeSpent, now)

	p.CompletedTopics = p.CompletedTopics.Add(topicIndex)
	p.Completed = len(p.CompletedTopics) >= path.TopicCount()
	if p.Completed {
		p.CurrentTopic = topicIndex
	} else {
		p.CurrentTopic = topicIndex + 1
	}

	if err := s.ProgressRepo.Save(p); err != nil {
		return nil, err
	}

	// Daily rollup row, appended rather than upserted; quiz counts are a
	// snapshot of the subject's attempt log at completion time.
	rollup := &model.ProgressAnalytics{
		UserID:          userID,
		PathID:          pathID,
		Date:            now.Truncate(24 * time.Hour),
		TopicsCompleted: 1,
		MinutesSpent:    timeSpent,
	}
	if stats, err := s.QuizRepo.StatsBySubject(userID, path.Title); err == nil {
		rollup.QuizzesCorrect = int(stats.Correct)
		rollup.QuizzesTotal = int(stats.Attempts)
	}
	if err := s.AnalyticsRepo.Append(rollup); err != nil {
		return nil, err
	}

	return p, nil
}

// SubjectProgress is the read model for GET /api/progress/:subject.
type SubjectProgress struct {
	Subject    string  `json:"subject"`
	Attempts   int64   `json:"attempts"`
	Correct    int64   `json:"correct"`
	Accuracy   float64 `json:"accuracy"`
	StreakDays int     `json:"streakDays"`
}

func (s *ProgressService) GetSubjectProgress(userID uint, subject string) (*SubjectProgress, error) {
	stats, err := s.QuizRepo.StatsBySubject(userID, subject)
	if err != nil {
		return nil, err
	}

	out := &SubjectProgress{
		Subject:  subject,
		Attempts: stats.Attempts,
		Correct:  stats.Correct,
	}
	if stats.Attempts > 0 {
		out.Accuracy = float64(stats.Correct) / float64(stats.Attempts)
	}

	// streak comes from the path lazily created for this subject, if any
	if path, err := s.PathRepo.FindByTitle(subject); err == nil {
		if p, err := s.ProgressRepo.FindCurrent(userID, path.ID); err == nil {
			out.StreakDays = p.StreakDays
		}
	}

	return out, nil
}
