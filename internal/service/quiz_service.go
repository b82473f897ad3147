package service

import (
	"errors"
	"fmt"
	"strings"

	"ai_tutor_backend/internal/model"
	"ai_tutor_backend/internal/repository"
	"ai_tutor_backend/internal/util"
	"ai_tutor_backend/pkg/logger"
	"ai_tutor_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo    *repository.QuizRepository
	PathRepo    *repository.LearningPathRepository
	HistoryRepo *repository.SubjectHistoryRepository
	Progress    *ProgressService
	AI          *AIService
	Video       *VideoService
}

func NewQuizService(
	quizRepo *repository.QuizRepository,
	pathRepo *repository.LearningPathRepository,
	historyRepo *repository.SubjectHistoryRepository,
	progress *ProgressService,
	ai *AIService,
	video *VideoService,
) *QuizService {
	return &QuizService{
		QuizRepo:    quizRepo,
		PathRepo:    pathRepo,
		HistoryRepo: historyRepo,
		Progress:    progress,
		AI:          ai,
		Video:       video,
	}
}

// QuestionResponse hides the expected answer from the client.
type QuestionResponse struct {
	ID       uint   `json:"id"`
	Subject  string `json:"subject"`
	Question string `json:"question"`
}

// GenerateQuestion asks the model for a new question and persists it.
// A fresh question is generated and stored on every call; when the
// model is unavailable a canned question keeps the quiz flow alive.
func (s *QuizService) GenerateQuestion(subject string) (*QuestionResponse, error) {
	generated, err := s.AI.GenerateQuestion(subject)
	if err != nil {
		monitoring.UpstreamFailures.WithLabelValues("ai").Inc()
		logger.Log.Warn("question generation failed, using canned question",
			zap.String("subject", subject), zap.Error(err))
		generated = cannedQuestion(subject)
	}

	q := &model.QuizQuestion{
		Subject:  subject,
		Question: generated.Question,
		Answer:   generated.Answer,
	}
	if err := s.QuizRepo.CreateQuestion(q); err != nil {
		return nil, err
	}

	return &QuestionResponse{ID: q.ID, Subject: q.Subject, Question: q.Question}, nil
}

func cannedQuestion(subject string) *GeneratedQuestion {
	return &GeneratedQuestion{
		Question: fmt.Sprintf("In your own words, what is the most important concept in %s?", subject),
		Answer:   fmt.Sprintf("Any central concept of %s", subject),
	}
}

type CheckAnswerRequest struct {
	QuestionID uint    `json:"questionId" binding:"required"`
	Answer     string  `json:"answer" binding:"required"`
	TimeSpent  float64 `json:"timeSpentMinutes"`
}

type CheckAnswerResponse struct {
	Correct          bool              `json:"correct"`
	Feedback         string            `json:"feedback"`
	VideoSuggestions []VideoSuggestion `json:"videoSuggestions,omitempty"`
	StreakDays       int               `json:"streakDays"`
}

// CheckAnswer grades an attempt, appends it to the attempt log, books
// streak and time-spent on the subject's path (created lazily for a new
// subject), and logs the subject for personalization.
func (s *QuizService) CheckAnswer(userID uint, req CheckAnswerRequest) (*CheckAnswerResponse, error) {
	question, err := s.QuizRepo.FindQuestionByID(req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	check, err := s.AI.CheckAnswer(question.Question, question.Answer, req.Answer)
	if err != nil {
		monitoring.UpstreamFailures.WithLabelValues("ai").Inc()
		logger.Log.Warn("answer grading failed, using exact comparison", zap.Error(err))
		check = gradeLocally(question.Answer, req.Answer)
	}

	attempt := &model.QuizProgress{
		UserID:     userID,
		QuestionID: question.ID,
		Subject:    question.Subject,
		UserAnswer: req.Answer,
		Correct:    check.Correct,
	}
	if err := s.QuizRepo.CreateProgress(attempt); err != nil {
		return nil, err
	}

	path, err := s.ensurePathForSubject(question.Subject)
	if err != nil {
		return nil, err
	}

	progress, err := s.Progress.RecordQuizActivity(userID, path.ID, req.TimeSpent)
	if err != nil {
		return nil, err
	}

	if err := s.HistoryRepo.Append(&model.SubjectHistory{UserID: userID, Subject: question.Subject}); err != nil {
		return nil, err
	}

	resp := &CheckAnswerResponse{
		Correct:    check.Correct,
		Feedback:   check.Feedback,
		StreakDays: progress.StreakDays,
	}

	if !check.Correct && s.Video != nil {
		videos, err := s.Video.SearchEducational(question.Question, question.Subject)
		if err != nil {
			monitoring.UpstreamFailures.WithLabelValues("video").Inc()
			logger.Log.Warn("video suggestions unavailable", zap.Error(err))
		} else {
			resp.VideoSuggestions = videos
		}
	}

	return resp, nil
}

func gradeLocally(expected, submitted string) *AnswerCheck {
	correct := strings.EqualFold(strings.TrimSpace(expected), strings.TrimSpace(submitted))
	feedback := "Not quite. Compare your answer with the expected one and try another question."
	if correct {
		feedback = "Correct, well done."
	}
	return &AnswerCheck{Correct: correct, Feedback: feedback}
}

// ensurePathForSubject finds the path lazily created for a subject, or
// creates it on the first quiz answer.
func (s *QuizService) ensurePathForSubject(subject string) (*model.LearningPath, error) {
	path, err := s.PathRepo.FindByTitle(subject)
	if err == nil {
		return path, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	path = &model.LearningPath{
		Title:       subject,
		Description: fmt.Sprintf("Self-paced introduction to %s.", subject),
		Difficulty:  model.DifficultyBeginner,
		Topics: model.StringList{
			fmt.Sprintf("Introduction to %s", subject),
			"Core Concepts",
			"Common Pitfalls",
			"Practice and Review",
		},
		EstimatedHours: 5,
	}
	if err := s.PathRepo.Create(path); err != nil {
		return nil, err
	}
	return path, nil
}
