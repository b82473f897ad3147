package service

import (
	"errors"
	"fmt"

	"ai_tutor_backend/internal/model"
	"ai_tutor_backend/internal/repository"
	"ai_tutor_backend/internal/util"
	"ai_tutor_backend/pkg/logger"
	"ai_tutor_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TutorService handles conversation sessions and AI explanations.
type TutorService struct {
	SessionRepo *repository.SessionRepository
	MessageRepo *repository.MessageRepository
	HistoryRepo *repository.SubjectHistoryRepository
	AI          *AIService
}

func NewTutorService(
	sessionRepo *repository.SessionRepository,
	messageRepo *repository.MessageRepository,
	historyRepo *repository.SubjectHistoryRepository,
	ai *AIService,
) *TutorService {
	return &TutorService{
		SessionRepo: sessionRepo,
		MessageRepo: messageRepo,
		HistoryRepo: historyRepo,
		AI:          ai,
	}
}

// GetSession returns the user's most recent session.
func (s *TutorService) GetSession(userID uint) (*model.TutorSession, error) {
	session, err := s.SessionRepo.FindLatestByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// CreateSession starts a new session around a subject and logs the
// subject for personalization.
func (s *TutorService) CreateSession(userID uint, subject string) (*model.TutorSession, error) {
	session := &model.TutorSession{
		UserID:  userID,
		Subject: subject,
	}
	if err := s.SessionRepo.Create(session); err != nil {
		return nil, err
	}

	if err := s.HistoryRepo.Append(&model.SubjectHistory{UserID: userID, Subject: subject}); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *TutorService) GetMessages(userID uint, subject string) ([]model.Message, error) {
	return s.MessageRepo.ListBySubject(userID, subject)
}

type SendMessageRequest struct {
	Subject   string `json:"subject" binding:"required"`
	Content   string `json:"content" binding:"required"`
	SessionID string `json:"sessionId"`
}

// SendMessage stores the student's message, asks the model for an
// explanation, and stores and returns the assistant reply. An upstream
// failure degrades to a canned reply instead of breaking the flow.
func (s *TutorService) SendMessage(userID uint, req SendMessageRequest) (*model.Message, error) {
	userMsg := &model.Message{
		UserID:    userID,
		SessionID: req.SessionID,
		Subject:   req.Subject,
		Role:      model.MessageRoleUser,
		Content:   req.Content,
	}
	if err := s.MessageRepo.Create(userMsg); err != nil {
		return nil, err
	}

	explanation, err := s.AI.GenerateExplanation(req.Subject, req.Content)
	if err != nil {
		monitoring.UpstreamFailures.WithLabelValues("ai").Inc()
		logger.Log.Warn("explanation generation failed, using canned reply",
			zap.String("subject", req.Subject), zap.Error(err))
		explanation = fmt.Sprintf(
			"I can't reach the tutoring model right now. In the meantime, try breaking %s down into smaller pieces and ask again in a moment.",
			req.Subject)
	}

	reply := &model.Message{
		UserID:    userID,
		SessionID: req.SessionID,
		Subject:   req.Subject,
		Role:      model.MessageRoleAssistant,
		Content:   explanation,
	}
	if err := s.MessageRepo.Create(reply); err != nil {
		return nil, err
	}

	if req.SessionID != "" {
		if err := s.SessionRepo.Touch(req.SessionID); err != nil {
			logger.Log.Warn("failed to touch session", zap.String("session", req.SessionID), zap.Error(err))
		}
	}

	return reply, nil
}
