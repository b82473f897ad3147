package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ai_tutor_backend/internal/config"
)

// AIService wraps an OpenAI-compatible chat-completions API. Calls are
// not retried here; callers decide how to degrade when one fails.
type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *AIService) Chat(prompt string, system string) (string, error) {
	messages := []AIChatMessage{}

	if system != "" {
		messages = append(messages, AIChatMessage{Role: "system", Content: system})
	}
	messages = append(messages, AIChatMessage{Role: "user", Content: prompt})

	reqBody := ChatCompletionRequest{
		Model:    s.config.Model,
		Messages: messages,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("AI returned no choices")
}

const tutorSystemPrompt = "You are a patient tutor. Explain concepts clearly for a beginner, " +
	"using short paragraphs and one concrete example. Do not output markdown links."

// GenerateExplanation produces a tutoring explanation for a subject or a
// follow-up question within that subject.
func (s *AIService) GenerateExplanation(subject, question string) (string, error) {
	prompt := fmt.Sprintf("Explain the basics of %s.", subject)
	if question != "" {
		prompt = fmt.Sprintf("The student is learning %s and asks: %s", subject, question)
	}
	return s.Chat(prompt, tutorSystemPrompt)
}

type GeneratedQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GenerateQuestion asks the model for a fresh quiz question as JSON.
func (s *AIService) GenerateQuestion(subject string) (*GeneratedQuestion, error) {
	prompt := fmt.Sprintf(
		"Write one short quiz question about %s with a one-line answer. "+
			`Respond with only a JSON object: {"question": "...", "answer": "..."}`, subject)

	raw, err := s.Chat(prompt, "You generate quiz questions. Respond with JSON only, no prose.")
	if err != nil {
		return nil, err
	}

	var q GeneratedQuestion
	if err := json.Unmarshal([]byte(extractJSON(raw)), &q); err != nil {
		return nil, fmt.Errorf("malformed question payload: %w", err)
	}
	if q.Question == "" || q.Answer == "" {
		return nil, fmt.Errorf("incomplete question payload")
	}
	return &q, nil
}

type AnswerCheck struct {
	Correct  bool   `json:"correct"`
	Feedback string `json:"feedback"`
}

// CheckAnswer grades a submitted answer against the expected one.
func (s *AIService) CheckAnswer(question, expected, userAnswer string) (*AnswerCheck, error) {
	prompt := fmt.Sprintf(
		"Question: %s\nExpected answer: %s\nStudent answer: %s\n"+
			"Judge whether the student answer is correct, allowing equivalent phrasings. "+
			`Respond with only a JSON object: {"correct": true|false, "feedback": "one or two sentences"}`,
		question, expected, userAnswer)

	raw, err := s.Chat(prompt, "You grade quiz answers. Respond with JSON only, no prose.")
	if err != nil {
		return nil, err
	}

	var check AnswerCheck
	if err := json.Unmarshal([]byte(extractJSON(raw)), &check); err != nil {
		return nil, fmt.Errorf("malformed grading payload: %w", err)
	}
	return &check, nil
}

// extractJSON strips markdown code fences the model sometimes wraps
// around JSON payloads.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		if idx := strings.LastIndex(raw, "```"); idx >= 0 {
			raw = raw[:idx]
		}
		raw = strings.TrimSpace(raw)
	}
	// tolerate prose around a single object
	if start := strings.Index(raw, "{"); start > 0 {
		if end := strings.LastIndex(raw, "}"); end > start {
			raw = raw[start : end+1]
		}
	}
	return raw
}
