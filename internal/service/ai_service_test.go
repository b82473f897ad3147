package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai_tutor_backend/internal/config"
)

func newAITestServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected Authorization header %q", auth)
		}

		var req ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if len(req.Messages) == 0 {
			t.Error("expected at least one message")
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": AIChatMessage{Role: "assistant", Content: reply}},
			},
		})
	}))
}

func newAIService(baseURL string) *AIService {
	return NewAIService(config.AIConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Model:   "test-model",
	})
}

func TestChatReturnsAssistantContent(t *testing.T) {
	srv := newAITestServer(t, "Variables store values.")
	defer srv.Close()

	got, err := newAIService(srv.URL).Chat("What is a variable?", "system prompt")
	if err != nil {
		t.Fatalf("Chat() error: %v", err)
	}
	if got != "Variables store values." {
		t.Errorf("Chat() = %q", got)
	}
}

func TestChatErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := newAIService(srv.URL).Chat("prompt", ""); err == nil {
		t.Error("expected error on non-200 status")
	}
}

func TestChatNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	if _, err := newAIService(srv.URL).Chat("prompt", ""); err == nil {
		t.Error("expected error when no choices returned")
	}
}

func TestGenerateQuestionParsesJSON(t *testing.T) {
	srv := newAITestServer(t, `{"question":"What does len() return?","answer":"The number of items"}`)
	defer srv.Close()

	q, err := newAIService(srv.URL).GenerateQuestion("python")
	if err != nil {
		t.Fatalf("GenerateQuestion() error: %v", err)
	}
	if q.Question != "What does len() return?" || q.Answer != "The number of items" {
		t.Errorf("GenerateQuestion() = %+v", q)
	}
}

func TestGenerateQuestionFencedJSON(t *testing.T) {
	srv := newAITestServer(t, "```json\n{\"question\":\"Q\",\"answer\":\"A\"}\n```")
	defer srv.Close()

	q, err := newAIService(srv.URL).GenerateQuestion("python")
	if err != nil {
		t.Fatalf("GenerateQuestion() error: %v", err)
	}
	if q.Question != "Q" || q.Answer != "A" {
		t.Errorf("GenerateQuestion() = %+v", q)
	}
}

func TestCheckAnswerParsesVerdict(t *testing.T) {
	srv := newAITestServer(t, `{"correct":true,"feedback":"Nice work."}`)
	defer srv.Close()

	check, err := newAIService(srv.URL).CheckAnswer("Q", "expected", "given")
	if err != nil {
		t.Fatalf("CheckAnswer() error: %v", err)
	}
	if !check.Correct || check.Feedback != "Nice work." {
		t.Errorf("CheckAnswer() = %+v", check)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain object", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around object", `Here you go: {"a":1} hope it helps`, `{"a":1}`},
		{"leading whitespace", "  \n{\"a\":1}", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.raw); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
