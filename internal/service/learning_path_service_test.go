package service

import (
	"testing"

	"ai_tutor_backend/internal/model"
)

func TestNormalizeDifficulty(t *testing.T) {
	tests := []struct {
		raw  string
		want model.Difficulty
	}{
		{"beginner", model.DifficultyBeginner},
		{"Intermediate", model.DifficultyIntermediate},
		{"ADVANCED", model.DifficultyAdvanced},
		{"", model.DifficultyBeginner},
		{"expert", model.DifficultyBeginner},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := normalizeDifficulty(tt.raw); got != tt.want {
				t.Errorf("normalizeDifficulty(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestTopicsFromDescription(t *testing.T) {
	topics := topicsFromDescription("Machine Learning")
	if len(topics) != 4 {
		t.Fatalf("got %d topics, want 4", len(topics))
	}
	if topics[0] != "Introduction to Machine Learning" {
		t.Errorf("first topic = %q", topics[0])
	}
}
