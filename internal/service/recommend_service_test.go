package service

import (
	"math"
	"strings"
	"testing"

	"ai_tutor_backend/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreNewUserNoProgress(t *testing.T) {
	path := &model.LearningPath{
		Title:          "Python Fundamentals",
		Difficulty:     model.DifficultyBeginner,
		Topics:         model.StringList{"variables", "loops", "functions"},
		EstimatedHours: 5,
	}

	// no history, no accuracy, no time: floor plus the beginner bonus
	got := Score(path, 0, 0, nil, nil)
	if !almostEqual(got, 0.80) {
		t.Errorf("Score() = %v, want 0.80", got)
	}
}

func TestScoreNoProgressDifficultyBonus(t *testing.T) {
	tests := []struct {
		difficulty model.Difficulty
		want       float64
	}{
		{model.DifficultyBeginner, 0.80},
		{model.DifficultyIntermediate, 0.75},
		{model.DifficultyAdvanced, 0.70},
	}

	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			path := &model.LearningPath{
				Title:          "Some Path",
				Difficulty:     tt.difficulty,
				EstimatedHours: 5,
			}
			got := Score(path, 0, 0, nil, nil)
			if !almostEqual(got, tt.want) {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScorePerfectAccuracyWithSubjectMatch(t *testing.T) {
	path := &model.LearningPath{
		Title:          "Python Fundamentals",
		Difficulty:     model.DifficultyAdvanced,
		Topics:         model.StringList{"python basics"},
		EstimatedHours: 5,
	}
	history := []string{"Python"}

	// 0.70 + 0.15 match + 1.0*0.10 accuracy, advanced gets no flat bonus
	got := Score(path, 1.0, 0, nil, history)
	if !almostEqual(got, 0.95) {
		t.Errorf("Score() = %v, want 0.95", got)
	}
}

func TestScoreWithProgressTerms(t *testing.T) {
	path := &model.LearningPath{
		Title:          "Data Structures",
		Difficulty:     model.DifficultyIntermediate,
		Topics:         model.StringList{"arrays", "lists", "trees", "graphs"},
		EstimatedHours: 10,
	}
	progress := &model.LearningPathProgress{
		StreakDays:      7,
		CompletedTopics: model.IntSet{0, 1},
	}

	// 0.70 + 0.5*0.10 accuracy + (300/600)*0.05 engagement
	//      + (7/14)*0.05 streak + (2/4)*0.05 mastery
	//      + 0.05 intermediate with two done
	got := Score(path, 0.5, 300, progress, nil)
	want := 0.70 + 0.05 + 0.025 + 0.025 + 0.025 + 0.05
	if !almostEqual(got, want) {
		t.Errorf("Score() = %v, want %v", got, want)
	}
}

func TestScoreCapsEngagementAndStreak(t *testing.T) {
	path := &model.LearningPath{
		Title:          "Web Development",
		Difficulty:     model.DifficultyAdvanced,
		Topics:         model.StringList{"a", "b"},
		EstimatedHours: 1,
	}
	progress := &model.LearningPathProgress{
		StreakDays:      100,
		CompletedTopics: model.IntSet{},
	}

	// engagement and streak both saturate at their 0.05 weights
	got := Score(path, 0, 100000, progress, nil)
	want := 0.70 + 0.05 + 0.05
	if !almostEqual(got, want) {
		t.Errorf("Score() = %v, want %v", got, want)
	}
}

func TestScoreStaysInRange(t *testing.T) {
	paths := []*model.LearningPath{
		{Title: "A", Difficulty: model.DifficultyBeginner, EstimatedHours: 0},
		{Title: "B", Difficulty: model.DifficultyIntermediate, Topics: model.StringList{"x"}, EstimatedHours: 100},
		{Title: "C", Difficulty: model.DifficultyAdvanced, Topics: model.StringList{"x", "y", "z", "w", "v"}, EstimatedHours: 1},
	}
	progresses := []*model.LearningPathProgress{
		nil,
		{StreakDays: 50, CompletedTopics: model.IntSet{0, 1, 2, 3, 4}},
	}

	for _, path := range paths {
		for _, progress := range progresses {
			for _, acc := range []float64{0, 0.5, 1.0} {
				got := Score(path, acc, 99999, progress, []string{path.Title})
				if got < 0.70 || got > 1.00 {
					t.Errorf("Score(%s, acc=%v) = %v, out of [0.70, 1.00]", path.Title, acc, got)
				}
			}
		}
	}
}

func TestSubjectMatches(t *testing.T) {
	path := &model.LearningPath{
		Title:  "Machine Learning Foundations",
		Topics: model.StringList{"supervised learning"},
	}

	tests := []struct {
		name    string
		history []string
		want    bool
	}{
		{"no history", nil, false},
		{"unrelated subject", []string{"cooking"}, false},
		{"history inside topic", []string{"learning"}, true},
		{"topic inside history", []string{"advanced supervised learning techniques"}, true},
		{"case insensitive", []string{"SUPERVISED Learning"}, true},
		{"empty entries skipped", []string{"", "   "}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := subjectMatches(path, tt.history); got != tt.want {
				t.Errorf("subjectMatches(%v) = %v, want %v", tt.history, got, tt.want)
			}
		})
	}
}

func TestReasonPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		difficulty model.Difficulty
		completed  int
		accuracy   float64
		streak     int
		contains   string
	}{
		{"fresh beginner wins over low accuracy", model.DifficultyBeginner, 0, 0.2, 10, "starting point"},
		{"low accuracy before next level", model.DifficultyIntermediate, 3, 0.4, 10, "strengthen"},
		{"high accuracy with progress", model.DifficultyIntermediate, 2, 0.85, 10, "next level"},
		{"streak message", model.DifficultyAdvanced, 1, 0.6, 5, "5-day streak"},
		{"generic fallback", model.DifficultyAdvanced, 1, 0.6, 0, "recent learning activity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reason(tt.difficulty, tt.completed, tt.accuracy, tt.streak)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("Reason() = %q, want it to contain %q", got, tt.contains)
			}
		})
	}
}

func TestClampScore(t *testing.T) {
	if got := clampScore(0.5); got != 0.70 {
		t.Errorf("clampScore(0.5) = %v, want 0.70", got)
	}
	if got := clampScore(1.2); got != 1.00 {
		t.Errorf("clampScore(1.2) = %v, want 1.00", got)
	}
	if got := clampScore(0.85); got != 0.85 {
		t.Errorf("clampScore(0.85) = %v, want 0.85", got)
	}
}
