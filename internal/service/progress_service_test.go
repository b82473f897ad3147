package service

import (
	"testing"
	"time"

	"ai_tutor_backend/internal/model"
)

func TestElapsedDays(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		last time.Time
		now  time.Time
		want int
	}{
		{"same moment", base, base, 0},
		{"a few hours later", base, base.Add(6 * time.Hour), 0},
		{"exactly one day", base, base.Add(24 * time.Hour), 1},
		{"a day and a half", base, base.Add(36 * time.Hour), 1},
		{"three days", base, base.Add(72 * time.Hour), 3},
		{"clock went backwards", base, base.Add(-2 * time.Hour), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ElapsedDays(tt.last, tt.now); got != tt.want {
				t.Errorf("ElapsedDays() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestApplyActivityStreakTransitions(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		streakDays int
		gap        time.Duration
		want       int
	}{
		{"same day keeps the streak", 4, 3 * time.Hour, 4},
		{"next day increments", 4, 25 * time.Hour, 5},
		{"two day gap resets", 4, 49 * time.Hour, 1},
		{"week long gap resets", 9, 7 * 24 * time.Hour, 1},
		{"negative gap resets", 4, -30 * time.Hour, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &model.LearningPathProgress{
				StreakDays:     tt.streakDays,
				LastStreakDate: base,
			}
			now := base.Add(tt.gap)
			ApplyActivity(p, QuizTimeKey, 10, now)

			if p.StreakDays != tt.want {
				t.Errorf("StreakDays = %d, want %d", p.StreakDays, tt.want)
			}
			if !p.LastStreakDate.Equal(now) {
				t.Errorf("LastStreakDate not advanced to %v", now)
			}
		})
	}
}

func TestApplyActivityAccumulatesTime(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	p := &model.LearningPathProgress{LastStreakDate: now}

	ApplyActivity(p, QuizTimeKey, 10, now)
	ApplyActivity(p, QuizTimeKey, 5.5, now)
	ApplyActivity(p, "2", 20, now)

	if got := p.TimeSpentMinutes[QuizTimeKey]; got != 15.5 {
		t.Errorf("quiz minutes = %v, want 15.5", got)
	}
	if got := p.TimeSpentMinutes["2"]; got != 20 {
		t.Errorf("topic minutes = %v, want 20", got)
	}
	if got := p.TimeSpentMinutes.Total(); got != 35.5 {
		t.Errorf("Total() = %v, want 35.5", got)
	}
}

func TestApplyActivityInitializesNilMap(t *testing.T) {
	now := time.Now()
	p := &model.LearningPathProgress{LastStreakDate: now, TimeSpentMinutes: nil}

	ApplyActivity(p, "0", 3, now)

	if p.TimeSpentMinutes == nil || p.TimeSpentMinutes["0"] != 3 {
		t.Errorf("TimeSpentMinutes = %v, want map with 3 under key 0", p.TimeSpentMinutes)
	}
}
