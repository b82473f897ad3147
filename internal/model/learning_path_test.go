package model

import "testing"

func TestTopicCountNeverZero(t *testing.T) {
	p := &LearningPath{}
	if got := p.TopicCount(); got != 1 {
		t.Errorf("TopicCount() on empty topics = %d, want 1", got)
	}

	p.Topics = StringList{"a", "b", "c"}
	if got := p.TopicCount(); got != 3 {
		t.Errorf("TopicCount() = %d, want 3", got)
	}
}

func TestPrimaryTopic(t *testing.T) {
	p := &LearningPath{Title: "Python Fundamentals"}
	if got := p.PrimaryTopic(); got != "Python Fundamentals" {
		t.Errorf("PrimaryTopic() without topics = %q, want title", got)
	}

	p.Topics = StringList{"variables", "loops"}
	if got := p.PrimaryTopic(); got != "variables" {
		t.Errorf("PrimaryTopic() = %q, want %q", got, "variables")
	}
}
