package model

import (
	"time"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// LearningPath is an ordered sequence of topics. Paths come from catalog
// ingestion or are created lazily on the first quiz answer for a new
// subject. Immutable once created.
// swagger:model LearningPath
type LearningPath struct {
	UUIDBase
	Title          string     `gorm:"size:255;not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	Difficulty     Difficulty `gorm:"type:enum('beginner','intermediate','advanced');default:'beginner'" json:"difficulty"`
	Topics         StringList `gorm:"type:json" json:"topics"`
	Prerequisites  StringList `gorm:"type:json" json:"prerequisites"`
	EstimatedHours int        `gorm:"default:1" json:"estimatedHours"`
}

func (LearningPath) TableName() string {
	return "learning_paths"
}

// TopicCount never reports zero so score and mastery denominators stay safe.
func (p *LearningPath) TopicCount() int {
	if len(p.Topics) == 0 {
		return 1
	}
	return len(p.Topics)
}

// PrimaryTopic is the first topic, falling back to the path title.
func (p *LearningPath) PrimaryTopic() string {
	if len(p.Topics) > 0 {
		return p.Topics[0]
	}
	return p.Title
}

// LearningPathProgress is the single mutable record tracking one user's
// advancement through a path. At most one current row per user+path.
// swagger:model LearningPathProgress
type LearningPathProgress struct {
	BaseModel
	UserID           uint      `gorm:"index:idx_user_path" json:"userId"`
	PathID           string    `gorm:"index:idx_user_path;type:varchar(36)" json:"pathId"`
	CurrentTopic     int       `gorm:"default:0" json:"currentTopic"`
	CompletedTopics  IntSet    `gorm:"type:json" json:"completedTopics"`
	TimeSpentMinutes MinuteMap `gorm:"type:json" json:"timeSpentMinutes"`
	Completed        bool      `gorm:"default:false" json:"completed"`
	StreakDays       int       `gorm:"default:0" json:"streakDays"`
	LastStreakDate   time.Time `json:"lastStreakDate"`
}

func (LearningPathProgress) TableName() string {
	return "learning_path_progress"
}
